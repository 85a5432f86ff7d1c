package inventory

import (
	"context"
	"log/slog"
	"sync"

	"cineseat/internal/domain/seating"
	"cineseat/internal/pkg/clock"

	"github.com/google/uuid"
)

// Catalog is the external showtime collaborator the registry hydrates
// coordinators from: the static layout plus the seats already sold before
// this process started.
type Catalog interface {
	ShowtimeInventory(ctx context.Context, showtimeID int64) (seating.Layout, []seating.SeatID, error)
}

// Registry maps showtimeIDs to their coordinators, building each one
// lazily from the catalog, and keeps a global sessionID→showtimeID index
// so operations addressed by session alone can be routed.
type Registry struct {
	mu       sync.RWMutex
	coords   map[int64]*Coordinator
	sessions map[uuid.UUID]int64

	catalog      Catalog
	clock        clock.Clock
	streamBuffer int
	logger       *slog.Logger
}

func NewRegistry(catalog Catalog, clk clock.Clock, streamBuffer int, logger *slog.Logger) *Registry {
	return &Registry{
		coords:       make(map[int64]*Coordinator),
		sessions:     make(map[uuid.UUID]int64),
		catalog:      catalog,
		clock:        clk,
		streamBuffer: streamBuffer,
		logger:       logger,
	}
}

// Coordinator returns the exclusion domain for a showtime, creating it on
// first use. The catalog read happens outside any coordinator mutex.
func (r *Registry) Coordinator(ctx context.Context, showtimeID int64) (*Coordinator, error) {
	r.mu.RLock()
	coord, ok := r.coords[showtimeID]
	r.mu.RUnlock()
	if ok {
		return coord, nil
	}

	layout, sold, err := r.catalog.ShowtimeInventory(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if coord, ok := r.coords[showtimeID]; ok {
		return coord, nil
	}
	bc := NewBroadcaster(showtimeID, r.streamBuffer, r.logger)
	coord = NewCoordinator(showtimeID, layout, sold, bc, r.clock)
	r.coords[showtimeID] = coord
	return coord, nil
}

// BindSession records which showtime owns a session so later calls can be
// routed by session ID alone.
func (r *Registry) BindSession(sessionID uuid.UUID, showtimeID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = showtimeID
}

// SessionCoordinator routes a session ID to its showtime's coordinator.
func (r *Registry) SessionCoordinator(sessionID uuid.UUID) (*Coordinator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	showtimeID, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	coord, ok := r.coords[showtimeID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return coord, nil
}

// Coordinators returns the live coordinators, for the heartbeat loop.
func (r *Registry) Coordinators() []*Coordinator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Coordinator, 0, len(r.coords))
	for _, c := range r.coords {
		out = append(out, c)
	}
	return out
}
