package memory

import (
	"context"
	"sync"

	"cineseat/internal/domain/seating"
	"cineseat/internal/pkg/errs"
	"cineseat/internal/usecase/commands"
	"cineseat/internal/usecase/queries"
)

// Fixture bundles one showtime's catalog data for seeding.
type Fixture struct {
	Snapshot commands.ShowtimeSnapshot
	Layout   seating.Layout
	Sold     []seating.SeatID
}

// ShowtimeRepository is an in-memory stand-in for the catalog, used by
// tests and local runs without Postgres.
type ShowtimeRepository struct {
	mu        sync.RWMutex
	showtimes map[int64]Fixture
}

func NewShowtimeRepository() *ShowtimeRepository {
	return &ShowtimeRepository{showtimes: make(map[int64]Fixture)}
}

func (r *ShowtimeRepository) Seed(f Fixture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showtimes[f.Snapshot.ID] = f
}

func (r *ShowtimeRepository) FindByID(_ context.Context, showtimeID int64) (*commands.ShowtimeSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.showtimes[showtimeID]
	if !ok {
		return nil, errs.Mark(errs.New("showtime not seeded"), errs.ErrShowtimeNotFound)
	}
	snap := f.Snapshot
	return &snap, nil
}

func (r *ShowtimeRepository) GetShowtime(ctx context.Context, showtimeID int64) (*queries.ShowtimeHeader, error) {
	snap, err := r.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	return &queries.ShowtimeHeader{
		ID:         snap.ID,
		MovieTitle: snap.MovieTitle,
		ScreenID:   snap.ScreenID,
		ScreenName: snap.ScreenName,
		StartsAt:   snap.StartsAt,
	}, nil
}

func (r *ShowtimeRepository) ShowtimeInventory(_ context.Context, showtimeID int64) (seating.Layout, []seating.SeatID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.showtimes[showtimeID]
	if !ok {
		return seating.Layout{}, nil, errs.Mark(errs.New("showtime not seeded"), errs.ErrShowtimeNotFound)
	}
	sold := make([]seating.SeatID, len(f.Sold))
	copy(sold, f.Sold)
	return f.Layout, sold, nil
}

// BookingLedger collects archived bookings in memory.
type BookingLedger struct {
	mu       sync.Mutex
	archived []commands.ArchivedBooking
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{}
}

func (l *BookingLedger) Archive(_ context.Context, b commands.ArchivedBooking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, existing := range l.archived {
		if existing.SessionID == b.SessionID {
			return nil
		}
	}
	l.archived = append(l.archived, b)
	return nil
}

func (l *BookingLedger) Archived() []commands.ArchivedBooking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]commands.ArchivedBooking, len(l.archived))
	copy(out, l.archived)
	return out
}
