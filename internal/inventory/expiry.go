package inventory

import (
	"container/heap"
	"log/slog"
	"sync"
	"time"

	"cineseat/internal/pkg/clock"

	"github.com/google/uuid"
)

type expiryEntry struct {
	at        time.Time
	sessionID uuid.UUID
}

type expiryHeap []expiryEntry

func (h expiryHeap) Len() int           { return len(h) }
func (h expiryHeap) Less(i, j int) bool { return h[i].at.Before(h[j].at) }
func (h expiryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x any)        { *h = append(*h, x.(expiryEntry)) }
func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// ExpiryScheduler retires timed-out sessions without any client
// cooperation. It keeps a min-heap of (expiresAt, sessionID) pairs instead
// of one timer per session and sweeps it on a fixed tick. Entries are
// never removed early: a touched session leaves a stale entry behind,
// which the sweep detects (the coordinator reports the real expiry) and
// re-arms. Re-expiring an already-terminal session is a no-op.
type ExpiryScheduler struct {
	registry *Registry
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	entries expiryHeap

	stop chan struct{}
	done chan struct{}
}

func NewExpiryScheduler(registry *Registry, clk clock.Clock, interval time.Duration, logger *slog.Logger) *ExpiryScheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &ExpiryScheduler{
		registry: registry,
		clock:    clk,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Schedule arms (or re-arms) the sweep for one session.
func (s *ExpiryScheduler) Schedule(sessionID uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	heap.Push(&s.entries, expiryEntry{at: at, sessionID: sessionID})
}

// Start runs the sweep loop until Stop is called.
func (s *ExpiryScheduler) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(s.clock.Now())
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *ExpiryScheduler) Stop() {
	close(s.stop)
	<-s.done
}

// Sweep expires every session whose deadline has passed as of now. It is
// exported so tests can drive it with a mock clock instead of waiting on
// the ticker.
func (s *ExpiryScheduler) Sweep(now time.Time) {
	for {
		entry, ok := s.popDue(now)
		if !ok {
			return
		}
		s.reap(entry, now)
	}
}

func (s *ExpiryScheduler) popDue(now time.Time) (expiryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 || s.entries[0].at.After(now) {
		return expiryEntry{}, false
	}
	return heap.Pop(&s.entries).(expiryEntry), true
}

func (s *ExpiryScheduler) reap(entry expiryEntry, now time.Time) {
	coord, err := s.registry.SessionCoordinator(entry.sessionID)
	if err != nil {
		// Session never bound or already forgotten; nothing to release.
		return
	}

	outcome, err := coord.Expire(entry.sessionID, now)
	if err != nil {
		s.logger.Error("expiry sweep failed",
			"session_id", entry.sessionID, "showtime_id", coord.ShowtimeID(), "error", err)
		return
	}
	if outcome.NotDueUntil != nil {
		// The session was touched after this entry was queued.
		s.Schedule(entry.sessionID, *outcome.NotDueUntil)
		return
	}
	if outcome.Expired {
		s.logger.Info("expired booking session",
			"session_id", entry.sessionID,
			"showtime_id", coord.ShowtimeID(),
			"released_seats", len(outcome.ReleasedSeatIDs))
	}
}
