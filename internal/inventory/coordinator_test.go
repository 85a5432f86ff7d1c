//go:build unit

package inventory_test

import (
	"sync"
	"testing"
	"time"

	"cineseat/internal/domain/booking"
	"cineseat/internal/domain/seating"
	"cineseat/internal/inventory"
	"cineseat/internal/pkg/clock"
	"cineseat/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	showtimeID = int64(1201)
	sessionTTL = 15 * time.Minute
	seatTTL    = 5 * time.Minute
)

var startTime = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

type coordFixture struct {
	coord *inventory.Coordinator
	clk   *clock.MockClock
}

// newCoordFixture builds a coordinator over rows A through D, ten seats
// each (IDs 1..40), with the given seats already sold.
func newCoordFixture(t *testing.T, sold ...seating.SeatID) *coordFixture {
	t.Helper()
	layout := builder.NewLayoutBuilder().
		WithRow("A", 10).
		WithRow("B", 10).
		WithRow("C", 10).
		WithRow("D", 10).
		Build(t)
	clk := clock.NewMockClock(startTime)
	bc := inventory.NewBroadcaster(showtimeID, 16, nil)
	return &coordFixture{
		coord: inventory.NewCoordinator(showtimeID, layout, sold, bc, clk),
		clk:   clk,
	}
}

func (f *coordFixture) newDraft(t *testing.T) uuid.UUID {
	t.Helper()
	view := f.coord.CreateSession(sessionTTL)
	require.Equal(t, booking.StatusDraft, view.Status)
	return view.ID
}

func (f *coordFixture) seatStatus(t *testing.T, id seating.SeatID) string {
	t.Helper()
	for _, s := range f.coord.Snapshot() {
		if s.SeatID == id {
			return s.Status
		}
	}
	t.Fatalf("seat %d not in snapshot", id)
	return ""
}

func TestCoordinatorLock(t *testing.T) {
	t.Run("locks every requested seat atomically", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		res, err := f.coord.Lock(sid, []seating.SeatID{23, 21, 22}, seatTTL)
		require.NoError(t, err)

		assert.Equal(t, []seating.SeatID{21, 22, 23}, res.LockedSeatIDs)
		assert.Equal(t, startTime.Add(seatTTL), res.LockedUntil)
		assert.Equal(t, []seating.SeatID{21, 22, 23}, res.Session.SeatIDs)
		for _, id := range []seating.SeatID{21, 22, 23} {
			assert.Equal(t, "LOCKED", f.seatStatus(t, id))
		}
	})

	t.Run("conflict reports only the contested seats and changes nothing", func(t *testing.T) {
		f := newCoordFixture(t)
		first := f.newDraft(t)
		second := f.newDraft(t)

		_, err := f.coord.Lock(first, []seating.SeatID{22}, seatTTL)
		require.NoError(t, err)

		_, err = f.coord.Lock(second, []seating.SeatID{21, 22, 23}, seatTTL)
		var confErr *inventory.ConflictError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, []seating.SeatID{22}, confErr.SeatIDs)

		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 21))
		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 23))

		view, err := f.coord.Session(second)
		require.NoError(t, err)
		assert.Empty(t, view.SeatIDs)
	})

	t.Run("sold seats conflict", func(t *testing.T) {
		f := newCoordFixture(t, 5)
		sid := f.newDraft(t)

		_, err := f.coord.Lock(sid, []seating.SeatID{5}, seatTTL)
		var confErr *inventory.ConflictError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, []seating.SeatID{5}, confErr.SeatIDs)
	})

	t.Run("selection rules run before any seat changes", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		_, err := f.coord.Lock(sid, []seating.SeatID{3, 5}, seatTTL)
		var selErr *seating.SelectionError
		require.ErrorAs(t, err, &selErr)
		assert.Equal(t, seating.RuleOrphanGap, selErr.Rule)
		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 3))
	})

	t.Run("duplicate seat IDs are collapsed", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		res, err := f.coord.Lock(sid, []seating.SeatID{4, 4, 5}, seatTTL)
		require.NoError(t, err)
		assert.Equal(t, []seating.SeatID{4, 5}, res.LockedSeatIDs)
	})

	t.Run("growing a hold counts own seats as kept", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		_, err := f.coord.Lock(sid, []seating.SeatID{4, 5}, seatTTL)
		require.NoError(t, err)
		res, err := f.coord.Lock(sid, []seating.SeatID{6}, seatTTL)
		require.NoError(t, err)
		assert.Equal(t, []seating.SeatID{4, 5, 6}, res.Session.SeatIDs)
	})
}

func TestCoordinatorRelease(t *testing.T) {
	t.Run("releases a subset and skips seats not held", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{1, 2, 3}, seatTTL)
		require.NoError(t, err)

		res, err := f.coord.Release(sid, []seating.SeatID{3, 9})
		require.NoError(t, err)
		assert.Equal(t, []seating.SeatID{3}, res.ReleasedSeatIDs)
		assert.Equal(t, []seating.SeatID{1, 2}, res.Session.SeatIDs)
		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 3))
	})

	t.Run("empty release is a validation error", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		_, err := f.coord.Release(sid, nil)
		var selErr *seating.SelectionError
		require.ErrorAs(t, err, &selErr)
		assert.Equal(t, seating.RuleEmptySelection, selErr.Rule)
	})

	t.Run("seats locked by another session are untouched", func(t *testing.T) {
		f := newCoordFixture(t)
		owner := f.newDraft(t)
		intruder := f.newDraft(t)
		_, err := f.coord.Lock(owner, []seating.SeatID{7}, seatTTL)
		require.NoError(t, err)

		res, err := f.coord.Release(intruder, []seating.SeatID{7})
		require.NoError(t, err)
		assert.Empty(t, res.ReleasedSeatIDs)
		assert.Equal(t, "LOCKED", f.seatStatus(t, 7))
	})
}

func TestCoordinatorReplace(t *testing.T) {
	t.Run("swaps the full hold atomically", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{21, 22, 23}, seatTTL)
		require.NoError(t, err)

		f.clk.Add(time.Minute)
		res, err := f.coord.Replace(sid, []seating.SeatID{30, 31, 32}, seatTTL)
		require.NoError(t, err)

		assert.Equal(t, []seating.SeatID{30, 31, 32}, res.NewSeatIDs)
		assert.Equal(t, []seating.SeatID{21, 22, 23}, res.ReleasedSeatIDs)
		assert.Equal(t, []seating.SeatID{30, 31, 32}, res.LockedSeatIDs)
		assert.Equal(t, startTime.Add(time.Minute+seatTTL), res.LockedUntil)

		for _, id := range []seating.SeatID{21, 22, 23} {
			assert.Equal(t, "AVAILABLE", f.seatStatus(t, id))
		}
		for _, id := range []seating.SeatID{30, 31, 32} {
			assert.Equal(t, "LOCKED", f.seatStatus(t, id))
		}
	})

	t.Run("overlapping replace keeps shared seats held throughout", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{1, 2, 3}, seatTTL)
		require.NoError(t, err)

		res, err := f.coord.Replace(sid, []seating.SeatID{2, 3, 4}, seatTTL)
		require.NoError(t, err)
		assert.Equal(t, []seating.SeatID{2, 3, 4}, res.NewSeatIDs)
		assert.Equal(t, []seating.SeatID{1}, res.ReleasedSeatIDs)
		assert.Equal(t, []seating.SeatID{4}, res.LockedSeatIDs)
	})

	t.Run("conflict leaves the original hold intact", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		rival := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{21, 22}, seatTTL)
		require.NoError(t, err)
		_, err = f.coord.Lock(rival, []seating.SeatID{31}, seatTTL)
		require.NoError(t, err)

		_, err = f.coord.Replace(sid, []seating.SeatID{30, 31, 32}, seatTTL)
		var confErr *inventory.ConflictError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, []seating.SeatID{31}, confErr.SeatIDs)

		view, err := f.coord.Session(sid)
		require.NoError(t, err)
		assert.Equal(t, []seating.SeatID{21, 22}, view.SeatIDs)
		assert.Equal(t, "LOCKED", f.seatStatus(t, 21))
		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 30))
	})

	t.Run("vacated seats do not count against the new selection", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{5, 6}, seatTTL)
		require.NoError(t, err)

		// Moving one seat over: validator must treat 5 as already free.
		res, err := f.coord.Replace(sid, []seating.SeatID{6, 7}, seatTTL)
		require.NoError(t, err)
		assert.Equal(t, []seating.SeatID{6, 7}, res.NewSeatIDs)
	})

	t.Run("empty replacement is rejected", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		_, err := f.coord.Replace(sid, nil, seatTTL)
		var selErr *seating.SelectionError
		require.ErrorAs(t, err, &selErr)
		assert.Equal(t, seating.RuleEmptySelection, selErr.Rule)
	})
}

func TestCoordinatorTouch(t *testing.T) {
	f := newCoordFixture(t)
	sid := f.newDraft(t)
	_, err := f.coord.Lock(sid, []seating.SeatID{1, 2}, seatTTL)
	require.NoError(t, err)

	f.clk.Add(2 * time.Minute)
	res, err := f.coord.Touch(sid, seatTTL)
	require.NoError(t, err)

	assert.Equal(t, []seating.SeatID{1, 2}, res.ExtendedSeatIDs)
	require.NotNil(t, res.Session.ExpiresAt)

	deadline := startTime.Add(2*time.Minute + seatTTL)
	for _, s := range f.coord.Snapshot() {
		if s.SeatID == 1 || s.SeatID == 2 {
			require.NotNil(t, s.LockedUntil)
			assert.Equal(t, deadline, *s.LockedUntil)
		}
	}
}

func TestCoordinatorLifecycle(t *testing.T) {
	t.Run("cancel releases everything and ends CANCELED", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{1, 2}, seatTTL)
		require.NoError(t, err)

		res, err := f.coord.Cancel(sid)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCanceled, res.Session.Status)
		assert.Equal(t, []seating.SeatID{1, 2}, res.ReleasedSeatIDs)
		assert.Nil(t, res.Session.ExpiresAt)
		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 1))

		_, err = f.coord.Cancel(sid)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("complete marks held seats SOLD", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{4, 5}, seatTTL)
		require.NoError(t, err)

		res, err := f.coord.Complete(sid)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, res.Session.Status)
		assert.Equal(t, []seating.SeatID{4, 5}, res.SoldSeatIDs)
		assert.Equal(t, "SOLD", f.seatStatus(t, 4))
		assert.Nil(t, res.Session.ExpiresAt)
	})

	t.Run("terminal session remains queryable", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Cancel(sid)
		require.NoError(t, err)

		view, err := f.coord.Session(sid)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCanceled, view.Status)
	})

	t.Run("mutations on unknown or non-draft sessions fail", func(t *testing.T) {
		f := newCoordFixture(t)

		_, err := f.coord.Lock(uuid.New(), []seating.SeatID{1}, seatTTL)
		assert.ErrorIs(t, err, inventory.ErrSessionNotFound)

		sid := f.newDraft(t)
		_, err = f.coord.Cancel(sid)
		require.NoError(t, err)
		_, err = f.coord.Lock(sid, []seating.SeatID{1}, seatTTL)
		assert.ErrorIs(t, err, booking.ErrNotDraft)
	})

	t.Run("lapsed draft rejects mutations before the sweep runs", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		f.clk.Add(sessionTTL)
		_, err := f.coord.Lock(sid, []seating.SeatID{1}, seatTTL)
		assert.ErrorIs(t, err, booking.ErrSessionExpired)
	})
}

func TestCoordinatorExpire(t *testing.T) {
	t.Run("releases seats and ends EXPIRED once due", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{1, 2}, seatTTL)
		require.NoError(t, err)

		out, err := f.coord.Expire(sid, startTime.Add(sessionTTL))
		require.NoError(t, err)
		assert.True(t, out.Expired)
		assert.Equal(t, []seating.SeatID{1, 2}, out.ReleasedSeatIDs)
		assert.Equal(t, "AVAILABLE", f.seatStatus(t, 1))

		view, err := f.coord.Session(sid)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusExpired, view.Status)
	})

	t.Run("reports the new deadline when expiry was pushed forward", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{1}, seatTTL)
		require.NoError(t, err)

		f.clk.Add(10 * time.Minute)
		_, err = f.coord.Touch(sid, seatTTL)
		require.NoError(t, err)

		out, err := f.coord.Expire(sid, startTime.Add(sessionTTL))
		require.NoError(t, err)
		assert.False(t, out.Expired)
		require.NotNil(t, out.NotDueUntil)
		assert.Equal(t, startTime.Add(10*time.Minute+seatTTL), *out.NotDueUntil)
	})

	t.Run("idempotent on terminal sessions", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Cancel(sid)
		require.NoError(t, err)

		out, err := f.coord.Expire(sid, startTime.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, out.Expired)
		assert.Nil(t, out.NotDueUntil)
	})
}

// collectEvents drains exactly n queued events from a subscription.
// Publishing finishes before a mutating call returns, so the events are
// already buffered when the caller reads.
func collectEvents(t *testing.T, ch <-chan inventory.Event, n int) []inventory.Event {
	t.Helper()
	out := make([]inventory.Event, 0, n)
	for len(out) < n {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "subscription closed after %d of %d events", len(out), n)
			out = append(out, ev)
		default:
			t.Fatalf("wanted %d queued events, found %d", n, len(out))
		}
	}
	return out
}

func TestCoordinatorEventStream(t *testing.T) {
	t.Run("snapshot arrives first and reflects current holds", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		_, err := f.coord.Lock(sid, []seating.SeatID{1, 2}, seatTTL)
		require.NoError(t, err)

		events, cancel := f.coord.Subscribe()
		defer cancel()

		snap := collectEvents(t, events, 1)[0]
		require.Equal(t, inventory.EventSnapshot, snap.Type)
		require.Len(t, snap.Seats, 40)
		assert.Equal(t, "LOCKED", snap.Seats[0].Status)
		assert.Equal(t, "LOCKED", snap.Seats[1].Status)
		assert.Equal(t, "AVAILABLE", snap.Seats[2].Status)
	})

	t.Run("mutations stream in commit order", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)

		events, cancel := f.coord.Subscribe()
		defer cancel()
		collectEvents(t, events, 1) // snapshot

		_, err := f.coord.Lock(sid, []seating.SeatID{2, 1}, seatTTL)
		require.NoError(t, err)
		locked := collectEvents(t, events, 2)
		assert.Equal(t, inventory.EventSeatLocked, locked[0].Type)
		assert.Equal(t, seating.SeatID(1), locked[0].SeatID)
		assert.Equal(t, seating.SeatID(2), locked[1].SeatID)
		require.NotNil(t, locked[0].LockedUntil)
		assert.Equal(t, startTime.Add(seatTTL), *locked[0].LockedUntil)

		_, err = f.coord.Replace(sid, []seating.SeatID{2, 3}, seatTTL)
		require.NoError(t, err)
		swapped := collectEvents(t, events, 2)
		assert.Equal(t, inventory.EventSeatReleased, swapped[0].Type)
		assert.Equal(t, seating.SeatID(1), swapped[0].SeatID)
		assert.Equal(t, inventory.EventSeatLocked, swapped[1].Type)
		assert.Equal(t, seating.SeatID(3), swapped[1].SeatID)

		_, err = f.coord.Complete(sid)
		require.NoError(t, err)
		sold := collectEvents(t, events, 2)
		for i, id := range []seating.SeatID{2, 3} {
			assert.Equal(t, inventory.EventSeatSold, sold[i].Type)
			assert.Equal(t, id, sold[i].SeatID)
		}
	})

	t.Run("cancel and expire publish a release per freed seat", func(t *testing.T) {
		f := newCoordFixture(t)
		first := f.newDraft(t)
		second := f.newDraft(t)
		_, err := f.coord.Lock(first, []seating.SeatID{4, 5}, seatTTL)
		require.NoError(t, err)
		_, err = f.coord.Lock(second, []seating.SeatID{11, 12}, seatTTL)
		require.NoError(t, err)

		events, cancel := f.coord.Subscribe()
		defer cancel()
		collectEvents(t, events, 1) // snapshot

		_, err = f.coord.Cancel(first)
		require.NoError(t, err)
		out, err := f.coord.Expire(second, startTime.Add(sessionTTL))
		require.NoError(t, err)
		require.True(t, out.Expired)

		released := collectEvents(t, events, 4)
		for i, id := range []seating.SeatID{4, 5, 11, 12} {
			assert.Equal(t, inventory.EventSeatReleased, released[i].Type)
			assert.Equal(t, id, released[i].SeatID)
			assert.Nil(t, released[i].LockedUntil)
		}
	})

	t.Run("failed mutations publish nothing", func(t *testing.T) {
		f := newCoordFixture(t)
		sid := f.newDraft(t)
		rival := f.newDraft(t)
		_, err := f.coord.Lock(rival, []seating.SeatID{7}, seatTTL)
		require.NoError(t, err)

		events, cancel := f.coord.Subscribe()
		defer cancel()
		collectEvents(t, events, 1) // snapshot

		_, err = f.coord.Lock(sid, []seating.SeatID{7}, seatTTL)
		require.Error(t, err)
		_, err = f.coord.Lock(sid, []seating.SeatID{1, 3}, seatTTL)
		require.Error(t, err)

		select {
		case ev := <-events:
			t.Fatalf("unexpected event %q for seat %d", ev.Type, ev.SeatID)
		default:
		}
	})
}

func TestCoordinatorConcurrentLocks(t *testing.T) {
	t.Run("exactly one of two racing sessions wins a contested block", func(t *testing.T) {
		f := newCoordFixture(t)
		a := f.newDraft(t)
		b := f.newDraft(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, sid := range []uuid.UUID{a, b} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = f.coord.Lock(sid, []seating.SeatID{11, 12, 13}, seatTTL)
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				var confErr *inventory.ConflictError
				require.ErrorAs(t, err, &confErr)
			}
		}
		assert.Equal(t, 1, winners)
		assert.Equal(t, "LOCKED", f.seatStatus(t, 11))
	})

	t.Run("disjoint blocks both succeed", func(t *testing.T) {
		f := newCoordFixture(t)
		a := f.newDraft(t)
		b := f.newDraft(t)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = f.coord.Lock(a, []seating.SeatID{1, 2}, seatTTL)
		}()
		go func() {
			defer wg.Done()
			_, errs[1] = f.coord.Lock(b, []seating.SeatID{14, 15}, seatTTL)
		}()
		wg.Wait()

		require.NoError(t, errs[0])
		require.NoError(t, errs[1])
	})
}
