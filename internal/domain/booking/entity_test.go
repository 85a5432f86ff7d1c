//go:build unit

package booking_test

import (
	"testing"
	"time"

	"cineseat/internal/domain/booking"
	"cineseat/internal/domain/seating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	baseTTL  = 15 * time.Minute
)

func newDraft() *booking.Session {
	return booking.NewSession(1201, baseTime, baseTTL)
}

func TestNewSession(t *testing.T) {
	s := newDraft()

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, int64(1201), s.ShowtimeID())
	assert.Equal(t, booking.StatusDraft, s.Status())
	assert.True(t, s.IsDraft())
	assert.Equal(t, baseTime, s.CreatedAt())
	assert.Empty(t, s.SeatIDs())
	assert.Empty(t, s.ComboIDs())

	require.NotNil(t, s.ExpiresAt())
	assert.Equal(t, baseTime.Add(baseTTL), *s.ExpiresAt())
}

func TestSessionSeats(t *testing.T) {
	t.Run("add and remove keep sorted view", func(t *testing.T) {
		s := newDraft()
		require.NoError(t, s.AddSeats([]seating.SeatID{23, 21, 22}))

		assert.Equal(t, []seating.SeatID{21, 22, 23}, s.SeatIDs())
		assert.Equal(t, 3, s.SeatCount())
		assert.True(t, s.HoldsSeat(22))
		assert.False(t, s.HoldsSeat(24))

		require.NoError(t, s.RemoveSeats([]seating.SeatID{22}))
		assert.Equal(t, []seating.SeatID{21, 23}, s.SeatIDs())
	})

	t.Run("add rejected after terminal transition", func(t *testing.T) {
		s := newDraft()
		require.NoError(t, s.Cancel())
		assert.ErrorIs(t, s.AddSeats([]seating.SeatID{1}), booking.ErrNotDraft)
		assert.ErrorIs(t, s.RemoveSeats([]seating.SeatID{1}), booking.ErrTerminalImmutable)
	})

	t.Run("set combos replaces the selection", func(t *testing.T) {
		s := newDraft()
		require.NoError(t, s.SetCombos([]int64{3, 1}))
		assert.Equal(t, []int64{1, 3}, s.ComboIDs())

		require.NoError(t, s.SetCombos([]int64{2}))
		assert.Equal(t, []int64{2}, s.ComboIDs())

		require.NoError(t, s.Complete())
		assert.ErrorIs(t, s.SetCombos([]int64{9}), booking.ErrNotDraft)
	})
}

func TestSessionExpiry(t *testing.T) {
	t.Run("extend moves forward only", func(t *testing.T) {
		s := newDraft()
		initial := *s.ExpiresAt()

		require.NoError(t, s.ExtendExpiry(initial.Add(-time.Minute)))
		assert.Equal(t, initial, *s.ExpiresAt())

		later := initial.Add(5 * time.Minute)
		require.NoError(t, s.ExtendExpiry(later))
		assert.Equal(t, later, *s.ExpiresAt())
	})

	t.Run("has expired honors the boundary", func(t *testing.T) {
		s := newDraft()
		deadline := *s.ExpiresAt()

		assert.False(t, s.HasExpired(deadline.Add(-time.Nanosecond)))
		assert.True(t, s.HasExpired(deadline))
		assert.True(t, s.HasExpired(deadline.Add(time.Hour)))
	})

	t.Run("expire requires the deadline to have passed", func(t *testing.T) {
		s := newDraft()
		assert.ErrorIs(t, s.Expire(baseTime), booking.ErrNotYetExpired)
		assert.Equal(t, booking.StatusDraft, s.Status())

		require.NoError(t, s.Expire(baseTime.Add(baseTTL)))
		assert.Equal(t, booking.StatusExpired, s.Status())
		assert.Nil(t, s.ExpiresAt())
	})
}

func TestSessionTransitions(t *testing.T) {
	cases := []struct {
		name       string
		transition func(*booking.Session) error
		status     booking.Status
	}{
		{"cancel", func(s *booking.Session) error { return s.Cancel() }, booking.StatusCanceled},
		{"complete", func(s *booking.Session) error { return s.Complete() }, booking.StatusCompleted},
		{
			"expire",
			func(s *booking.Session) error { return s.Expire(baseTime.Add(time.Hour)) },
			booking.StatusExpired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name+" from draft", func(t *testing.T) {
			s := newDraft()
			require.NoError(t, tc.transition(s))
			assert.Equal(t, tc.status, s.Status())
			assert.True(t, s.Status().IsTerminal())
			assert.Nil(t, s.ExpiresAt())
		})

		t.Run(tc.name+" rejected when already terminal", func(t *testing.T) {
			s := newDraft()
			require.NoError(t, s.Cancel())
			assert.ErrorIs(t, tc.transition(s), booking.ErrInvalidTransition)
			assert.Equal(t, booking.StatusCanceled, s.Status())
		})
	}

	t.Run("extend rejected on terminal session", func(t *testing.T) {
		s := newDraft()
		require.NoError(t, s.Complete())
		assert.ErrorIs(t, s.ExtendExpiry(baseTime.Add(time.Hour)), booking.ErrNotDraft)
	})
}

func TestSessionExpiresAtIsCopied(t *testing.T) {
	s := newDraft()
	first := s.ExpiresAt()
	*first = first.Add(time.Hour)
	assert.Equal(t, baseTime.Add(baseTTL), *s.ExpiresAt())
}
