package booking

import (
	"errors"
	"sort"
	"time"

	"cineseat/internal/domain/seating"

	"github.com/google/uuid"
)

var (
	ErrNotDraft          = errors.New("session is not in draft state")
	ErrSessionExpired    = errors.New("session has expired")
	ErrNotYetExpired     = errors.New("session has not reached its expiry time")
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrTerminalImmutable = errors.New("terminal session cannot be mutated")
	ErrMissingExpiry     = errors.New("draft session must carry an expiry")
	ErrShowtimeNotOnSale = errors.New("showtime does not accept bookings")
)

// Session is one customer's in-progress seat selection for a single
// showtime. It is mutated only under the owning showtime's exclusion
// domain; once terminal it never changes again. The invariant
// "expiresAt == nil iff status is terminal" is maintained by every
// transition below.
type Session struct {
	id         uuid.UUID
	showtimeID int64
	status     Status
	seatIDs    map[seating.SeatID]struct{}
	comboIDs   map[int64]struct{}
	createdAt  time.Time
	expiresAt  *time.Time
}

func NewSession(showtimeID int64, now time.Time, ttl time.Duration) *Session {
	expires := now.Add(ttl)
	return &Session{
		id:         uuid.New(),
		showtimeID: showtimeID,
		status:     StatusDraft,
		seatIDs:    make(map[seating.SeatID]struct{}),
		comboIDs:   make(map[int64]struct{}),
		createdAt:  now,
		expiresAt:  &expires,
	}
}

func (s *Session) ID() uuid.UUID     { return s.id }
func (s *Session) ShowtimeID() int64 { return s.showtimeID }
func (s *Session) Status() Status    { return s.status }
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// ExpiresAt is nil exactly when the session is terminal.
func (s *Session) ExpiresAt() *time.Time {
	if s.expiresAt == nil {
		return nil
	}
	t := *s.expiresAt
	return &t
}

func (s *Session) IsDraft() bool {
	return s.status == StatusDraft
}

func (s *Session) HasExpired(now time.Time) bool {
	return s.expiresAt != nil && !now.Before(*s.expiresAt)
}

func (s *Session) HoldsSeat(id seating.SeatID) bool {
	_, ok := s.seatIDs[id]
	return ok
}

func (s *Session) SeatCount() int {
	return len(s.seatIDs)
}

// SeatIDs returns the held seats in ascending order.
func (s *Session) SeatIDs() []seating.SeatID {
	out := make([]seating.SeatID, 0, len(s.seatIDs))
	for id := range s.seatIDs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Session) ComboIDs() []int64 {
	out := make([]int64, 0, len(s.comboIDs))
	for id := range s.comboIDs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddSeats and RemoveSeats mirror the inventory side of a committed lock or
// release; callers pair them transactionally with the seat-map mutation.
func (s *Session) AddSeats(ids []seating.SeatID) error {
	if !s.IsDraft() {
		return ErrNotDraft
	}
	for _, id := range ids {
		s.seatIDs[id] = struct{}{}
	}
	return nil
}

func (s *Session) RemoveSeats(ids []seating.SeatID) error {
	if s.status.IsTerminal() {
		return ErrTerminalImmutable
	}
	for _, id := range ids {
		delete(s.seatIDs, id)
	}
	return nil
}

func (s *Session) SetCombos(ids []int64) error {
	if !s.IsDraft() {
		return ErrNotDraft
	}
	s.comboIDs = make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		s.comboIDs[id] = struct{}{}
	}
	return nil
}

// ExtendExpiry pushes expiresAt forward, never backward: the session must
// not outlive its seat holds, but a fresh hold must not shorten it either.
func (s *Session) ExtendExpiry(until time.Time) error {
	if !s.IsDraft() {
		return ErrNotDraft
	}
	if s.expiresAt == nil {
		return ErrMissingExpiry
	}
	if until.After(*s.expiresAt) {
		s.expiresAt = &until
	}
	return nil
}

// Cancel is the explicit client-driven terminal transition.
func (s *Session) Cancel() error {
	if s.status != StatusDraft {
		return ErrInvalidTransition
	}
	s.status = StatusCanceled
	s.expiresAt = nil
	return nil
}

// Complete finalizes the session after the external payment collaborator
// confirms payment.
func (s *Session) Complete() error {
	if s.status != StatusDraft {
		return ErrInvalidTransition
	}
	s.status = StatusCompleted
	s.expiresAt = nil
	return nil
}

// Expire is driven only by the expiry sweep and requires the TTL to have
// actually elapsed.
func (s *Session) Expire(now time.Time) error {
	if s.status != StatusDraft {
		return ErrInvalidTransition
	}
	if !s.HasExpired(now) {
		return ErrNotYetExpired
	}
	s.status = StatusExpired
	s.expiresAt = nil
	return nil
}
