package inventory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"cineseat/internal/domain/booking"
	"cineseat/internal/domain/seating"
	"cineseat/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("booking session not found")

// ConflictError reports the seats that were not AVAILABLE when a lock or
// replace tried to commit. The operation it aborted applied no changes.
type ConflictError struct {
	SeatIDs []seating.SeatID
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seat(s) already taken: %v", e.SeatIDs)
}

// SessionView is an immutable copy of a session's state, safe to hand out
// beyond the exclusion domain.
type SessionView struct {
	ID         uuid.UUID
	ShowtimeID int64
	Status     booking.Status
	SeatIDs    []seating.SeatID
	ComboIDs   []int64
	CreatedAt  time.Time
	ExpiresAt  *time.Time
}

type LockResult struct {
	Session       SessionView
	LockedSeatIDs []seating.SeatID
	LockedUntil   time.Time
}

type ReleaseResult struct {
	Session         SessionView
	ReleasedSeatIDs []seating.SeatID
}

type ReplaceResult struct {
	Session         SessionView
	NewSeatIDs      []seating.SeatID
	LockedSeatIDs   []seating.SeatID
	ReleasedSeatIDs []seating.SeatID
	LockedUntil     time.Time
}

type TouchResult struct {
	Session         SessionView
	ExtendedSeatIDs []seating.SeatID
}

type CompleteResult struct {
	Session     SessionView
	SoldSeatIDs []seating.SeatID
}

type ExpireOutcome struct {
	// Expired is true when this call performed the DRAFT→EXPIRED
	// transition. Already-terminal sessions report false with no error.
	Expired         bool
	ReleasedSeatIDs []seating.SeatID
	// NotDueUntil is set when the session's expiry was pushed forward
	// after the sweep entry was scheduled; the caller should re-arm.
	NotDueUntil *time.Time
}

// Coordinator is the exclusion domain for one showtime: every mutation of
// the seat map and of the sessions bound to it runs under mu, so the
// mirror invariant between session.seatIDs and the seat entries held by
// that session can never be observed broken. The critical sections do no
// I/O; events are handed to the broadcaster before the mutex is released,
// which preserves commit order for every subscriber, and the broadcaster
// itself never blocks.
type Coordinator struct {
	showtimeID int64

	mu       sync.Mutex
	seats    *seatMap
	sessions map[uuid.UUID]*booking.Session

	broadcaster *Broadcaster
	clock       clock.Clock
}

func NewCoordinator(showtimeID int64, layout seating.Layout, sold []seating.SeatID, bc *Broadcaster, clk clock.Clock) *Coordinator {
	return &Coordinator{
		showtimeID:  showtimeID,
		seats:       newSeatMap(layout, sold),
		sessions:    make(map[uuid.UUID]*booking.Session),
		broadcaster: bc,
		clock:       clk,
	}
}

func (c *Coordinator) ShowtimeID() int64 {
	return c.showtimeID
}

// CreateSession registers a fresh DRAFT session bound to this showtime.
func (c *Coordinator) CreateSession(sessionTTL time.Duration) SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := booking.NewSession(c.showtimeID, c.clock.Now(), sessionTTL)
	c.sessions[sess.ID()] = sess
	return viewOf(sess)
}

// Session returns a read-only copy of one session's current state.
func (c *Coordinator) Session(sessionID uuid.UUID) (SessionView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	return viewOf(sess), nil
}

// Lock places an atomic hold on seatIDs for the session. Either every seat
// transitions AVAILABLE→LOCKED or none does; on conflict the offending
// seats come back in a *ConflictError.
func (c *Coordinator) Lock(sessionID uuid.UUID, seatIDs []seating.SeatID, seatTTL time.Duration) (LockResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, now, err := c.draftSession(sessionID)
	if err != nil {
		return LockResult{}, err
	}

	seatIDs = dedupe(seatIDs)
	if err := seating.ValidateSelection(c.seats.layout, c.seats.occupied(nil), seatIDs); err != nil {
		return LockResult{}, err
	}

	until := now.Add(seatTTL)
	if conflicts := c.seats.tryLock(seatIDs, sessionID, until); len(conflicts) > 0 {
		return LockResult{}, &ConflictError{SeatIDs: conflicts}
	}
	if err := sess.AddSeats(seatIDs); err != nil {
		return LockResult{}, err
	}
	_ = sess.ExtendExpiry(until)

	events := make([]Event, 0, len(seatIDs))
	for _, id := range sortedSeatIDs(seatIDs) {
		u := until
		events = append(events, Event{Type: EventSeatLocked, SeatID: id, LockedUntil: &u, Time: now})
	}
	c.broadcaster.Publish(events...)

	return LockResult{
		Session:       viewOf(sess),
		LockedSeatIDs: sortedSeatIDs(seatIDs),
		LockedUntil:   until,
	}, nil
}

// Release frees the given seats where the session holds them. Seats the
// session does not hold are skipped silently; an empty request is a
// validation error.
func (c *Coordinator) Release(sessionID uuid.UUID, seatIDs []seating.SeatID) (ReleaseResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, now, err := c.draftSession(sessionID)
	if err != nil {
		return ReleaseResult{}, err
	}
	seatIDs = dedupe(seatIDs)
	if len(seatIDs) == 0 {
		return ReleaseResult{}, &seating.SelectionError{Rule: seating.RuleEmptySelection}
	}

	released := c.seats.release(seatIDs, sessionID)
	if err := sess.RemoveSeats(released); err != nil {
		return ReleaseResult{}, err
	}

	events := make([]Event, 0, len(released))
	for _, id := range released {
		events = append(events, Event{Type: EventSeatReleased, SeatID: id, Time: now})
	}
	c.broadcaster.Publish(events...)

	return ReleaseResult{Session: viewOf(sess), ReleasedSeatIDs: released}, nil
}

// Replace swaps the session's hold to exactly newSeatIDs. The lock half is
// validated as if the release half had already happened, so trading seat A
// for its neighbour B never conflicts with A itself. If the lock half
// fails, nothing changes.
func (c *Coordinator) Replace(sessionID uuid.UUID, newSeatIDs []seating.SeatID, seatTTL time.Duration) (ReplaceResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, now, err := c.draftSession(sessionID)
	if err != nil {
		return ReplaceResult{}, err
	}

	newSeatIDs = dedupe(newSeatIDs)
	if len(newSeatIDs) == 0 {
		return ReplaceResult{}, &seating.SelectionError{Rule: seating.RuleEmptySelection}
	}
	newSet := make(map[seating.SeatID]bool, len(newSeatIDs))
	for _, id := range newSeatIDs {
		newSet[id] = true
	}

	toRelease := make([]seating.SeatID, 0)
	releaseSet := make(map[seating.SeatID]bool)
	for _, id := range sess.SeatIDs() {
		if !newSet[id] {
			toRelease = append(toRelease, id)
			releaseSet[id] = true
		}
	}
	toLock := make([]seating.SeatID, 0)
	for _, id := range newSeatIDs {
		if !sess.HoldsSeat(id) {
			toLock = append(toLock, id)
		}
	}

	until := now.Add(seatTTL)

	if len(toLock) > 0 {
		// Validate the full target set against the layout as if toRelease
		// were already free.
		if err := seating.ValidateSelection(c.seats.layout, c.seats.occupied(releaseSet), newSeatIDs); err != nil {
			return ReplaceResult{}, err
		}
		var conflicts []seating.SeatID
		for _, id := range toLock {
			if c.seats.entries[id].status != seating.StatusAvailable {
				conflicts = append(conflicts, id)
			}
		}
		if len(conflicts) > 0 {
			sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
			return ReplaceResult{}, &ConflictError{SeatIDs: conflicts}
		}
	}

	released := c.seats.release(toRelease, sessionID)
	if conflicts := c.seats.tryLock(toLock, sessionID, until); len(conflicts) > 0 {
		// Availability was checked under the same mutex, so this only
		// triggers on a programming error; restore the released seats to
		// keep the operation all-or-nothing.
		c.seats.tryLock(released, sessionID, until)
		return ReplaceResult{}, &ConflictError{SeatIDs: conflicts}
	}
	if err := sess.RemoveSeats(released); err != nil {
		return ReplaceResult{}, err
	}
	if err := sess.AddSeats(toLock); err != nil {
		return ReplaceResult{}, err
	}
	// Keep the remaining held seats on the same deadline as the new ones.
	c.seats.extend(sessionID, until)
	_ = sess.ExtendExpiry(until)

	events := make([]Event, 0, len(released)+len(toLock))
	for _, id := range released {
		events = append(events, Event{Type: EventSeatReleased, SeatID: id, Time: now})
	}
	for _, id := range sortedSeatIDs(toLock) {
		u := until
		events = append(events, Event{Type: EventSeatLocked, SeatID: id, LockedUntil: &u, Time: now})
	}
	c.broadcaster.Publish(events...)

	return ReplaceResult{
		Session:         viewOf(sess),
		NewSeatIDs:      sess.SeatIDs(),
		LockedSeatIDs:   sortedSeatIDs(toLock),
		ReleasedSeatIDs: released,
		LockedUntil:     until,
	}, nil
}

// Touch renews every seat hold of a still-live DRAFT session and pushes
// the session expiry accordingly.
func (c *Coordinator) Touch(sessionID uuid.UUID, seatTTL time.Duration) (TouchResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, now, err := c.draftSession(sessionID)
	if err != nil {
		return TouchResult{}, err
	}

	until := now.Add(seatTTL)
	extended := c.seats.extend(sessionID, until)
	if err := sess.ExtendExpiry(until); err != nil {
		return TouchResult{}, err
	}

	return TouchResult{Session: viewOf(sess), ExtendedSeatIDs: extended}, nil
}

// Cancel is the client-driven terminal transition: all held seats go back
// to AVAILABLE and the session ends CANCELED.
func (c *Coordinator) Cancel(sessionID uuid.UUID) (ReleaseResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.sessions[sessionID]
	if !ok {
		return ReleaseResult{}, ErrSessionNotFound
	}
	held := sess.SeatIDs()
	released := c.seats.release(held, sessionID)
	if err := sess.RemoveSeats(released); err != nil {
		return ReleaseResult{}, err
	}
	if err := sess.Cancel(); err != nil {
		// Undo nothing: a terminal session holds no seats, so released is
		// empty whenever Cancel is rejected.
		return ReleaseResult{}, err
	}

	now := c.clock.Now()
	events := make([]Event, 0, len(released))
	for _, id := range released {
		events = append(events, Event{Type: EventSeatReleased, SeatID: id, Time: now})
	}
	c.broadcaster.Publish(events...)

	return ReleaseResult{Session: viewOf(sess), ReleasedSeatIDs: released}, nil
}

// Complete converts the session's held seats to SOLD after payment was
// confirmed externally. The session must still be a live DRAFT.
func (c *Coordinator) Complete(sessionID uuid.UUID) (CompleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, now, err := c.draftSession(sessionID)
	if err != nil {
		return CompleteResult{}, err
	}

	sold := c.seats.markSold(sess.SeatIDs(), sessionID)
	if err := sess.Complete(); err != nil {
		return CompleteResult{}, err
	}

	events := make([]Event, 0, len(sold))
	for _, id := range sold {
		events = append(events, Event{Type: EventSeatSold, SeatID: id, Time: now})
	}
	c.broadcaster.Publish(events...)

	return CompleteResult{Session: viewOf(sess), SoldSeatIDs: sold}, nil
}

// Expire retires a timed-out session through the same release path as
// Cancel, ending in EXPIRED instead. It is idempotent: terminal sessions
// report Expired=false with no error.
func (c *Coordinator) Expire(sessionID uuid.UUID, now time.Time) (ExpireOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.sessions[sessionID]
	if !ok {
		return ExpireOutcome{}, ErrSessionNotFound
	}
	if sess.Status().IsTerminal() {
		return ExpireOutcome{}, nil
	}
	if !sess.HasExpired(now) {
		until := sess.ExpiresAt()
		return ExpireOutcome{NotDueUntil: until}, nil
	}

	held := sess.SeatIDs()
	released := c.seats.release(held, sessionID)
	if err := sess.RemoveSeats(released); err != nil {
		return ExpireOutcome{}, err
	}
	if err := sess.Expire(now); err != nil {
		return ExpireOutcome{}, err
	}

	events := make([]Event, 0, len(released))
	for _, id := range released {
		events = append(events, Event{Type: EventSeatReleased, SeatID: id, Time: now})
	}
	c.broadcaster.Publish(events...)

	return ExpireOutcome{Expired: true, ReleasedSeatIDs: released}, nil
}

// SetCombos replaces the session's combo selection while it is DRAFT.
func (c *Coordinator) SetCombos(sessionID uuid.UUID, comboIDs []int64) (SessionView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, _, err := c.draftSession(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if err := sess.SetCombos(comboIDs); err != nil {
		return SessionView{}, err
	}
	return viewOf(sess), nil
}

// Snapshot renders the current seat map in layout order.
func (c *Coordinator) Snapshot() []SeatState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seats.snapshot()
}

// Subscribe attaches a new stream subscriber. Taking the snapshot and
// registering happen under mu, so the first event is consistent with every
// incremental that follows.
func (c *Coordinator) Subscribe() (<-chan Event, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Event{Type: EventSnapshot, Seats: c.seats.snapshot(), Time: c.clock.Now()}
	return c.broadcaster.Subscribe(snap)
}

// Heartbeat publishes a keep-alive event when anyone is listening.
func (c *Coordinator) Heartbeat() {
	if c.broadcaster.SubscriberCount() == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broadcaster.Publish(Event{Type: EventHeartbeat, Time: c.clock.Now()})
}

// draftSession resolves a session that must be a live DRAFT. A session
// past its expiry is reported as expired even before the sweep has run.
func (c *Coordinator) draftSession(sessionID uuid.UUID) (*booking.Session, time.Time, error) {
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, time.Time{}, ErrSessionNotFound
	}
	now := c.clock.Now()
	if !sess.IsDraft() {
		return nil, time.Time{}, booking.ErrNotDraft
	}
	if sess.HasExpired(now) {
		return nil, time.Time{}, booking.ErrSessionExpired
	}
	return sess, now, nil
}

func viewOf(sess *booking.Session) SessionView {
	return SessionView{
		ID:         sess.ID(),
		ShowtimeID: sess.ShowtimeID(),
		Status:     sess.Status(),
		SeatIDs:    sess.SeatIDs(),
		ComboIDs:   sess.ComboIDs(),
		CreatedAt:  sess.CreatedAt(),
		ExpiresAt:  sess.ExpiresAt(),
	}
}

func dedupe(ids []seating.SeatID) []seating.SeatID {
	seen := make(map[seating.SeatID]bool, len(ids))
	out := make([]seating.SeatID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func sortedSeatIDs(ids []seating.SeatID) []seating.SeatID {
	out := make([]seating.SeatID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
