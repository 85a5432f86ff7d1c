package inventory

import (
	"sort"
	"time"

	"cineseat/internal/domain/seating"

	"github.com/google/uuid"
)

// seatEntry is the authoritative status record for one seat. Exactly one of
// the three statuses holds at any instant; heldBy and lockedUntil are
// meaningful only while the seat is LOCKED.
type seatEntry struct {
	status      seating.SeatStatus
	heldBy      uuid.UUID
	lockedUntil time.Time
}

// seatMap is the per-showtime seat inventory. It is not safe for concurrent
// use; the owning Coordinator serializes every access.
type seatMap struct {
	layout  seating.Layout
	entries map[seating.SeatID]*seatEntry
}

func newSeatMap(layout seating.Layout, sold []seating.SeatID) *seatMap {
	entries := make(map[seating.SeatID]*seatEntry, layout.Size())
	for _, s := range layout.Seats() {
		entries[s.ID] = &seatEntry{status: seating.StatusAvailable}
	}
	for _, id := range sold {
		if e, ok := entries[id]; ok {
			e.status = seating.StatusSold
		}
	}
	return &seatMap{layout: layout, entries: entries}
}

// tryLock marks every seat LOCKED for sessionID, or none of them. On
// conflict it returns the seats that were not AVAILABLE, in ascending
// order.
func (m *seatMap) tryLock(ids []seating.SeatID, sessionID uuid.UUID, until time.Time) []seating.SeatID {
	var conflicts []seating.SeatID
	for _, id := range ids {
		if m.entries[id].status != seating.StatusAvailable {
			conflicts = append(conflicts, id)
		}
	}
	if len(conflicts) > 0 {
		sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
		return conflicts
	}
	for _, id := range ids {
		e := m.entries[id]
		e.status = seating.StatusLocked
		e.heldBy = sessionID
		e.lockedUntil = until
	}
	return nil
}

// release frees the given seats where they are currently locked by
// sessionID and reports which ones actually changed. Seats in any other
// state are left untouched.
func (m *seatMap) release(ids []seating.SeatID, sessionID uuid.UUID) []seating.SeatID {
	released := make([]seating.SeatID, 0, len(ids))
	for _, id := range ids {
		e, ok := m.entries[id]
		if !ok || e.status != seating.StatusLocked || e.heldBy != sessionID {
			continue
		}
		e.status = seating.StatusAvailable
		e.heldBy = uuid.Nil
		e.lockedUntil = time.Time{}
		released = append(released, id)
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// extend pushes lockedUntil forward for every seat locked by sessionID and
// returns the affected seats.
func (m *seatMap) extend(sessionID uuid.UUID, until time.Time) []seating.SeatID {
	var extended []seating.SeatID
	for id, e := range m.entries {
		if e.status == seating.StatusLocked && e.heldBy == sessionID {
			if until.After(e.lockedUntil) {
				e.lockedUntil = until
			}
			extended = append(extended, id)
		}
	}
	sort.Slice(extended, func(i, j int) bool { return extended[i] < extended[j] })
	return extended
}

// markSold converts LOCKED seats held by sessionID to SOLD.
func (m *seatMap) markSold(ids []seating.SeatID, sessionID uuid.UUID) []seating.SeatID {
	sold := make([]seating.SeatID, 0, len(ids))
	for _, id := range ids {
		e, ok := m.entries[id]
		if !ok || e.status != seating.StatusLocked || e.heldBy != sessionID {
			continue
		}
		e.status = seating.StatusSold
		e.heldBy = uuid.Nil
		e.lockedUntil = time.Time{}
		sold = append(sold, id)
	}
	sort.Slice(sold, func(i, j int) bool { return sold[i] < sold[j] })
	return sold
}

// occupied builds the occupancy view the selection validator needs: every
// seat held by anyone, regardless of which session holds it. exclude lists
// seats treated as already freed (the release half of a replace).
func (m *seatMap) occupied(exclude map[seating.SeatID]bool) map[seating.SeatID]bool {
	occ := make(map[seating.SeatID]bool)
	for id, e := range m.entries {
		if exclude[id] {
			continue
		}
		switch e.status {
		case seating.StatusSold:
			occ[id] = true
		case seating.StatusLocked:
			occ[id] = true
		}
	}
	return occ
}

// snapshot renders the whole map in layout order.
func (m *seatMap) snapshot() []SeatState {
	seats := m.layout.Seats()
	out := make([]SeatState, 0, len(seats))
	for _, s := range seats {
		e := m.entries[s.ID]
		state := SeatState{
			SeatID: s.ID,
			Row:    s.Row,
			Number: s.Number,
			Type:   string(s.Type),
			Status: e.status.String(),
		}
		if e.status == seating.StatusLocked {
			until := e.lockedUntil
			state.LockedUntil = &until
		}
		out = append(out, state)
	}
	return out
}
