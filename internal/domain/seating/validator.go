package seating

import (
	"fmt"
	"sort"
)

// MaxSeatsPerSelection caps how many seats a single operation may request.
const MaxSeatsPerSelection = 8

type Rule string

const (
	RuleUnknownSeat    Rule = "unknown_seat"
	RuleEmptySelection Rule = "empty_selection"
	RuleTooManySeats   Rule = "too_many_seats"
	RuleOrphanGap      Rule = "orphan_gap"
)

// SelectionError reports which shape rule a proposed selection breaks and
// the seats involved.
type SelectionError struct {
	Rule    Rule
	SeatIDs []SeatID
}

func (e *SelectionError) Error() string {
	switch e.Rule {
	case RuleUnknownSeat:
		return fmt.Sprintf("unknown seat(s): %v", e.SeatIDs)
	case RuleEmptySelection:
		return "seat selection is empty"
	case RuleTooManySeats:
		return fmt.Sprintf("selection exceeds %d seats", MaxSeatsPerSelection)
	case RuleOrphanGap:
		return fmt.Sprintf("selection would isolate a single empty seat: %v", e.SeatIDs)
	default:
		return fmt.Sprintf("invalid seat selection: %v", e.SeatIDs)
	}
}

// ValidateSelection checks a proposed lock request against the static shape
// rules. occupied must hold every seat that will count as taken after the
// operation commits, except the requested seats themselves: seats already
// SOLD plus seats LOCKED by any session that keeps its lock. The orphan-gap
// rule is evaluated on the post-operation layout, per row; rows the request
// does not touch are never inspected.
func ValidateSelection(layout Layout, occupied map[SeatID]bool, requested []SeatID) error {
	if len(requested) == 0 {
		return &SelectionError{Rule: RuleEmptySelection}
	}
	if len(requested) > MaxSeatsPerSelection {
		return &SelectionError{Rule: RuleTooManySeats, SeatIDs: sortedIDs(requested)}
	}

	var unknown []SeatID
	for _, id := range requested {
		if !layout.Contains(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return &SelectionError{Rule: RuleUnknownSeat, SeatIDs: sortedIDs(unknown)}
	}

	taken := make(map[SeatID]bool, len(occupied)+len(requested))
	for id, occ := range occupied {
		if occ {
			taken[id] = true
		}
	}
	touched := make(map[string]bool)
	for _, id := range requested {
		taken[id] = true
		seat, _ := layout.Seat(id)
		touched[seat.Row] = true
	}

	var gaps []SeatID
	for row := range touched {
		gaps = append(gaps, orphanGaps(layout.RowSeats(row), taken)...)
	}
	if len(gaps) > 0 {
		return &SelectionError{Rule: RuleOrphanGap, SeatIDs: sortedIDs(gaps)}
	}
	return nil
}

// orphanGaps finds free seats sitting alone between two taken neighbours.
// Runs of two or more free seats are fine; only the single-seat gap is
// unsellable.
func orphanGaps(row []Seat, taken map[SeatID]bool) []SeatID {
	var out []SeatID
	for i := 1; i < len(row)-1; i++ {
		if taken[row[i].ID] {
			continue
		}
		if taken[row[i-1].ID] && taken[row[i+1].ID] {
			out = append(out, row[i].ID)
		}
	}
	return out
}

func sortedIDs(ids []SeatID) []SeatID {
	out := make([]SeatID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
