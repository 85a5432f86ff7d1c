package seating

import (
	"errors"
	"sort"
)

var (
	ErrEmptyLayout       = errors.New("layout has no seats")
	ErrDuplicateSeat     = errors.New("duplicate seat in layout")
	ErrDuplicatePosition = errors.New("duplicate row/number position in layout")
)

// Layout is the immutable seat arrangement of one screen for one showtime.
// Seats within a row are kept in ascending seat-number order; adjacency is
// positional within that order.
type Layout struct {
	rows   []string
	byID   map[SeatID]Seat
	byRow  map[string][]Seat
	seatCt int
}

func NewLayout(seats []Seat) (Layout, error) {
	if len(seats) == 0 {
		return Layout{}, ErrEmptyLayout
	}

	byID := make(map[SeatID]Seat, len(seats))
	byRow := make(map[string][]Seat)
	pos := make(map[string]map[int]bool)

	for _, s := range seats {
		if _, ok := byID[s.ID]; ok {
			return Layout{}, ErrDuplicateSeat
		}
		byID[s.ID] = s
		if pos[s.Row] == nil {
			pos[s.Row] = make(map[int]bool)
		}
		if pos[s.Row][s.Number] {
			return Layout{}, ErrDuplicatePosition
		}
		pos[s.Row][s.Number] = true
		byRow[s.Row] = append(byRow[s.Row], s)
	}

	rows := make([]string, 0, len(byRow))
	for row := range byRow {
		rows = append(rows, row)
	}
	sort.Strings(rows)
	for _, row := range rows {
		sort.Slice(byRow[row], func(i, j int) bool {
			return byRow[row][i].Number < byRow[row][j].Number
		})
	}

	return Layout{rows: rows, byID: byID, byRow: byRow, seatCt: len(seats)}, nil
}

func (l Layout) Size() int {
	return l.seatCt
}

// Rows returns the row labels in ascending order.
func (l Layout) Rows() []string {
	out := make([]string, len(l.rows))
	copy(out, l.rows)
	return out
}

func (l Layout) Seat(id SeatID) (Seat, bool) {
	s, ok := l.byID[id]
	return s, ok
}

func (l Layout) Contains(id SeatID) bool {
	_, ok := l.byID[id]
	return ok
}

// RowSeats returns the seats of a row in ascending seat-number order.
func (l Layout) RowSeats(row string) []Seat {
	src := l.byRow[row]
	out := make([]Seat, len(src))
	copy(out, src)
	return out
}

// Seats returns every seat, row by row in display order.
func (l Layout) Seats() []Seat {
	out := make([]Seat, 0, l.seatCt)
	for _, row := range l.rows {
		out = append(out, l.byRow[row]...)
	}
	return out
}
