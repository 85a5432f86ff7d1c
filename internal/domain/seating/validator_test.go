//go:build unit

package seating_test

import (
	"errors"
	"testing"

	"cineseat/internal/domain/seating"
	"cineseat/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type selectionCase struct {
	name      string
	occupied  []seating.SeatID
	requested []seating.SeatID
	rule      seating.Rule
	seatIDs   []seating.SeatID
}

func TestValidateSelection(t *testing.T) {
	// Row A: seats 1..10, row B: seats 11..20.
	layout := builder.NewLayoutBuilder().
		WithRow("A", 10).
		WithRow("B", 10).
		Build(t)

	runSelectionCases(t, layout, []selectionCase{
		{
			name:      "single seat in empty row",
			requested: []seating.SeatID{5},
		},
		{
			name:      "full contiguous block",
			requested: []seating.SeatID{3, 4, 5},
		},
		{
			name:      "maximum allowed seats",
			requested: []seating.SeatID{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:      "nine seats rejected",
			requested: []seating.SeatID{1, 2, 3, 4, 5, 6, 7, 8, 9},
			rule:      seating.RuleTooManySeats,
		},
		{
			name:      "empty selection rejected",
			requested: nil,
			rule:      seating.RuleEmptySelection,
		},
		{
			name:      "unknown seat rejected",
			requested: []seating.SeatID{5, 999},
			rule:      seating.RuleUnknownSeat,
			seatIDs:   []seating.SeatID{999},
		},
		{
			name:      "gap of one between selection and row edge is allowed",
			requested: []seating.SeatID{2, 3},
		},
		{
			name:      "selection straddling a taken seat leaves no gap",
			occupied:  []seating.SeatID{5},
			requested: []seating.SeatID{4, 6},
		},
		{
			name:      "orphan gap inside the selection",
			requested: []seating.SeatID{3, 5},
			rule:      seating.RuleOrphanGap,
			seatIDs:   []seating.SeatID{4},
		},
		{
			name:      "orphan gap against existing occupancy",
			occupied:  []seating.SeatID{6},
			requested: []seating.SeatID{3, 4},
			rule:      seating.RuleOrphanGap,
			seatIDs:   []seating.SeatID{5},
		},
		{
			name:      "two-seat gap against existing occupancy is allowed",
			occupied:  []seating.SeatID{7},
			requested: []seating.SeatID{3, 4},
		},
		{
			name:      "untouched row is never inspected",
			occupied:  []seating.SeatID{11, 13},
			requested: []seating.SeatID{1},
		},
		{
			name:      "gaps reported per touched row",
			occupied:  []seating.SeatID{13},
			requested: []seating.SeatID{3, 5, 15},
			rule:      seating.RuleOrphanGap,
			seatIDs:   []seating.SeatID{4, 14},
		},
	})
}

func TestValidateSelectionEdgeSeats(t *testing.T) {
	layout := builder.NewLayoutBuilder().WithRow("A", 3).Build(t)

	t.Run("first and last seat strand the middle", func(t *testing.T) {
		err := seating.ValidateSelection(layout, nil, []seating.SeatID{1, 3})
		var selErr *seating.SelectionError
		require.ErrorAs(t, err, &selErr)
		assert.Equal(t, seating.RuleOrphanGap, selErr.Rule)
		assert.Equal(t, []seating.SeatID{2}, selErr.SeatIDs)
	})

	t.Run("whole row at once", func(t *testing.T) {
		err := seating.ValidateSelection(layout, nil, []seating.SeatID{1, 2, 3})
		assert.NoError(t, err)
	})

	t.Run("edge seat alone never strands anything", func(t *testing.T) {
		err := seating.ValidateSelection(layout, nil, []seating.SeatID{1})
		assert.NoError(t, err)
	})
}

func runSelectionCases(t *testing.T, layout seating.Layout, cases []selectionCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			occupied := make(map[seating.SeatID]bool, len(tc.occupied))
			for _, id := range tc.occupied {
				occupied[id] = true
			}

			err := seating.ValidateSelection(layout, occupied, tc.requested)
			if tc.rule == "" {
				assert.NoError(t, err)
				return
			}

			var selErr *seating.SelectionError
			require.True(t, errors.As(err, &selErr), "expected SelectionError, got %v", err)
			assert.Equal(t, tc.rule, selErr.Rule)
			if tc.seatIDs != nil {
				assert.Equal(t, tc.seatIDs, selErr.SeatIDs)
			}
		})
	}
}
