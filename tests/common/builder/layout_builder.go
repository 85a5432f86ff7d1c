//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"cineseat/internal/domain/seating"
	"cineseat/internal/infra/memory"
	"cineseat/internal/usecase/commands"

	"github.com/stretchr/testify/require"
)

// LayoutBuilder assembles seat layouts for tests. Seat IDs are assigned
// sequentially starting at the given base so tests can refer to seats by
// predictable numbers.
type LayoutBuilder struct {
	nextID seating.SeatID
	seats  []seating.Seat
}

func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{nextID: 1}
}

func (b *LayoutBuilder) WithBaseID(id int64) *LayoutBuilder {
	b.nextID = seating.SeatID(id)
	return b
}

// WithRow appends a row of standard seats numbered 1..count.
func (b *LayoutBuilder) WithRow(row string, count int) *LayoutBuilder {
	return b.WithTypedRow(row, count, seating.SeatTypeStandard)
}

func (b *LayoutBuilder) WithTypedRow(row string, count int, seatType seating.SeatType) *LayoutBuilder {
	for n := 1; n <= count; n++ {
		b.seats = append(b.seats, seating.Seat{
			ID:     b.nextID,
			Row:    row,
			Number: n,
			Type:   seatType,
		})
		b.nextID++
	}
	return b
}

func (b *LayoutBuilder) WithSeat(id int64, row string, number int) *LayoutBuilder {
	b.seats = append(b.seats, seating.Seat{
		ID:     seating.SeatID(id),
		Row:    row,
		Number: number,
		Type:   seating.SeatTypeStandard,
	})
	return b
}

func (b *LayoutBuilder) Build(t *testing.T) seating.Layout {
	t.Helper()
	layout, err := seating.NewLayout(b.seats)
	require.NoError(t, err, "Failed to build test layout")
	return layout
}

func (b *LayoutBuilder) Seats() []seating.Seat {
	return b.seats
}

// ShowtimeFixture builds a seeded in-memory catalog entry around a layout.
// Defaults: on sale, starting two hours from now.
func ShowtimeFixture(t *testing.T, showtimeID int64, layout seating.Layout, now time.Time) memory.Fixture {
	t.Helper()
	return memory.Fixture{
		Snapshot: commands.ShowtimeSnapshot{
			ID:         showtimeID,
			MovieTitle: "Interstellar",
			ScreenID:   showtimeID,
			ScreenName: "Screen 1",
			StartsAt:   now.Add(2 * time.Hour),
			SalesOpen:  true,
		},
		Layout: layout,
	}
}
