//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var seatRows = []string{"A", "B", "C", "D"}

// CreateTestScreen inserts a screen with four rows of ten seats each.
// Seat IDs are assigned sequentially from baseSeatID, so row C starts at
// baseSeatID+20.
func CreateTestScreen(t *testing.T, db DBLike, screenID int64, name string, baseSeatID int64) []int64 {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO screens (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING", screenID, name)
	require.NoError(t, err)

	seatIDs := make([]int64, 0, len(seatRows)*10)
	seatID := baseSeatID
	for _, row := range seatRows {
		for number := 1; number <= 10; number++ {
			_, err := db.Exec(ctx,
				"INSERT INTO seats (id, screen_id, row_label, seat_number, seat_type) VALUES ($1, $2, $3, $4, 'STANDARD') ON CONFLICT (id) DO NOTHING",
				seatID, screenID, row, number)
			require.NoError(t, err)
			seatIDs = append(seatIDs, seatID)
			seatID++
		}
	}
	return seatIDs
}

func CreateTestShowtime(t *testing.T, db DBLike, showtimeID, screenID int64, title string, startsAt time.Time, salesOpen bool) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO showtimes (id, movie_title, screen_id, starts_at, sales_open) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING",
		showtimeID, title, screenID, startsAt, salesOpen)
	require.NoError(t, err)
}

// SeedShowtime provisions an on-sale showtime on its own screen. Seat IDs
// run from baseSeatID to baseSeatID+39.
func SeedShowtime(t *testing.T, db DBLike, showtimeID int64, baseSeatID int64) []int64 {
	t.Helper()
	seatIDs := CreateTestScreen(t, db, showtimeID, fmt.Sprintf("Screen %d", showtimeID), baseSeatID)
	CreateTestShowtime(t, db, showtimeID, showtimeID, "Interstellar", time.Now().Add(2*time.Hour), true)
	return seatIDs
}

// CountBookingSeats reports how many seats are archived for a showtime.
func CountBookingSeats(t *testing.T, db DBLike, showtimeID int64) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM booking_seats WHERE showtime_id = $1", showtimeID).Scan(&count)
	require.NoError(t, err)
	return count
}

// ResetDB truncates the booking archive. Catalog rows stay; each test
// uses its own showtime and seat ID range anyway.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE booking_combos, booking_seats, bookings")
	return err
}
