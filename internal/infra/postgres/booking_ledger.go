package postgres

import (
	"context"

	"cineseat/internal/pkg/errs"
	"cineseat/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingLedger archives completed bookings. Writes are idempotent so the
// payment workflow can retry a failed confirmation without double-booking.
type BookingLedger struct {
	pool *pgxpool.Pool
}

func NewBookingLedger(pool *pgxpool.Pool) *BookingLedger {
	return &BookingLedger{pool: pool}
}

func (l *BookingLedger) Archive(ctx context.Context, b commands.ArchivedBooking) error {
	err := pgx.BeginFunc(ctx, l.pool, func(tx pgx.Tx) error {
		const bookingStmt = `
INSERT INTO bookings (session_id, showtime_id, completed_at)
VALUES ($1, $2, $3)
ON CONFLICT (session_id) DO NOTHING`
		if _, err := tx.Exec(ctx, bookingStmt, b.SessionID, b.ShowtimeID, b.CompletedAt); err != nil {
			return errs.Wrap(err, "insert booking")
		}

		const seatStmt = `
INSERT INTO booking_seats (session_id, showtime_id, seat_id)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`
		for _, seatID := range b.SeatIDs {
			if _, err := tx.Exec(ctx, seatStmt, b.SessionID, b.ShowtimeID, seatID); err != nil {
				return errs.Wrap(err, "insert booking seat")
			}
		}

		const comboStmt = `
INSERT INTO booking_combos (session_id, combo_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
		for _, comboID := range b.ComboIDs {
			if _, err := tx.Exec(ctx, comboStmt, b.SessionID, comboID); err != nil {
				return errs.Wrap(err, "insert booking combo")
			}
		}
		return nil
	})
	if err != nil {
		return errs.Mark(err, errs.ErrLedgerWriteFailed)
	}
	return nil
}
