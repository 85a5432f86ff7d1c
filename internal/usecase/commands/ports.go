package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShowtimeSnapshot is the catalog's read model of one showtime, enough to
// decide whether it accepts bookings.
type ShowtimeSnapshot struct {
	ID         int64
	MovieTitle string
	ScreenID   int64
	ScreenName string
	StartsAt   time.Time
	SalesOpen  bool
}

// ShowtimeRepository is the external catalog collaborator. The engine only
// reads from it; showtime management is out of scope.
type ShowtimeRepository interface {
	FindByID(ctx context.Context, showtimeID int64) (*ShowtimeSnapshot, error)
}

// ArchivedBooking is the finalized record written once a session completes.
type ArchivedBooking struct {
	SessionID   uuid.UUID
	ShowtimeID  int64
	SeatIDs     []int64
	ComboIDs    []int64
	CompletedAt time.Time
}

// BookingLedger persists completed bookings for the surrounding platform.
// A failed write never un-sells seats; the payment workflow retries it.
type BookingLedger interface {
	Archive(ctx context.Context, b ArchivedBooking) error
}

// BookingConfirmedEvent is handed to the notification collaborator (email
// sending lives outside this engine).
type BookingConfirmedEvent struct {
	BookingSessionID uuid.UUID `json:"bookingSessionId"`
	ShowtimeID       int64     `json:"showtimeId"`
	SeatIDs          []int64   `json:"seatIds"`
	ComboIDs         []int64   `json:"comboIds"`
	ConfirmedAt      time.Time `json:"confirmedAt"`
}

// NotificationPublisher delivers booking confirmations best-effort; errors
// are logged, never surfaced to the payment workflow.
type NotificationPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev BookingConfirmedEvent) error
}
