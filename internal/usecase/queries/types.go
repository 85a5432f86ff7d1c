package queries

import (
	"time"

	"cineseat/internal/inventory"

	"github.com/google/uuid"
)

// SessionView is the read model of one booking session.
type SessionView struct {
	ID         uuid.UUID
	ShowtimeID int64
	State      string
	SeatIDs    []int64
	ComboIDs   []int64
	CreatedAt  time.Time
	ExpiresAt  *time.Time
}

// SeatView is one seat of a showtime's map.
type SeatView struct {
	SeatID      int64
	Row         string
	Number      int
	Type        string
	Status      string
	LockedUntil *time.Time
}

// SeatMapView is the full seat map of one showtime.
type SeatMapView struct {
	ShowtimeID int64
	ScreenID   int64
	ScreenName string
	MovieTitle string
	StartsAt   time.Time
	Seats      []SeatView
}

// SeatStream is a live subscription to one showtime's inventory events.
// Cancel must be called when the consumer goes away; it is safe to call
// twice.
type SeatStream struct {
	Events <-chan inventory.Event
	Cancel func()
}

func SessionViewFrom(v inventory.SessionView) *SessionView {
	seatIDs := make([]int64, len(v.SeatIDs))
	for i, id := range v.SeatIDs {
		seatIDs[i] = int64(id)
	}
	return &SessionView{
		ID:         v.ID,
		ShowtimeID: v.ShowtimeID,
		State:      v.Status.String(),
		SeatIDs:    seatIDs,
		ComboIDs:   v.ComboIDs,
		CreatedAt:  v.CreatedAt,
		ExpiresAt:  v.ExpiresAt,
	}
}

func SeatViewsFrom(states []inventory.SeatState) []SeatView {
	out := make([]SeatView, len(states))
	for i, s := range states {
		out[i] = SeatView{
			SeatID:      int64(s.SeatID),
			Row:         s.Row,
			Number:      s.Number,
			Type:        s.Type,
			Status:      s.Status,
			LockedUntil: s.LockedUntil,
		}
	}
	return out
}
