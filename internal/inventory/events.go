package inventory

import (
	"time"

	"cineseat/internal/domain/seating"
)

type EventType string

const (
	EventSnapshot     EventType = "snapshot"
	EventSeatLocked   EventType = "seat_locked"
	EventSeatReleased EventType = "seat_released"
	EventSeatSold     EventType = "seat_sold"
	EventHeartbeat    EventType = "heartbeat"
)

// SeatState is one seat as seen by a subscriber: static layout data plus
// the current status.
type SeatState struct {
	SeatID      seating.SeatID `json:"seatId"`
	Row         string         `json:"row"`
	Number      int            `json:"number"`
	Type        string         `json:"type"`
	Status      string         `json:"status"`
	LockedUntil *time.Time     `json:"lockedUntil,omitempty"`
}

// Event is one entry of a showtime's ordered inventory-change stream.
// Seats is populated for snapshot events only; SeatID and LockedUntil only
// for incremental ones.
type Event struct {
	Type        EventType      `json:"type"`
	SeatID      seating.SeatID `json:"seatId,omitempty"`
	LockedUntil *time.Time     `json:"lockedUntil,omitempty"`
	Seats       []SeatState    `json:"seats,omitempty"`
	Time        time.Time      `json:"time"`
}
