package seating

// SeatID identifies a seat within a showtime's layout.
type SeatID int64

type SeatStatus string

const (
	StatusAvailable SeatStatus = "AVAILABLE"
	StatusLocked    SeatStatus = "LOCKED"
	StatusSold      SeatStatus = "SOLD"
)

func (s SeatStatus) String() string {
	return string(s)
}

func (s SeatStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusLocked, StatusSold:
		return true
	default:
		return false
	}
}

type SeatType string

const (
	SeatTypeStandard SeatType = "STANDARD"
	SeatTypeVIP      SeatType = "VIP"
	SeatTypeCouple   SeatType = "COUPLE"
)

// Seat is one entry of a showtime's static layout.
type Seat struct {
	ID     SeatID
	Row    string
	Number int
	Type   SeatType
}
