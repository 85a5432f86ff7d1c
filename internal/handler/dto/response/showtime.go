package response

import (
	"time"

	"cineseat/internal/usecase/queries"
)

type SeatResponse struct {
	SeatID      int64      `json:"seatId"`
	Row         string     `json:"row"`
	Number      int        `json:"number"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	LockedUntil *time.Time `json:"lockedUntil,omitempty"`
}

type SeatMapResponse struct {
	ShowtimeID int64          `json:"showtimeId"`
	ScreenID   int64          `json:"screenId"`
	ScreenName string         `json:"screenName"`
	MovieTitle string         `json:"movieTitle"`
	StartsAt   time.Time      `json:"startsAt"`
	Seats      []SeatResponse `json:"seats"`
}

func FromSeatMapView(v *queries.SeatMapView) *SeatMapResponse {
	seats := make([]SeatResponse, len(v.Seats))
	for i, s := range v.Seats {
		seats[i] = SeatResponse{
			SeatID:      s.SeatID,
			Row:         s.Row,
			Number:      s.Number,
			Type:        s.Type,
			Status:      s.Status,
			LockedUntil: s.LockedUntil,
		}
	}
	return &SeatMapResponse{
		ShowtimeID: v.ShowtimeID,
		ScreenID:   v.ScreenID,
		ScreenName: v.ScreenName,
		MovieTitle: v.MovieTitle,
		StartsAt:   v.StartsAt,
		Seats:      seats,
	}
}
