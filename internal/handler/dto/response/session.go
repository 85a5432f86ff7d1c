package response

import (
	"time"

	"cineseat/internal/usecase/commands"
	"cineseat/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionItems struct {
	Seats  []int64 `json:"seats"`
	Combos []int64 `json:"combos"`
}

type SessionResponse struct {
	BookingSessionID uuid.UUID    `json:"bookingSessionId"`
	ShowtimeID       int64        `json:"showtimeId"`
	State            string       `json:"state"`
	CreatedAt        time.Time    `json:"createdAt"`
	ExpiresAt        *time.Time   `json:"expiresAt"`
	Items            SessionItems `json:"items"`
}

type CancelSessionResponse struct {
	BookingSessionID uuid.UUID `json:"bookingSessionId"`
	State            string    `json:"state"`
	ReleasedSeatIDs  []int64   `json:"releasedSeatIds"`
}

type TouchSessionResponse struct {
	BookingSessionID    uuid.UUID  `json:"bookingSessionId"`
	ExpiresAt           *time.Time `json:"expiresAt"`
	LockedSeatsExtended []int64    `json:"lockedSeatsExtended"`
}

type LockSeatsResponse struct {
	BookingSessionID uuid.UUID `json:"bookingSessionId"`
	ShowtimeID       int64     `json:"showtimeId"`
	LockedSeatIDs    []int64   `json:"lockedSeatIds"`
	LockedUntil      time.Time `json:"lockedUntil"`
	CurrentSeatIDs   []int64   `json:"currentSeatIds"`
}

type ReleaseSeatsResponse struct {
	BookingSessionID uuid.UUID `json:"bookingSessionId"`
	ShowtimeID       int64     `json:"showtimeId"`
	ReleasedSeatIDs  []int64   `json:"releasedSeatIds"`
	CurrentSeatIDs   []int64   `json:"currentSeatIds"`
}

type ReplaceSeatsResponse struct {
	BookingSessionID uuid.UUID `json:"bookingSessionId"`
	ShowtimeID       int64     `json:"showtimeId"`
	NewSeatIDs       []int64   `json:"newSeatIds"`
	ReleasedSeatIDs  []int64   `json:"releasedSeatIds"`
	LockedUntil      time.Time `json:"lockedUntil"`
}

type ConfirmSessionResponse struct {
	BookingSessionID uuid.UUID `json:"bookingSessionId"`
	State            string    `json:"state"`
	SoldSeatIDs      []int64   `json:"soldSeatIds"`
}

func FromSessionView(v *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		BookingSessionID: v.ID,
		ShowtimeID:       v.ShowtimeID,
		State:            v.State,
		CreatedAt:        v.CreatedAt,
		ExpiresAt:        v.ExpiresAt,
		Items: SessionItems{
			Seats:  emptyIfNil(v.SeatIDs),
			Combos: emptyIfNil(v.ComboIDs),
		},
	}
}

func FromCancelResult(r *commands.CancelResult) *CancelSessionResponse {
	return &CancelSessionResponse{
		BookingSessionID: r.Session.ID,
		State:            r.Session.State,
		ReleasedSeatIDs:  emptyIfNil(r.ReleasedSeatIDs),
	}
}

func FromTouchResult(r *commands.TouchResult) *TouchSessionResponse {
	return &TouchSessionResponse{
		BookingSessionID:    r.Session.ID,
		ExpiresAt:           r.Session.ExpiresAt,
		LockedSeatsExtended: emptyIfNil(r.ExtendedSeatIDs),
	}
}

func FromLockResult(r *commands.LockSeatsResult) *LockSeatsResponse {
	return &LockSeatsResponse{
		BookingSessionID: r.Session.ID,
		ShowtimeID:       r.Session.ShowtimeID,
		LockedSeatIDs:    emptyIfNil(r.LockedSeatIDs),
		LockedUntil:      r.LockedUntil,
		CurrentSeatIDs:   emptyIfNil(r.Session.SeatIDs),
	}
}

func FromReleaseResult(r *commands.ReleaseSeatsResult) *ReleaseSeatsResponse {
	return &ReleaseSeatsResponse{
		BookingSessionID: r.Session.ID,
		ShowtimeID:       r.Session.ShowtimeID,
		ReleasedSeatIDs:  emptyIfNil(r.ReleasedSeatIDs),
		CurrentSeatIDs:   emptyIfNil(r.Session.SeatIDs),
	}
}

func FromReplaceResult(r *commands.ReplaceSeatsResult) *ReplaceSeatsResponse {
	return &ReplaceSeatsResponse{
		BookingSessionID: r.Session.ID,
		ShowtimeID:       r.Session.ShowtimeID,
		NewSeatIDs:       emptyIfNil(r.NewSeatIDs),
		ReleasedSeatIDs:  emptyIfNil(r.ReleasedSeatIDs),
		LockedUntil:      r.LockedUntil,
	}
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmSessionResponse {
	return &ConfirmSessionResponse{
		BookingSessionID: r.Session.ID,
		State:            r.Session.State,
		SoldSeatIDs:      emptyIfNil(r.SoldSeatIDs),
	}
}

func emptyIfNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
