package request

type CreateSessionRequest struct {
	ShowtimeID int64 `json:"showtimeId" binding:"required"`
}

// SeatSelectionRequest carries the seat set for lock, release and replace.
// The per-operation shape rules (count, contiguity) are enforced by the
// engine; binding only rejects a missing field.
type SeatSelectionRequest struct {
	SeatIDs []int64 `json:"seatIds" binding:"required"`
}

type SetCombosRequest struct {
	ComboIDs []int64 `json:"comboIds" binding:"required"`
}
