package api

import (
	"errors"
	"net/http"

	"cineseat/internal/domain/seating"
	"cineseat/internal/handler/httperr"
	"cineseat/internal/inventory"
	"cineseat/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortBookingError translates usecase sentinels into the HTTP error
// envelope. Selection errors carry per-field details, conflicts carry the
// contested seat IDs.
func abortBookingError(c *gin.Context, err error) {
	var selErr *seating.SelectionError
	var confErr *inventory.ConflictError
	switch {
	case errors.As(err, &confErr):
		httperr.AbortWithConflict(c, http.StatusConflict, err,
			"Some requested seats are no longer available", seatIDsOf(confErr.SeatIDs))
	case errors.As(err, &selErr):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Seat selection rejected", selectionFields(selErr))
	case errors.Is(err, errs.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Booking session not found", nil)
	case errors.Is(err, errs.ErrShowtimeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Showtime not found", nil)
	case errors.Is(err, errs.ErrShowtimeNotOnSale):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Showtime is not accepting bookings",
			httperr.Field("showtimeId", "showtime is not on sale"))
	case errors.Is(err, errs.ErrSessionExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Booking session has expired", nil)
	case errors.Is(err, errs.ErrSessionNotDraft), errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Booking session is not modifiable in its current state", nil)
	case errors.Is(err, errs.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Showtime catalog is unavailable", nil)
	case errors.Is(err, errs.ErrLedgerWriteFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Booking could not be recorded", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
	}
}

func selectionFields(selErr *seating.SelectionError) map[string]httperr.FieldError {
	var msg string
	switch selErr.Rule {
	case seating.RuleEmptySelection:
		msg = "at least one seat is required"
	case seating.RuleTooManySeats:
		msg = "a selection may hold at most 8 seats"
	case seating.RuleUnknownSeat:
		msg = "selection names seats outside the showtime layout"
	case seating.RuleOrphanGap:
		msg = "selection would strand a single empty seat"
	default:
		msg = selErr.Error()
	}
	return httperr.Field("seatIds", msg)
}

func seatIDsOf(ids []seating.SeatID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
