package api

import (
	"net/http"

	reqdto "cineseat/internal/handler/dto/request"
	resdto "cineseat/internal/handler/dto/response"
	"cineseat/internal/handler/httperr"
	"cineseat/internal/usecase/commands"
	"cineseat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewSessionHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *SessionHandler {
	return &SessionHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking session
// @Description Open a draft booking session against a showtime
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSessionRequest true "Session request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid request format", httperr.Field("showtimeId", "showtimeId is required"))
		return
	}

	view, err := h.bookingCommands.CreateSession(c.Request.Context(), req.ShowtimeID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSessionView(view))
}

// @Summary Get booking session
// @Description Get a booking session by ID; terminal sessions keep returning their final state
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Booking session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Cancel booking session
// @Description Cancel a draft session and release every seat it holds
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Booking session ID"
// @Success 200 {object} resdto.CancelSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id} [delete]
func (h *SessionHandler) CancelSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	res, err := h.bookingCommands.Cancel(c.Request.Context(), sessionID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(res))
}

// @Summary Touch booking session
// @Description Extend the session deadline and every held seat lock
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Booking session ID"
// @Success 200 {object} resdto.TouchSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id}/touch [patch]
func (h *SessionHandler) TouchSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	res, err := h.bookingCommands.Touch(c.Request.Context(), sessionID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTouchResult(res))
}

// @Summary Lock seats
// @Description Atomically lock a seat set for the session; all-or-nothing
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.SeatSelectionRequest true "Seat selection"
// @Success 200 {object} resdto.LockSeatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-sessions/{id}/seats/lock [post]
func (h *SessionHandler) LockSeats(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	req, ok := bindSeatSelection(c)
	if !ok {
		return
	}

	res, err := h.bookingCommands.LockSeats(c.Request.Context(), sessionID, req.SeatIDs)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLockResult(res))
}

// @Summary Release seats
// @Description Release a subset of the session's locked seats
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.SeatSelectionRequest true "Seat selection"
// @Success 200 {object} resdto.ReleaseSeatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id}/seats/release [post]
func (h *SessionHandler) ReleaseSeats(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	req, ok := bindSeatSelection(c)
	if !ok {
		return
	}

	res, err := h.bookingCommands.ReleaseSeats(c.Request.Context(), sessionID, req.SeatIDs)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReleaseResult(res))
}

// @Summary Replace seats
// @Description Atomically swap the session's held seats for a new set
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.SeatSelectionRequest true "Seat selection"
// @Success 200 {object} resdto.ReplaceSeatsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-sessions/{id}/seats/replace [post]
func (h *SessionHandler) ReplaceSeats(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	req, ok := bindSeatSelection(c)
	if !ok {
		return
	}

	res, err := h.bookingCommands.ReplaceSeats(c.Request.Context(), sessionID, req.SeatIDs)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReplaceResult(res))
}

// @Summary Set combos
// @Description Replace the session's concession combo selection
// @Tags booking-sessions
// @Accept json
// @Produce json
// @Param id path string true "Booking session ID"
// @Param request body reqdto.SetCombosRequest true "Combo selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-sessions/{id}/combos [put]
func (h *SessionHandler) SetCombos(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var req reqdto.SetCombosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid request format", httperr.Field("comboIds", "comboIds is required"))
		return
	}

	view, err := h.bookingCommands.SetCombos(c.Request.Context(), sessionID, req.ComboIDs)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Confirm booking session
// @Description Mark the session paid: held seats become SOLD and the booking is archived
// @Tags booking-sessions
// @Produce json
// @Param id path string true "Booking session ID"
// @Success 200 {object} resdto.ConfirmSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /booking-sessions/{id}/confirm [post]
func (h *SessionHandler) ConfirmSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	res, err := h.bookingCommands.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(res))
}

func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid booking session ID format", httperr.Field("id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func bindSeatSelection(c *gin.Context) (reqdto.SeatSelectionRequest, bool) {
	var req reqdto.SeatSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid request format", httperr.Field("seatIds", "seatIds is required"))
		return req, false
	}
	return req, true
}
