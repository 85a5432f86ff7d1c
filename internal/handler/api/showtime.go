package api

import (
	"encoding/json"
	"errors"
	"net/http"

	resdto "cineseat/internal/handler/dto/response"
	"cineseat/internal/handler/httperr"
	"cineseat/internal/pkg/errs"
	"cineseat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ShowtimeHandler struct {
	showtimeQueries queries.ShowtimeQueries
}

func NewShowtimeHandler(showtimeQueries queries.ShowtimeQueries) *ShowtimeHandler {
	return &ShowtimeHandler{
		showtimeQueries: showtimeQueries,
	}
}

// @Summary Get seat map
// @Description Get the full seat map of a showtime with live seat statuses
// @Tags showtimes
// @Produce json
// @Param id path int true "Showtime ID"
// @Success 200 {object} resdto.SeatMapResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /showtimes/{id}/seats [get]
func (h *ShowtimeHandler) GetSeatMap(c *gin.Context) {
	showtimeID, ok := showtimeIDParam(c)
	if !ok {
		return
	}

	view, err := h.showtimeQueries.SeatMap(c.Request.Context(), showtimeID)
	if err != nil {
		abortShowtimeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSeatMapView(view))
}

// @Summary Stream seat events
// @Description Server-sent event stream of seat changes; opens with a full snapshot
// @Tags showtimes
// @Produce text/event-stream
// @Param id path int true "Showtime ID"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /showtimes/{id}/seats/stream [get]
func (h *ShowtimeHandler) StreamSeatEvents(c *gin.Context) {
	showtimeID, ok := showtimeIDParam(c)
	if !ok {
		return
	}

	stream, err := h.showtimeQueries.SubscribeSeats(c.Request.Context(), showtimeID)
	if err != nil {
		abortShowtimeError(c, err)
		return
	}
	defer stream.Cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, open := <-stream.Events:
			if !open {
				// Subscriber fell behind and was dropped; the client
				// reconnects and starts from a fresh snapshot.
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				return
			}
			c.SSEvent(string(ev.Type), string(data))
			c.Writer.Flush()
		}
	}
}

func showtimeIDParam(c *gin.Context) (int64, bool) {
	var params struct {
		ID int64 `uri:"id" binding:"required,gt=0"`
	}
	if err := c.ShouldBindUri(&params); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err,
			"Invalid showtime ID format", httperr.Field("id", "must be a positive integer"))
		return 0, false
	}
	return params.ID, true
}

func abortShowtimeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrShowtimeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Showtime not found", nil)
	case errors.Is(err, errs.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Showtime catalog is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
	}
}
