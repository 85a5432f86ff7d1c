//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cineseat/internal/domain/seating"
	"cineseat/internal/handler/api"
	resdto "cineseat/internal/handler/dto/response"
	"cineseat/internal/inventory"
	"cineseat/internal/pkg/errs"
	"cineseat/internal/usecase/queries"
	"cineseat/tests/common/httptest"
	queriesmock "cineseat/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShowtimeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockShowtimeQueries
	handler     *api.ShowtimeHandler
}

func (s *ShowtimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockShowtimeQueries(s.mockCtrl)
	s.handler = api.NewShowtimeHandler(s.mockQueries)

	s.router.GET("/showtimes/:id/seats", s.handler.GetSeatMap)
	s.router.GET("/showtimes/:id/seats/stream", s.handler.StreamSeatEvents)
}

func (s *ShowtimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShowtimeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShowtimeHandlerTestSuite))
}

func seatMapFixture() *queries.SeatMapView {
	lockedUntil := time.Date(2026, 3, 14, 18, 5, 0, 0, time.UTC)
	return &queries.SeatMapView{
		ShowtimeID: 1201,
		ScreenID:   3,
		ScreenName: "Screen 3",
		MovieTitle: "Interstellar",
		StartsAt:   time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
		Seats: []queries.SeatView{
			{SeatID: 21, Row: "C", Number: 1, Type: "STANDARD", Status: "AVAILABLE"},
			{SeatID: 22, Row: "C", Number: 2, Type: "STANDARD", Status: "LOCKED", LockedUntil: &lockedUntil},
			{SeatID: 23, Row: "C", Number: 3, Type: "PREMIUM", Status: "SOLD"},
		},
	}
}

// ================================================================================
// TestGetSeatMap
// ================================================================================

func (s *ShowtimeHandlerTestSuite) TestGetSeatMap() {
	url := "/showtimes/1201/seats"

	s.Run("success: returns 200 OK with the full seat map", func() {
		s.mockQueries.EXPECT().SeatMap(gomock.Any(), int64(1201)).
			Return(seatMapFixture(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.SeatMapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1201), response.ShowtimeID)
		s.Equal("Interstellar", response.MovieTitle)
		s.Len(response.Seats, 3)
		s.Equal("LOCKED", response.Seats[1].Status)
		s.NotNil(response.Seats[1].LockedUntil)
		s.Nil(response.Seats[0].LockedUntil)
	})

	s.Run("error: 400 Bad Request for a non-numeric ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/abc/seats", nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid showtime ID")
		s.Equal("must be a positive integer", body.Errors["id"].Msg)
	})

	s.Run("error: 400 Bad Request for a non-positive ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/0/seats", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid showtime ID")
	})

	s.Run("error: 404 Not Found for unknown showtime", func() {
		s.mockQueries.EXPECT().SeatMap(gomock.Any(), int64(1201)).
			Return(nil, errs.ErrShowtimeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Showtime not found")
	})

	s.Run("error: 500 when the catalog is unreachable", func() {
		s.mockQueries.EXPECT().SeatMap(gomock.Any(), int64(1201)).
			Return(nil, errs.ErrCatalogUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "catalog is unavailable")
	})
}

// ================================================================================
// TestStreamSeatEvents
// ================================================================================

func (s *ShowtimeHandlerTestSuite) TestStreamSeatEvents() {
	url := "/showtimes/1201/seats/stream"

	s.Run("success: streams the snapshot and incrementals as SSE", func() {
		events := make(chan inventory.Event, 2)
		events <- inventory.Event{
			Type: inventory.EventSnapshot,
			Seats: []inventory.SeatState{
				{SeatID: 21, Row: "C", Number: 1, Type: "STANDARD", Status: "AVAILABLE"},
			},
		}
		events <- inventory.Event{Type: inventory.EventSeatLocked, SeatID: seating.SeatID(21)}
		close(events)

		canceled := false
		stream := &queries.SeatStream{
			Events: events,
			Cancel: func() { canceled = true },
		}
		s.mockQueries.EXPECT().SubscribeSeats(gomock.Any(), int64(1201)).
			Return(stream, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/event-stream", rec.Header().Get("Content-Type"))
		s.Equal("no-cache", rec.Header().Get("Cache-Control"))

		body := rec.Body.String()
		s.Contains(body, "event:snapshot")
		s.Contains(body, "event:seat_locked")
		s.Contains(body, `"seatId":21`)
		s.True(canceled, "stream must be canceled when the handler returns")
	})

	s.Run("error: 404 Not Found for unknown showtime", func() {
		s.mockQueries.EXPECT().SubscribeSeats(gomock.Any(), int64(1201)).
			Return(nil, errs.ErrShowtimeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Showtime not found")
	})

	s.Run("error: 400 Bad Request for a non-numeric ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/showtimes/abc/seats/stream", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid showtime ID")
	})
}
