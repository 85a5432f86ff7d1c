package queries

import (
	"context"
	"time"

	"cineseat/internal/inventory"
)

// ShowtimeHeader is the catalog metadata shown alongside a seat map.
type ShowtimeHeader struct {
	ID         int64
	MovieTitle string
	ScreenID   int64
	ScreenName string
	StartsAt   time.Time
}

// ShowtimeCatalog is the read-side port onto the external showtime
// catalog.
type ShowtimeCatalog interface {
	GetShowtime(ctx context.Context, showtimeID int64) (*ShowtimeHeader, error)
}

// ShowtimeQueries serves the seat map and its live stream. Both are
// read-only with respect to the inventory; subscribing never blocks
// writers.
type ShowtimeQueries interface {
	SeatMap(ctx context.Context, showtimeID int64) (*SeatMapView, error)
	SubscribeSeats(ctx context.Context, showtimeID int64) (*SeatStream, error)
}

type showtimeQueriesImpl struct {
	catalog  ShowtimeCatalog
	registry *inventory.Registry
}

func NewShowtimeQueries(catalog ShowtimeCatalog, registry *inventory.Registry) ShowtimeQueries {
	return &showtimeQueriesImpl{catalog: catalog, registry: registry}
}

func (q *showtimeQueriesImpl) SeatMap(ctx context.Context, showtimeID int64) (*SeatMapView, error) {
	header, err := q.catalog.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	coord, err := q.registry.Coordinator(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	return &SeatMapView{
		ShowtimeID: header.ID,
		ScreenID:   header.ScreenID,
		ScreenName: header.ScreenName,
		MovieTitle: header.MovieTitle,
		StartsAt:   header.StartsAt,
		Seats:      SeatViewsFrom(coord.Snapshot()),
	}, nil
}

func (q *showtimeQueriesImpl) SubscribeSeats(ctx context.Context, showtimeID int64) (*SeatStream, error) {
	// Resolve through the catalog first so an unknown showtime 404s
	// before the stream starts.
	if _, err := q.catalog.GetShowtime(ctx, showtimeID); err != nil {
		return nil, err
	}
	coord, err := q.registry.Coordinator(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	events, cancel := coord.Subscribe()
	return &SeatStream{Events: events, Cancel: cancel}, nil
}
