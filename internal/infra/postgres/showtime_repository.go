package postgres

import (
	"context"

	"cineseat/internal/domain/seating"
	"cineseat/internal/pkg/errs"
	"cineseat/internal/usecase/commands"
	"cineseat/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ShowtimeRepository reads the showtime catalog the surrounding platform
// maintains. It backs all three ports the engine needs: the write-side
// snapshot, the read-side header, and the registry's inventory hydration.
type ShowtimeRepository struct {
	pool *pgxpool.Pool
}

func NewShowtimeRepository(pool *pgxpool.Pool) *ShowtimeRepository {
	return &ShowtimeRepository{pool: pool}
}

func (r *ShowtimeRepository) FindByID(ctx context.Context, showtimeID int64) (*commands.ShowtimeSnapshot, error) {
	const query = `
SELECT s.id, s.movie_title, s.screen_id, sc.name, s.starts_at, s.sales_open
FROM showtimes s
JOIN screens sc ON sc.id = s.screen_id
WHERE s.id = $1`

	var snap commands.ShowtimeSnapshot
	err := r.pool.QueryRow(ctx, query, showtimeID).Scan(
		&snap.ID, &snap.MovieTitle, &snap.ScreenID, &snap.ScreenName, &snap.StartsAt, &snap.SalesOpen,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errs.Mark(err, errs.ErrShowtimeNotFound)
		}
		return nil, errs.WrapMark(err, "find showtime", errs.ErrCatalogUnavailable)
	}
	return &snap, nil
}

func (r *ShowtimeRepository) GetShowtime(ctx context.Context, showtimeID int64) (*queries.ShowtimeHeader, error) {
	snap, err := r.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	return &queries.ShowtimeHeader{
		ID:         snap.ID,
		MovieTitle: snap.MovieTitle,
		ScreenID:   snap.ScreenID,
		ScreenName: snap.ScreenName,
		StartsAt:   snap.StartsAt,
	}, nil
}

// ShowtimeInventory loads a showtime's static seat layout together with
// the seats already sold in earlier completed bookings, so a coordinator
// restarted mid-sales comes up consistent with the ledger.
func (r *ShowtimeRepository) ShowtimeInventory(ctx context.Context, showtimeID int64) (seating.Layout, []seating.SeatID, error) {
	const seatQuery = `
SELECT st.id, st.row_label, st.seat_number, st.seat_type
FROM seats st
JOIN showtimes s ON s.screen_id = st.screen_id
WHERE s.id = $1
ORDER BY st.row_label, st.seat_number`

	rows, err := r.pool.Query(ctx, seatQuery, showtimeID)
	if err != nil {
		return seating.Layout{}, nil, errs.WrapMark(err, "load seat layout", errs.ErrCatalogUnavailable)
	}
	defer rows.Close()

	var seats []seating.Seat
	for rows.Next() {
		var s seating.Seat
		var seatType string
		if err := rows.Scan(&s.ID, &s.Row, &s.Number, &seatType); err != nil {
			return seating.Layout{}, nil, errs.WrapMark(err, "scan seat", errs.ErrCatalogUnavailable)
		}
		s.Type = seating.SeatType(seatType)
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		return seating.Layout{}, nil, errs.WrapMark(err, "iterate seats", errs.ErrCatalogUnavailable)
	}
	if len(seats) == 0 {
		return seating.Layout{}, nil, errs.Mark(errs.New("showtime has no seats"), errs.ErrShowtimeNotFound)
	}

	layout, err := seating.NewLayout(seats)
	if err != nil {
		return seating.Layout{}, nil, errs.Wrap(err, "build layout")
	}

	const soldQuery = `SELECT seat_id FROM booking_seats WHERE showtime_id = $1`
	soldRows, err := r.pool.Query(ctx, soldQuery, showtimeID)
	if err != nil {
		return seating.Layout{}, nil, errs.WrapMark(err, "load sold seats", errs.ErrCatalogUnavailable)
	}
	defer soldRows.Close()

	var sold []seating.SeatID
	for soldRows.Next() {
		var id seating.SeatID
		if err := soldRows.Scan(&id); err != nil {
			return seating.Layout{}, nil, errs.WrapMark(err, "scan sold seat", errs.ErrCatalogUnavailable)
		}
		sold = append(sold, id)
	}
	if err := soldRows.Err(); err != nil {
		return seating.Layout{}, nil, errs.WrapMark(err, "iterate sold seats", errs.ErrCatalogUnavailable)
	}

	return layout, sold, nil
}
