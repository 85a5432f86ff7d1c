package queries

import (
	"context"
	"errors"

	"cineseat/internal/inventory"
	"cineseat/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingQueries reads session state. Terminal sessions keep returning
// their final snapshot.
type BookingQueries interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)
}

type bookingQueriesImpl struct {
	registry *inventory.Registry
}

func NewBookingQueries(registry *inventory.Registry) BookingQueries {
	return &bookingQueriesImpl{registry: registry}
}

func (q *bookingQueriesImpl) GetSession(_ context.Context, sessionID uuid.UUID) (*SessionView, error) {
	coord, err := q.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionNotFound)
	}
	view, err := coord.Session(sessionID)
	if err != nil {
		if errors.Is(err, inventory.ErrSessionNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, err
	}
	return SessionViewFrom(view), nil
}
