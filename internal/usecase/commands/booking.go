package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cineseat/internal/domain/booking"
	"cineseat/internal/domain/seating"
	"cineseat/internal/inventory"
	"cineseat/internal/pkg/clock"
	"cineseat/internal/pkg/config"
	"cineseat/internal/pkg/errs"
	"cineseat/internal/usecase/queries"

	"github.com/google/uuid"
)

type LockSeatsResult struct {
	Session       *queries.SessionView
	LockedSeatIDs []int64
	LockedUntil   time.Time
}

type ReleaseSeatsResult struct {
	Session         *queries.SessionView
	ReleasedSeatIDs []int64
}

type ReplaceSeatsResult struct {
	Session         *queries.SessionView
	NewSeatIDs      []int64
	ReleasedSeatIDs []int64
	LockedUntil     time.Time
}

type TouchResult struct {
	Session         *queries.SessionView
	ExtendedSeatIDs []int64
}

type CancelResult struct {
	Session         *queries.SessionView
	ReleasedSeatIDs []int64
}

type ConfirmResult struct {
	Session     *queries.SessionView
	SoldSeatIDs []int64
}

// BookingCommands is the engine's single public mutation surface: it
// composes lock-coordinator operations with the session lifecycle.
type BookingCommands interface {
	CreateSession(ctx context.Context, showtimeID int64) (*queries.SessionView, error)
	LockSeats(ctx context.Context, sessionID uuid.UUID, seatIDs []int64) (*LockSeatsResult, error)
	ReleaseSeats(ctx context.Context, sessionID uuid.UUID, seatIDs []int64) (*ReleaseSeatsResult, error)
	ReplaceSeats(ctx context.Context, sessionID uuid.UUID, seatIDs []int64) (*ReplaceSeatsResult, error)
	Touch(ctx context.Context, sessionID uuid.UUID) (*TouchResult, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) (*CancelResult, error)
	SetCombos(ctx context.Context, sessionID uuid.UUID, comboIDs []int64) (*queries.SessionView, error)
	Confirm(ctx context.Context, sessionID uuid.UUID) (*ConfirmResult, error)
}

type bookingCommandsImpl struct {
	showtimeRepo ShowtimeRepository
	registry     *inventory.Registry
	scheduler    *inventory.ExpiryScheduler
	ledger       BookingLedger
	notifier     NotificationPublisher
	clock        clock.Clock
	cfg          config.BookingConfig
	logger       *slog.Logger
}

func NewBookingCommands(
	showtimeRepo ShowtimeRepository,
	registry *inventory.Registry,
	scheduler *inventory.ExpiryScheduler,
	ledger BookingLedger,
	notifier NotificationPublisher,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		showtimeRepo: showtimeRepo,
		registry:     registry,
		scheduler:    scheduler,
		ledger:       ledger,
		notifier:     notifier,
		clock:        clk,
		cfg:          cfg.Booking,
		logger:       logger,
	}
}

func (b *bookingCommandsImpl) CreateSession(ctx context.Context, showtimeID int64) (*queries.SessionView, error) {
	snap, err := b.showtimeRepo.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	if !snap.SalesOpen || !b.clock.Now().Before(snap.StartsAt) {
		return nil, errs.Mark(booking.ErrShowtimeNotOnSale, errs.ErrShowtimeNotOnSale)
	}

	coord, err := b.registry.Coordinator(ctx, showtimeID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	view := coord.CreateSession(b.cfg.SessionTTL)
	b.registry.BindSession(view.ID, showtimeID)
	if view.ExpiresAt != nil {
		b.scheduler.Schedule(view.ID, *view.ExpiresAt)
	}
	return queries.SessionViewFrom(view), nil
}

func (b *bookingCommandsImpl) LockSeats(ctx context.Context, sessionID uuid.UUID, seatIDs []int64) (*LockSeatsResult, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	res, err := coord.Lock(sessionID, toSeatIDs(seatIDs), b.cfg.SeatTTL)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	if res.Session.ExpiresAt != nil {
		b.scheduler.Schedule(sessionID, *res.Session.ExpiresAt)
	}
	return &LockSeatsResult{
		Session:       queries.SessionViewFrom(res.Session),
		LockedSeatIDs: fromSeatIDs(res.LockedSeatIDs),
		LockedUntil:   res.LockedUntil,
	}, nil
}

func (b *bookingCommandsImpl) ReleaseSeats(ctx context.Context, sessionID uuid.UUID, seatIDs []int64) (*ReleaseSeatsResult, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	res, err := coord.Release(sessionID, toSeatIDs(seatIDs))
	if err != nil {
		return nil, mapEngineErr(err)
	}
	return &ReleaseSeatsResult{
		Session:         queries.SessionViewFrom(res.Session),
		ReleasedSeatIDs: fromSeatIDs(res.ReleasedSeatIDs),
	}, nil
}

func (b *bookingCommandsImpl) ReplaceSeats(ctx context.Context, sessionID uuid.UUID, seatIDs []int64) (*ReplaceSeatsResult, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	res, err := coord.Replace(sessionID, toSeatIDs(seatIDs), b.cfg.SeatTTL)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	if res.Session.ExpiresAt != nil {
		b.scheduler.Schedule(sessionID, *res.Session.ExpiresAt)
	}
	return &ReplaceSeatsResult{
		Session:         queries.SessionViewFrom(res.Session),
		NewSeatIDs:      fromSeatIDs(res.NewSeatIDs),
		ReleasedSeatIDs: fromSeatIDs(res.ReleasedSeatIDs),
		LockedUntil:     res.LockedUntil,
	}, nil
}

func (b *bookingCommandsImpl) Touch(ctx context.Context, sessionID uuid.UUID) (*TouchResult, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	res, err := coord.Touch(sessionID, b.cfg.SeatTTL)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	if res.Session.ExpiresAt != nil {
		b.scheduler.Schedule(sessionID, *res.Session.ExpiresAt)
	}
	return &TouchResult{
		Session:         queries.SessionViewFrom(res.Session),
		ExtendedSeatIDs: fromSeatIDs(res.ExtendedSeatIDs),
	}, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, sessionID uuid.UUID) (*CancelResult, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	res, err := coord.Cancel(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	return &CancelResult{
		Session:         queries.SessionViewFrom(res.Session),
		ReleasedSeatIDs: fromSeatIDs(res.ReleasedSeatIDs),
	}, nil
}

func (b *bookingCommandsImpl) SetCombos(ctx context.Context, sessionID uuid.UUID, comboIDs []int64) (*queries.SessionView, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	view, err := coord.SetCombos(sessionID, comboIDs)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	return queries.SessionViewFrom(view), nil
}

func (b *bookingCommandsImpl) Confirm(ctx context.Context, sessionID uuid.UUID) (*ConfirmResult, error) {
	coord, err := b.registry.SessionCoordinator(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	res, err := coord.Complete(sessionID)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	now := b.clock.Now()
	archived := ArchivedBooking{
		SessionID:   res.Session.ID,
		ShowtimeID:  res.Session.ShowtimeID,
		SeatIDs:     fromSeatIDs(res.SoldSeatIDs),
		ComboIDs:    res.Session.ComboIDs,
		CompletedAt: now,
	}
	if err := b.ledger.Archive(ctx, archived); err != nil {
		// Seats stay SOLD; the payment workflow owns the retry.
		b.logger.Error("failed to archive completed booking",
			"session_id", sessionID, "error", err)
		return nil, errs.Mark(err, errs.ErrLedgerWriteFailed)
	}

	if b.notifier != nil {
		ev := BookingConfirmedEvent{
			BookingSessionID: res.Session.ID,
			ShowtimeID:       res.Session.ShowtimeID,
			SeatIDs:          fromSeatIDs(res.SoldSeatIDs),
			ComboIDs:         res.Session.ComboIDs,
			ConfirmedAt:      now,
		}
		if err := b.notifier.PublishBookingConfirmed(ctx, ev); err != nil {
			b.logger.Warn("failed to publish booking confirmation",
				"session_id", sessionID, "error", err)
		}
	}

	return &ConfirmResult{
		Session:     queries.SessionViewFrom(res.Session),
		SoldSeatIDs: fromSeatIDs(res.SoldSeatIDs),
	}, nil
}

// mapEngineErr marks engine and collaborator errors with the usecase
// sentinels the handler layer translates to HTTP statuses. Selection and
// conflict errors keep their concrete types in the chain so handlers can
// surface the offending rule and seats.
func mapEngineErr(err error) error {
	var selErr *seating.SelectionError
	var confErr *inventory.ConflictError
	switch {
	case errors.As(err, &selErr):
		return errs.Mark(err, errs.ErrSeatValidation)
	case errors.As(err, &confErr):
		return errs.Mark(err, errs.ErrSeatConflict)
	case errors.Is(err, inventory.ErrSessionNotFound):
		return errs.Mark(err, errs.ErrSessionNotFound)
	case errors.Is(err, booking.ErrSessionExpired):
		return errs.Mark(err, errs.ErrSessionExpired)
	case errors.Is(err, booking.ErrNotDraft):
		return errs.Mark(err, errs.ErrSessionNotDraft)
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrTerminalImmutable):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, errs.ErrShowtimeNotFound):
		return err
	default:
		return err
	}
}

func toSeatIDs(ids []int64) []seating.SeatID {
	out := make([]seating.SeatID, len(ids))
	for i, id := range ids {
		out[i] = seating.SeatID(id)
	}
	return out
}

func fromSeatIDs(ids []seating.SeatID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
