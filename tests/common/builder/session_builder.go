//go:build unit || e2e

package builder

import (
	"time"

	"cineseat/internal/handler/dto/request"
	"cineseat/internal/usecase/commands"
	"cineseat/internal/usecase/queries"

	"github.com/google/uuid"
)

// SessionBuilder assembles booking-session read models and command results
// for handler tests.
type SessionBuilder struct {
	id         uuid.UUID
	showtimeID int64
	state      string
	seatIDs    []int64
	comboIDs   []int64
	createdAt  time.Time
	expiresAt  *time.Time
}

func NewSessionBuilder() *SessionBuilder {
	created := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	expires := created.Add(15 * time.Minute)
	return &SessionBuilder{
		id:         uuid.New(),
		showtimeID: 1201,
		state:      "DRAFT",
		seatIDs:    []int64{},
		comboIDs:   []int64{},
		createdAt:  created,
		expiresAt:  &expires,
	}
}

func (b *SessionBuilder) WithID(id uuid.UUID) *SessionBuilder {
	b.id = id
	return b
}

func (b *SessionBuilder) WithShowtimeID(id int64) *SessionBuilder {
	b.showtimeID = id
	return b
}

func (b *SessionBuilder) WithState(state string) *SessionBuilder {
	b.state = state
	if state != "DRAFT" {
		b.expiresAt = nil
	}
	return b
}

func (b *SessionBuilder) WithSeats(seatIDs ...int64) *SessionBuilder {
	b.seatIDs = seatIDs
	return b
}

func (b *SessionBuilder) WithCombos(comboIDs ...int64) *SessionBuilder {
	b.comboIDs = comboIDs
	return b
}

func (b *SessionBuilder) WithExpiresAt(at time.Time) *SessionBuilder {
	b.expiresAt = &at
	return b
}

func (b *SessionBuilder) BuildView() *queries.SessionView {
	var expires *time.Time
	if b.expiresAt != nil {
		e := *b.expiresAt
		expires = &e
	}
	return &queries.SessionView{
		ID:         b.id,
		ShowtimeID: b.showtimeID,
		State:      b.state,
		SeatIDs:    b.seatIDs,
		ComboIDs:   b.comboIDs,
		CreatedAt:  b.createdAt,
		ExpiresAt:  expires,
	}
}

func (b *SessionBuilder) BuildLockResult(lockedSeatIDs ...int64) *commands.LockSeatsResult {
	view := b.BuildView()
	return &commands.LockSeatsResult{
		Session:       view,
		LockedSeatIDs: lockedSeatIDs,
		LockedUntil:   b.createdAt.Add(5 * time.Minute),
	}
}

func (b *SessionBuilder) BuildReleaseResult(releasedSeatIDs ...int64) *commands.ReleaseSeatsResult {
	return &commands.ReleaseSeatsResult{
		Session:         b.BuildView(),
		ReleasedSeatIDs: releasedSeatIDs,
	}
}

func (b *SessionBuilder) BuildReplaceResult(newSeatIDs, releasedSeatIDs []int64) *commands.ReplaceSeatsResult {
	return &commands.ReplaceSeatsResult{
		Session:         b.BuildView(),
		NewSeatIDs:      newSeatIDs,
		ReleasedSeatIDs: releasedSeatIDs,
		LockedUntil:     b.createdAt.Add(5 * time.Minute),
	}
}

func (b *SessionBuilder) BuildTouchResult(extendedSeatIDs ...int64) *commands.TouchResult {
	return &commands.TouchResult{
		Session:         b.BuildView(),
		ExtendedSeatIDs: extendedSeatIDs,
	}
}

func (b *SessionBuilder) BuildCancelResult(releasedSeatIDs ...int64) *commands.CancelResult {
	return &commands.CancelResult{
		Session:         b.BuildView(),
		ReleasedSeatIDs: releasedSeatIDs,
	}
}

func (b *SessionBuilder) BuildConfirmResult(soldSeatIDs ...int64) *commands.ConfirmResult {
	return &commands.ConfirmResult{
		Session:     b.BuildView(),
		SoldSeatIDs: soldSeatIDs,
	}
}

func (b *SessionBuilder) BuildCreateRequestDTO() request.CreateSessionRequest {
	return request.CreateSessionRequest{ShowtimeID: b.showtimeID}
}

func (b *SessionBuilder) BuildSeatSelectionDTO(seatIDs ...int64) request.SeatSelectionRequest {
	return request.SeatSelectionRequest{SeatIDs: seatIDs}
}
