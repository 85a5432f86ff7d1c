package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Showtime errors
	ErrShowtimeNotFound  = errors.New("showtime not found")
	ErrShowtimeNotOnSale = errors.New("showtime is not accepting bookings")

	// Session errors
	ErrSessionNotFound   = errors.New("booking session not found")
	ErrSessionNotDraft   = errors.New("booking session is not in draft state")
	ErrSessionExpired    = errors.New("booking session has expired")
	ErrInvalidTransition = errors.New("invalid booking session transition")

	// Seat errors
	ErrSeatConflict   = errors.New("seat conflict")
	ErrSeatValidation = errors.New("seat selection validation failed")

	// Collaborator errors
	ErrCatalogUnavailable = errors.New("showtime catalog unavailable")
	ErrLedgerWriteFailed  = errors.New("booking ledger write failed")
)
