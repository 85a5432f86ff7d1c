package booking

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusCanceled  Status = "CANCELED"
	StatusExpired   Status = "EXPIRED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusCanceled, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCanceled, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}
