package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a sentinel to err so errors.Is matches the sentinel while
// the concrete cause stays in the chain for errors.As.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// WrapMark wraps an infrastructure error with context and marks it with
// the usecase sentinel in one step. Repositories use it on every query
// path.
func WrapMark(err error, msg string, markErr error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(cr.Wrap(err, msg), markErr)
}
