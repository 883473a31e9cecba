package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a reference error so callers can branch with Is
// while the descriptive message stays intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches ref, honoring marks attached with Mark.
// Marks live outside the stdlib Unwrap chain, so plain errors.Is does not
// see them; all sentinel matching goes through this helper.
func Is(err, ref error) bool {
	return cr.Is(err, ref)
}
