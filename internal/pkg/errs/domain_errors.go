package errs

import "errors"

// Sentinel error kinds for record lifecycle operations. Call sites wrap a
// descriptive error and Mark it with one of these; callers branch with
// errs.Is, which honors marks.
var (
	// ErrValidation signals malformed construction input.
	ErrValidation = errors.New("validation error")

	// ErrInvalidState signals an operation attempted from a disallowed status.
	ErrInvalidState = errors.New("invalid record state")

	// ErrInvalidKind signals an operation attempted on the wrong record kind.
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrOverdue signals a renewal attempted while the loan is overdue.
	ErrOverdue = errors.New("record is overdue")
)
