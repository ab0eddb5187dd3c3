package validate_recurrence

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("validate_recurrence: invalid input data")

	// ErrInternal is returned for unexpected failures during projection.
	ErrInternal = errors.New("validate_recurrence: internal error")
)
