package check_conflicts

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("check_conflicts: invalid input data")
)
