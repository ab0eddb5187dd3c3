package hours

import "errors"

var (
	// ErrHoursNotFound is returned when no business-hours row exists yet.
	ErrHoursNotFound = errors.New("hours.repository: business hours not configured")

	// ErrBuildQuery is returned when the SQL statement cannot be built.
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery is returned when the SQL statement fails to execute.
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("hours.repository: failed to scan row")
)
