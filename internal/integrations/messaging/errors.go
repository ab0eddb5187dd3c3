package messaging

import "errors"

var (
	// ErrInternal is returned for internal client failures.
	ErrInternal = errors.New("messaging client: internal error")

	// ErrInvalidResponse is returned for an unexpected gateway response.
	ErrInvalidResponse = errors.New("messaging client: invalid response")

	// ErrServiceDegraded is returned when the gateway is unreachable.
	// Bookings proceed without a confirmation message in that case.
	ErrServiceDegraded = errors.New("messaging gateway unavailable: graceful degradation applied")
)
