package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel is returned when the booking is already completed or
	// cancelled.
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrInvalidTransition is returned for a status change that is not a
	// valid lifecycle step.
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("bookings.service: internal error")
)
