package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotUnavailable is returned when the requested slot conflicts
	// with an existing booking or falls outside business hours.
	ErrSlotUnavailable = errors.New("create_booking: slot unavailable")

	// ErrAvailabilityUnknown is returned when existing bookings could not
	// be read, so the slot cannot be confirmed free.
	ErrAvailabilityUnknown = errors.New("create_booking: availability could not be verified")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
