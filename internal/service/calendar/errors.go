package calendar

import "errors"

var (
	// ErrInvalidHours is returned when a profile's open time is not strictly
	// before its close time, or a time fails to parse.
	ErrInvalidHours = errors.New("calendar.service: open time must be before close time")

	// ErrInternal is returned when the hours cannot be persisted.
	ErrInternal = errors.New("calendar.service: internal error")
)
