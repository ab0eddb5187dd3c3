package domain

import "github.com/jtmanningm/ezbiz-booking/pkg/types"

// Scheduling defaults.
const (
	// DefaultServiceDurationMinutes is assumed for any service the catalog
	// cannot resolve, so availability math never works with a zero duration.
	DefaultServiceDurationMinutes = 60

	// BufferMinutes pads every existing booking's interval on both sides
	// when testing for overlap, modeling travel and setup time between jobs.
	BufferMinutes = 15

	// DefaultGridStepMinutes is the increment at which candidate start
	// times are offered to the scheduler.
	DefaultGridStepMinutes = 30

	// DefaultMaxOccurrences bounds a recurring series, counting the base
	// visit as occurrence zero.
	DefaultMaxOccurrences = 24

	// RecurrenceHorizonDays is the hard ceiling on how far a recurring
	// series is projected, regardless of occurrence count.
	RecurrenceHorizonDays = 180
)

// StandardServiceName is the nominal service assumed when a booking request
// names no services at all.
const StandardServiceName = "Standard Service"

// Fallback operating hours used whenever the business profile is missing or
// unparseable. Availability must never hard-fail on unconfigured hours.
const (
	DefaultWeekdayOpen  types.TimeString = "08:00"
	DefaultWeekdayClose types.TimeString = "17:00"
	DefaultWeekendOpen  types.TimeString = "09:00"
	DefaultWeekendClose types.TimeString = "14:00"
)

// Wire/date formats.
const (
	DateFormat = "2006-01-02"
	// LongDateFormat is used in recurrence conflict messages ("March 07, 2026").
	LongDateFormat = "January 02, 2006"
)

// MaxServicesPerBooking bounds how many catalog services one visit can bundle.
const MaxServicesPerBooking = 3

// MaxNotesLength bounds free-form booking notes.
const MaxNotesLength = 500
