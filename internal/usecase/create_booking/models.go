package create_booking

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// Request carries everything needed to create a booking or a recurring
// series of bookings.
type Request struct {
	CustomerID   *int64
	AccountID    *int64
	CustomerName string
	ServiceNames []string
	ServiceDate  time.Time
	StartTime    types.TimeString
	Notes        string

	IsRecurring       bool
	RecurrencePattern string

	// MaxOccurrences bounds a recurring series including the base
	// occurrence; 0 means the default of 24. Ignored for single bookings.
	MaxOccurrences int
}

// Response reports the created base booking and, for recurring series, the
// outcome of every projected occurrence. Occurrences that conflicted are
// skipped, not treated as a failure of the whole series.
type Response struct {
	Booking *domain.Booking

	// CreatedDates lists the service date of every booking created,
	// base included, in chronological order.
	CreatedDates []time.Time

	// SkippedDates and SkippedMessages are parallel: entry i of each
	// describes the same projected occurrence that could not be booked.
	SkippedDates    []time.Time
	SkippedMessages []string

	// ConfirmationSent is false when the customer notification failed;
	// the bookings are still created.
	ConfirmationSent bool
}
