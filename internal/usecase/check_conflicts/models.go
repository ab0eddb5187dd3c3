package check_conflicts

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// Request describes a candidate slot to validate.
type Request struct {
	Date         time.Time
	StartTime    types.TimeString
	ServiceNames []string

	// ExcludeBookingID skips one existing booking during conflict checks,
	// so a reschedule does not conflict with the booking's own current slot.
	ExcludeBookingID *int64
}

// Response is the structured outcome of a conflict check. A rejected slot is
// a normal result, not an error: Available is false and Message explains why.
type Response struct {
	Available bool

	// Unverified is set when existing bookings could not be read. The slot
	// is reported unavailable (fail closed), but callers must present this
	// as "could not confirm availability", never as a confirmed conflict.
	Unverified bool

	// Message is the user-facing explanation when Available is false.
	Message string

	Conflicts []domain.BookingConflict

	// DurationMinutes is the combined service duration the check used.
	DurationMinutes int
}
