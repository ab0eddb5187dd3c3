package validate_recurrence

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// Request describes a recurring series to pre-flight.
type Request struct {
	// BaseDate is occurrence zero. The caller validates it separately via
	// the conflict check; this use case projects and validates only the
	// occurrences after it.
	BaseDate     time.Time
	StartTime    types.TimeString
	ServiceNames []string
	Pattern      domain.RecurrencePattern

	// MaxOccurrences bounds the series length including the base
	// occurrence; 0 means the default of 24.
	MaxOccurrences int
}

// Response reports every conflicting occurrence. A conflict on one date never
// stops the remaining occurrences from being checked, so the caller can book
// the clear dates and skip the rest.
type Response struct {
	AllAvailable bool

	// ConflictMessages and ConflictDates are parallel: entry i of each
	// describes the same conflicting occurrence.
	ConflictMessages []string
	ConflictDates    []time.Time

	// CheckedDates lists every projected occurrence that was validated,
	// in order, base date excluded.
	CheckedDates []time.Time
}
