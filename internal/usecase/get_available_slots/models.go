package get_available_slots

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// Request asks for the offerable start times on a date.
type Request struct {
	Date         time.Time
	ServiceNames []string

	// GridStepMinutes is the enumeration increment; 0 means the default
	// 30-minute grid.
	GridStepMinutes int
}

// Response lists the offerable start times in ascending order.
type Response struct {
	Date            time.Time
	ServiceNames    []string
	DurationMinutes int
	Slots           []types.TimeString
}
