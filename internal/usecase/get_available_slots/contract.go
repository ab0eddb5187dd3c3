package get_available_slots

import (
	"context"
	"time"

	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// ConflictChecker validates one candidate slot.
type ConflictChecker interface {
	Execute(ctx context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error)
}

// DurationProvider resolves the combined duration of a visit's services.
type DurationProvider interface {
	TotalDuration(ctx context.Context, serviceNames []string) int
}

// HoursProvider resolves the operating window for a date.
type HoursProvider interface {
	HoursFor(ctx context.Context, date time.Time) (types.TimeString, types.TimeString)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
