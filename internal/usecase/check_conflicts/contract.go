package check_conflicts

import (
	"context"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// DurationProvider resolves the combined duration of a visit's services.
// It never fails; unknown services resolve to a default duration.
type DurationProvider interface {
	TotalDuration(ctx context.Context, serviceNames []string) int
}

// HoursProvider resolves the operating window for a date. It never fails;
// missing configuration resolves to the default hours.
type HoursProvider interface {
	HoursFor(ctx context.Context, date time.Time) (types.TimeString, types.TimeString)
}

// BookingRepository reads the conflict-relevant bookings for a date.
type BookingRepository interface {
	GetScheduledByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
