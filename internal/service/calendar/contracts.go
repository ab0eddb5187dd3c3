package calendar

import (
	"context"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

// HoursRepository is the storage surface the calendar service needs.
type HoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
	Save(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error)
}

// Logger is the logging surface the calendar service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
