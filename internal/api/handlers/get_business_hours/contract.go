package get_business_hours

import (
	"context"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

type CalendarService interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
