package update_business_hours

import (
	"context"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

type CalendarService interface {
	Update(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
