package validate_recurrence

import (
	"context"

	validateRecurrence "github.com/jtmanningm/ezbiz-booking/internal/usecase/validate_recurrence"
)

type ValidateRecurrenceUseCase interface {
	Execute(ctx context.Context, req *validateRecurrence.Request) (*validateRecurrence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
