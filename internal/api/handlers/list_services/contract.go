package list_services

import (
	"context"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]*domain.ServiceDefinition, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
