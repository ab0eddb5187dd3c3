package catalog

import (
	"context"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

// CatalogRepository is the storage surface the catalog service needs.
type CatalogRepository interface {
	GetByNames(ctx context.Context, names []string) ([]*domain.ServiceDefinition, error)
	ListActive(ctx context.Context) ([]*domain.ServiceDefinition, error)
}

// Logger is the logging surface the catalog service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
