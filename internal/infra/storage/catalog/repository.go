package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/dbmetrics"
	"github.com/jtmanningm/ezbiz-booking/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"service_name",
	"duration_minutes",
	"cost",
	"active",
	"created_at",
	"updated_at",
}

// Repository reads the service catalog.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByNames returns the catalog entries matching the given service names.
// Names with no matching row are simply absent from the result; resolving
// missing entries to a default duration is the catalog service's concern.
func (r *Repository) GetByNames(ctx context.Context, names []string) ([]*domain.ServiceDefinition, error) {
	if len(names) == 0 {
		return []*domain.ServiceDefinition{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"service_name": names}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNames - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNames - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// ListActive returns the active catalog entries, ordered by name. Used by the
// scheduling UI's service picker.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("service_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.ServiceDefinition, error) {
	services := make([]*domain.ServiceDefinition, 0)

	for rows.Next() {
		var svc domain.ServiceDefinition
		var duration sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&duration,
			&svc.Cost,
			&svc.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}

		// A NULL duration means the entry was created before durations were
		// tracked; fall back to the standard length.
		svc.DurationMinutes = domain.DefaultServiceDurationMinutes
		if duration.Valid && duration.Int64 > 0 {
			svc.DurationMinutes = int(duration.Int64)
		}
		svc.CreatedAt = createdAt.Time
		svc.UpdatedAt = updatedAt.Time

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
