package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/dbmetrics"
	"github.com/jtmanningm/ezbiz-booking/pkg/psqlbuilder"
)

// Repository reads and writes the business operating-hours profile.
// The business_info table holds a single logical record; Get returns the most
// recently modified row.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a business-hours repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the configured operating hours, or ErrHoursNotFound when the
// business has not set any. Individual NULL columns come back as empty
// TimeStrings; the calendar service decides how to fall back.
func (r *Repository) Get(ctx context.Context) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"weekday_open",
		"weekday_close",
		"weekend_open",
		"weekend_close",
		"updated_at",
	).
		From("business_info").
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.Weekday.Open,
		&h.Weekday.Close,
		&h.Weekend.Open,
		&h.Weekend.Close,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan business hours: %v", ErrScanRow, err)
	}

	h.UpdatedAt = updatedAt.Time
	return &h, nil
}

// Save persists the operating hours, updating the existing record when one
// exists and inserting the first one otherwise.
func (r *Repository) Save(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrHoursNotFound) {
		return nil, err
	}

	if existing != nil {
		query, args, err := psqlbuilder.Update("business_info").
			Set("weekday_open", h.Weekday.Open).
			Set("weekday_close", h.Weekday.Close).
			Set("weekend_open", h.Weekend.Open).
			Set("weekend_close", h.Weekend.Close).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": existing.ID}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
		}
		h.ID = existing.ID
		return h, nil
	}

	query, args, err := psqlbuilder.Insert("business_info").
		Columns(
			"weekday_open",
			"weekday_close",
			"weekend_open",
			"weekend_close",
		).
		Values(
			h.Weekday.Open,
			h.Weekday.Close,
			h.Weekend.Open,
			h.Weekend.Close,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID); err != nil {
		return nil, fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}
	return h, nil
}
