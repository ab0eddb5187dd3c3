package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

type fakeRepo struct {
	defs []*domain.ServiceDefinition
	err  error
}

func (f *fakeRepo) GetByNames(_ context.Context, names []string) ([]*domain.ServiceDefinition, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.ServiceDefinition, 0)
	for _, def := range f.defs {
		for _, n := range names {
			if def.Name == n {
				out = append(out, def)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActive(_ context.Context) ([]*domain.ServiceDefinition, error) {
	return f.defs, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var catalogDefs = []*domain.ServiceDefinition{
	{ID: 1, Name: "Carpet Cleaning", DurationMinutes: 90, Cost: 149.99, Active: true},
	{ID: 2, Name: "Upholstery", DurationMinutes: 45, Cost: 89.50, Active: true},
	{ID: 3, Name: "Tile & Grout", DurationMinutes: 120, Cost: 199.00, Active: true},
}

func TestTotalDuration_SumsKnownServices(t *testing.T) {
	svc := NewService(&fakeRepo{defs: catalogDefs}, noopLogger{})

	got := svc.TotalDuration(context.Background(), []string{"Carpet Cleaning", "Upholstery"})

	assert.Equal(t, 135, got)
}

func TestTotalDuration_EmptySelectionBooksStandardService(t *testing.T) {
	svc := NewService(&fakeRepo{defs: catalogDefs}, noopLogger{})

	assert.Equal(t, domain.DefaultServiceDurationMinutes, svc.TotalDuration(context.Background(), nil))
}

func TestTotalDuration_UnknownServiceDefaultsTo60(t *testing.T) {
	svc := NewService(&fakeRepo{defs: catalogDefs}, noopLogger{})

	got := svc.TotalDuration(context.Background(), []string{"Carpet Cleaning", "Chimney Sweep"})

	assert.Equal(t, 90+60, got)
}

func TestTotalDuration_RepoFailureDegradesPerService(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, noopLogger{})

	got := svc.TotalDuration(context.Background(), []string{"a", "b", "c"})

	assert.Equal(t, 180, got)
}

func TestTotalCost_SumsKnownAndIgnoresUnknown(t *testing.T) {
	svc := NewService(&fakeRepo{defs: catalogDefs}, noopLogger{})

	got := svc.TotalCost(context.Background(), []string{"Carpet Cleaning", "Chimney Sweep"})

	assert.Equal(t, 149.99, got)
}

func TestTotalCost_RepoFailurePricesAtZero(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, noopLogger{})

	assert.Zero(t, svc.TotalCost(context.Background(), []string{"Carpet Cleaning"}))
}

func TestListServices(t *testing.T) {
	svc := NewService(&fakeRepo{defs: catalogDefs}, noopLogger{})

	defs, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, defs, 3)

	svc = NewService(&fakeRepo{err: errors.New("connection refused")}, noopLogger{})
	_, err = svc.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
