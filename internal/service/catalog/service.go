package catalog

import (
	"context"
	"fmt"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

// Service answers duration and cost questions about catalog services.
// Every lookup degrades instead of failing: scheduling must always have a
// positive duration to reason about, even for names the catalog has never
// seen or when the catalog cannot be read at all.
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService creates a catalog service.
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// TotalDuration returns the combined duration in minutes of the named
// services, which run sequentially within one visit.
//
// Resolution rules:
//   - empty input books the nominal standard service: 60 minutes
//   - a name the catalog does not know contributes 60 minutes
//   - a catalog read failure degrades to 60 minutes per requested service
func (s *Service) TotalDuration(ctx context.Context, serviceNames []string) int {
	if len(serviceNames) == 0 {
		return domain.DefaultServiceDurationMinutes
	}

	defs, err := s.repo.GetByNames(ctx, serviceNames)
	if err != nil {
		s.logger.Error("TotalDuration: catalog read failed, assuming %d min per service: %v",
			domain.DefaultServiceDurationMinutes, err)
		return len(serviceNames) * domain.DefaultServiceDurationMinutes
	}

	byName := make(map[string]*domain.ServiceDefinition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	total := 0
	for _, name := range serviceNames {
		if def, ok := byName[name]; ok {
			total += def.DurationMinutes
			continue
		}
		s.logger.Warn("TotalDuration: service %q not in catalog, assuming %d minutes",
			name, domain.DefaultServiceDurationMinutes)
		total += domain.DefaultServiceDurationMinutes
	}

	return total
}

// TotalCost returns the combined price of the named services. Names the
// catalog cannot resolve contribute nothing; pricing unknown work at zero is
// preferable to blocking the booking.
func (s *Service) TotalCost(ctx context.Context, serviceNames []string) float64 {
	if len(serviceNames) == 0 {
		return 0
	}

	defs, err := s.repo.GetByNames(ctx, serviceNames)
	if err != nil {
		s.logger.Error("TotalCost: catalog read failed, pricing at 0: %v", err)
		return 0
	}

	byName := make(map[string]float64, len(defs))
	for _, def := range defs {
		byName[def.Name] = def.Cost
	}

	total := 0.0
	for _, name := range serviceNames {
		total += byName[name]
	}
	return total
}

// ListServices returns the active catalog, for the scheduling UI's picker.
func (s *Service) ListServices(ctx context.Context) ([]*domain.ServiceDefinition, error) {
	defs, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return defs, nil
}
