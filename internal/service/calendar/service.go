package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// Service resolves the operating window for any calendar date.
//
// HoursFor never fails: a missing or unreadable configuration silently falls
// back to the hardcoded defaults. Availability calculation must not hard-fail
// merely because hours were never set up.
type Service struct {
	repo   HoursRepository
	logger Logger
}

// NewService creates a calendar service.
func NewService(repo HoursRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// HoursFor returns the (open, close) window for the given date, selecting the
// weekend profile on Saturday and Sunday and the weekday profile otherwise.
func (s *Service) HoursFor(ctx context.Context, date time.Time) (types.TimeString, types.TimeString) {
	defaultHours := domain.DefaultBusinessHours()
	defaults := defaultHours.ProfileFor(date)

	configured, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Warn("HoursFor: business hours unavailable for %s, using defaults %s-%s: %v",
			date.Format(domain.DateFormat), defaults.Open, defaults.Close, err)
		return defaults.Open, defaults.Close
	}

	profile := configured.ProfileFor(date)
	if !profile.IsValid() {
		s.logger.Warn("HoursFor: configured hours %q-%q invalid for %s, using defaults %s-%s",
			profile.Open, profile.Close, date.Format(domain.DateFormat), defaults.Open, defaults.Close)
		return defaults.Open, defaults.Close
	}

	return profile.Open, profile.Close
}

// Get returns the configured business hours, or the defaults when none exist.
func (s *Service) Get(ctx context.Context) (*domain.BusinessHours, error) {
	configured, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Warn("Get: business hours unavailable, returning defaults: %v", err)
		defaults := domain.DefaultBusinessHours()
		return &defaults, nil
	}
	return configured, nil
}

// Update validates and persists new operating hours.
func (s *Service) Update(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error) {
	if !h.Weekday.IsValid() {
		s.logger.Warn("Update: invalid weekday hours %s-%s", h.Weekday.Open, h.Weekday.Close)
		return nil, fmt.Errorf("%w: weekday", ErrInvalidHours)
	}
	if !h.Weekend.IsValid() {
		s.logger.Warn("Update: invalid weekend hours %s-%s", h.Weekend.Open, h.Weekend.Close)
		return nil, fmt.Errorf("%w: weekend", ErrInvalidHours)
	}

	saved, err := s.repo.Save(ctx, h)
	if err != nil {
		s.logger.Error("Update: failed to save business hours: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: business hours saved, weekday %s-%s, weekend %s-%s",
		saved.Weekday.Open, saved.Weekday.Close, saved.Weekend.Open, saved.Weekend.Close)
	return saved, nil
}
