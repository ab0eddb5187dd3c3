package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// UseCase enumerates the start times that can be offered to a scheduler for
// a date and service selection. It is a pure function over the current
// booking state: every candidate on the grid is independently re-verified by
// the conflict checker, so the result stays correct even when existing
// bookings do not align to the grid step.
type UseCase struct {
	conflicts ConflictChecker
	catalog   DurationProvider
	calendar  HoursProvider
	logger    Logger
}

// NewUseCase creates the slot-enumeration use case.
func NewUseCase(
	conflicts ConflictChecker,
	catalog DurationProvider,
	calendar HoursProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		conflicts: conflicts,
		catalog:   catalog,
		calendar:  calendar,
		logger:    logger,
	}
}

// Execute walks the grid from opening time and keeps every candidate whose
// full service duration fits before closing and that passes the conflict
// check. Same inputs and booking state produce the same ordered list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	step := req.GridStepMinutes
	if step == 0 {
		step = domain.DefaultGridStepMinutes
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: grid step must be positive", ErrInvalidInput)
	}

	duration := uc.catalog.TotalDuration(ctx, req.ServiceNames)

	openTime, closeTime := uc.calendar.HoursFor(ctx, req.Date)
	openAt, err := openTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening time %q: %v", ErrInternal, openTime, err)
	}
	closeAt, err := closeTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closing time %q: %v", ErrInternal, closeTime, err)
	}

	slots := make([]types.TimeString, 0)

	for candidate := openAt; !candidate.Add(time.Duration(duration) * time.Minute).After(closeAt); candidate = candidate.Add(time.Duration(step) * time.Minute) {
		candidateTime := types.NewTimeString(candidate)

		result, err := uc.conflicts.Execute(ctx, &checkConflicts.Request{
			Date:         req.Date,
			StartTime:    candidateTime,
			ServiceNames: req.ServiceNames,
		})
		if err != nil {
			uc.logger.Error("GetAvailableSlots: conflict check failed at %s: %v", candidateTime, err)
			return nil, fmt.Errorf("%w: conflict check at %s: %v", ErrInternal, candidateTime, err)
		}

		if result.Available {
			slots = append(slots, candidateTime)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of the %s grid offerable on %s for %d services (%d min)",
		len(slots), gridLabel(step), req.Date.Format(domain.DateFormat), len(req.ServiceNames), duration)

	return &Response{
		Date:            req.Date,
		ServiceNames:    req.ServiceNames,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func gridLabel(step int) string {
	return fmt.Sprintf("%d-minute", step)
}
