package validate_recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
)

// UseCase projects a recurring series from its base date and validates every
// future occurrence independently, collecting per-date conflicts instead of
// aborting at the first one.
type UseCase struct {
	conflicts ConflictChecker
	logger    Logger
}

// NewUseCase creates the recurrence-validation use case.
func NewUseCase(conflicts ConflictChecker, logger Logger) *UseCase {
	return &UseCase{conflicts: conflicts, logger: logger}
}

// Execute advances the date by the pattern's rule until either the occurrence
// cap or the 180-day horizon is reached, whichever comes first, and checks
// each occurrence for conflicts. The base date itself (occurrence zero) is
// not re-validated here.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateRecurrence: validation failed: %v", err)
		return nil, err
	}

	maxOccurrences := req.MaxOccurrences
	if maxOccurrences == 0 {
		maxOccurrences = domain.DefaultMaxOccurrences
	}

	resp := &Response{
		ConflictMessages: make([]string, 0),
		ConflictDates:    make([]time.Time, 0),
		CheckedDates:     make([]time.Time, 0),
	}

	current := req.BaseDate

	for occurrence := 1; occurrence < maxOccurrences; occurrence++ {
		current = req.Pattern.Next(current)

		// Hard six-month ceiling regardless of the occurrence cap.
		if int(current.Sub(req.BaseDate).Hours()/24) > domain.RecurrenceHorizonDays {
			break
		}

		result, err := uc.conflicts.Execute(ctx, &checkConflicts.Request{
			Date:         current,
			StartTime:    req.StartTime,
			ServiceNames: req.ServiceNames,
		})
		if err != nil {
			uc.logger.Error("ValidateRecurrence: conflict check failed for %s: %v",
				current.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: conflict check for %s: %v",
				ErrInternal, current.Format(domain.DateFormat), err)
		}

		resp.CheckedDates = append(resp.CheckedDates, current)

		if !result.Available {
			resp.ConflictMessages = append(resp.ConflictMessages,
				fmt.Sprintf("%s: %s", current.Format(domain.LongDateFormat), result.Message))
			resp.ConflictDates = append(resp.ConflictDates, current)
		}
	}

	resp.AllAvailable = len(resp.ConflictMessages) == 0

	uc.logger.Info("ValidateRecurrence: %s series from %s checked %d occurrences, %d conflict(s)",
		req.Pattern, req.BaseDate.Format(domain.DateFormat), len(resp.CheckedDates), len(resp.ConflictDates))

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.BaseDate.IsZero() {
		return fmt.Errorf("%w: base date is required", ErrInvalidInput)
	}
	if _, err := req.StartTime.Parse(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := domain.ParseRecurrencePattern(string(req.Pattern)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.MaxOccurrences < 0 {
		return fmt.Errorf("%w: max occurrences must be positive", ErrInvalidInput)
	}
	return nil
}
