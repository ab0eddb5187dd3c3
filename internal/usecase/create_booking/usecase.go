package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
)

// UseCase creates bookings. Every insert is preceded by a conflict check run
// inside the same serializable transaction, so two overlapping requests
// cannot both pass the check and both commit.
type UseCase struct {
	conflicts    ConflictChecker
	catalog      Catalog
	bookingRepo  BookingRepository
	txManager    TxManager
	confirmation ConfirmationSender
	logger       Logger
}

// NewUseCase creates the booking-creation use case.
func NewUseCase(
	conflicts ConflictChecker,
	catalog Catalog,
	bookingRepo BookingRepository,
	txManager TxManager,
	confirmation ConfirmationSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		conflicts:    conflicts,
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		confirmation: confirmation,
		logger:       logger,
	}
}

// Execute creates the booking. For a recurring series, the base occurrence
// must be free or the whole request is rejected; projected occurrences that
// conflict are skipped individually and reported back, the rest are created.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration := uc.catalog.TotalDuration(ctx, req.ServiceNames)
	cost := uc.catalog.TotalCost(ctx, req.ServiceNames)

	var pattern *domain.RecurrencePattern
	if req.IsRecurring {
		p, err := domain.ParseRecurrencePattern(req.RecurrencePattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		pattern = &p
	}

	base, err := uc.createOne(ctx, req, req.ServiceDate, duration, cost, pattern)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Booking:      base,
		CreatedDates: []time.Time{base.ServiceDate},
	}

	if req.IsRecurring {
		uc.createOccurrences(ctx, req, *pattern, duration, cost, resp)
	}

	resp.ConfirmationSent = uc.sendConfirmation(ctx, base)

	uc.logger.Info("CreateBooking: created booking %d for %q on %s (%d booking(s) total, %d skipped)",
		base.ID, base.CustomerName, base.ServiceDate.Format(domain.DateFormat),
		len(resp.CreatedDates), len(resp.SkippedDates))

	return resp, nil
}

// createOne checks and inserts a single booking atomically. The conflict
// check runs inside the transaction, so its booking reads lock the rows it
// compared against until the insert commits.
func (uc *UseCase) createOne(
	ctx context.Context,
	req *Request,
	date time.Time,
	duration int,
	cost float64,
	pattern *domain.RecurrencePattern,
) (*domain.Booking, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		check, err := uc.conflicts.Execute(txCtx, &checkConflicts.Request{
			Date:         date,
			StartTime:    req.StartTime,
			ServiceNames: req.ServiceNames,
		})
		if err != nil {
			return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
		}
		if check.Unverified {
			return fmt.Errorf("%w: %s", ErrAvailabilityUnknown, check.Message)
		}
		if !check.Available {
			return fmt.Errorf("%w: %s", ErrSlotUnavailable, check.Message)
		}

		var notes *string
		if req.Notes != "" {
			notes = &req.Notes
		}

		b := &domain.Booking{
			CustomerID:        req.CustomerID,
			AccountID:         req.AccountID,
			CustomerName:      req.CustomerName,
			ServiceNames:      req.ServiceNames,
			ServiceDate:       date,
			StartTime:         req.StartTime,
			DurationMinutes:   duration,
			TotalCost:         cost,
			Status:            domain.StatusScheduled,
			IsRecurring:       pattern != nil,
			RecurrencePattern: pattern,
			Notes:             notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, b)
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// createOccurrences projects the series past the base date and books each
// occurrence in its own transaction. A conflicting occurrence is recorded
// and skipped; later occurrences are still attempted.
func (uc *UseCase) createOccurrences(
	ctx context.Context,
	req *Request,
	pattern domain.RecurrencePattern,
	duration int,
	cost float64,
	resp *Response,
) {
	maxOccurrences := req.MaxOccurrences
	if maxOccurrences == 0 {
		maxOccurrences = domain.DefaultMaxOccurrences
	}

	current := req.ServiceDate

	for occurrence := 1; occurrence < maxOccurrences; occurrence++ {
		current = pattern.Next(current)

		if int(current.Sub(req.ServiceDate).Hours()/24) > domain.RecurrenceHorizonDays {
			break
		}

		b, err := uc.createOne(ctx, req, current, duration, cost, &pattern)
		if err != nil {
			uc.logger.Warn("CreateBooking: skipping occurrence on %s: %v",
				current.Format(domain.DateFormat), err)
			resp.SkippedDates = append(resp.SkippedDates, current)
			resp.SkippedMessages = append(resp.SkippedMessages,
				fmt.Sprintf("%s: %s", current.Format(domain.LongDateFormat), occurrenceSkipReason(err)))
			continue
		}

		resp.CreatedDates = append(resp.CreatedDates, b.ServiceDate)
	}
}

func (uc *UseCase) sendConfirmation(ctx context.Context, b *domain.Booking) bool {
	if uc.confirmation == nil {
		return false
	}
	if err := uc.confirmation.SendBookingConfirmation(ctx, b); err != nil {
		uc.logger.Warn("CreateBooking: confirmation for booking %d not sent: %v", b.ID, err)
		return false
	}
	return true
}

// occurrenceSkipReason strips the sentinel prefix so skip messages read as
// plain sentences.
func occurrenceSkipReason(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrSlotUnavailable, ErrAvailabilityUnknown, ErrInternal} {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
