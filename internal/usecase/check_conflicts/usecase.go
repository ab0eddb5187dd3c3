package check_conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

const msgUnverified = "Unable to verify existing bookings for this date. The time slot cannot be confirmed; please try again."

// UseCase decides whether a candidate slot can be booked: the slot must sit
// entirely inside the operating window and must not collide, buffer included,
// with any scheduled or in-progress booking on that date.
type UseCase struct {
	catalog     DurationProvider
	calendar    HoursProvider
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the conflict-check use case.
func NewUseCase(
	catalog DurationProvider,
	calendar HoursProvider,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:     catalog,
		calendar:    calendar,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute validates the requested slot. Only malformed input produces an
// error; every scheduling outcome, including "could not verify", comes back
// as a structured Response.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	duration := uc.catalog.TotalDuration(ctx, req.ServiceNames)

	openTime, closeTime := uc.calendar.HoursFor(ctx, req.Date)

	// Anchor everything on the service date so end-of-day comparisons use
	// real datetime arithmetic rather than bare clock values.
	openAt, err := openTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid opening time %q", ErrInvalidInput, openTime)
	}
	closeAt, err := closeTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closing time %q", ErrInvalidInput, closeTime)
	}
	reqStart, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}
	reqEnd := reqStart.Add(minutes(duration))

	if reqStart.Before(openAt) {
		return &Response{
			Available:       false,
			Message:         fmt.Sprintf("Service cannot start before business hours (%s)", openTime.Format12Hour()),
			Conflicts:       []domain.BookingConflict{},
			DurationMinutes: duration,
		}, nil
	}

	if reqEnd.After(closeAt) {
		return &Response{
			Available: false,
			Message: fmt.Sprintf("Service would end after business hours (%s). "+
				"Please select an earlier time or reduce service duration.", closeTime.Format12Hour()),
			Conflicts:       []domain.BookingConflict{},
			DurationMinutes: duration,
		}, nil
	}

	existing, err := uc.bookingRepo.GetScheduledByDate(ctx, req.Date)
	if err != nil {
		// Fail closed: with the booking state unknown the slot must not be
		// offered, but the caller is told it is unverified rather than taken.
		uc.logger.Error("CheckConflicts: failed to read bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return &Response{
			Available:       false,
			Unverified:      true,
			Message:         msgUnverified,
			Conflicts:       []domain.BookingConflict{},
			DurationMinutes: duration,
		}, nil
	}

	conflicts := make([]domain.BookingConflict, 0)

	for _, booking := range existing {
		if req.ExcludeBookingID != nil && booking.ID == *req.ExcludeBookingID {
			continue
		}
		if !booking.BlocksSlot() {
			continue
		}

		exStart, err := booking.StartTime.At(req.Date)
		if err != nil {
			uc.logger.Warn("CheckConflicts: booking id=%d has unparseable start time %q, skipping",
				booking.ID, booking.StartTime)
			continue
		}

		exDuration := booking.DurationMinutes
		if exDuration <= 0 {
			exDuration = domain.DefaultServiceDurationMinutes
		}
		exEnd := exStart.Add(minutes(exDuration))

		if domain.Overlaps(reqStart, reqEnd, exStart, exEnd, domain.BufferMinutes) {
			conflicts = append(conflicts, domain.BookingConflict{
				ConflictDate:    req.Date,
				ConflictTime:    booking.StartTime,
				ServiceName:     primaryServiceName(booking),
				CustomerName:    customerDisplayName(booking),
				DurationMinutes: exDuration,
				BookingID:       booking.ID,
			})
		}
	}

	if len(conflicts) > 0 {
		message := conflicts[0].Message()
		if len(conflicts) > 1 {
			plural := ""
			if len(conflicts) > 2 {
				plural = "s"
			}
			message += fmt.Sprintf(" (and %d other conflict%s)", len(conflicts)-1, plural)
		}

		uc.logger.Info("CheckConflicts: slot %s %s rejected with %d conflict(s)",
			req.Date.Format(domain.DateFormat), req.StartTime, len(conflicts))
		return &Response{
			Available:       false,
			Message:         message,
			Conflicts:       conflicts,
			DurationMinutes: duration,
		}, nil
	}

	return &Response{
		Available:       true,
		Conflicts:       []domain.BookingConflict{},
		DurationMinutes: duration,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := req.StartTime.Parse(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(req.ServiceNames) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	return nil
}

func primaryServiceName(b *domain.Booking) string {
	if len(b.ServiceNames) > 0 {
		return b.ServiceNames[0]
	}
	return domain.StandardServiceName
}

func customerDisplayName(b *domain.Booking) string {
	if b.CustomerName != "" {
		return b.CustomerName
	}
	return "Unknown Customer"
}

func minutes(m int) time.Duration {
	return time.Duration(m) * time.Minute
}
