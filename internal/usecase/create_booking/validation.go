package create_booking

import (
	"fmt"
	"strings"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.ServiceNames) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceNames) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: at most %d services per booking", ErrInvalidInput, domain.MaxServicesPerBooking)
	}
	for _, name := range req.ServiceNames {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: service name must not be empty", ErrInvalidInput)
		}
	}
	if req.ServiceDate.IsZero() {
		return fmt.Errorf("%w: service date is required", ErrInvalidInput)
	}
	if _, err := req.StartTime.Parse(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	if req.MaxOccurrences < 0 {
		return fmt.Errorf("%w: max occurrences must be positive", ErrInvalidInput)
	}
	if req.IsRecurring && strings.TrimSpace(req.RecurrencePattern) == "" {
		return fmt.Errorf("%w: recurrence pattern is required for recurring bookings", ErrInvalidInput)
	}
	return nil
}
