package create_booking

import (
	"context"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
)

// ConflictChecker validates a slot. Inside a transaction context the check's
// booking reads take row locks, which is what makes check-then-insert safe.
type ConflictChecker interface {
	Execute(ctx context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error)
}

// Catalog resolves the combined duration and price of the requested services.
type Catalog interface {
	TotalDuration(ctx context.Context, serviceNames []string) int
	TotalCost(ctx context.Context, serviceNames []string) float64
}

// BookingRepository persists new bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// TxManager runs a function inside a serializable transaction carried
// through the context.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmationSender notifies the customer about a created booking. Failures
// are logged and never fail the booking.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, b *domain.Booking) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
