package domain

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// BookingStatus represents the lifecycle state of a service booking.
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents one scheduled service visit. A visit can bundle up to
// three catalog services performed back to back; DurationMinutes is the
// combined duration and ServiceNames keeps the denormalized names for
// conflict messages and history.
type Booking struct {
	ID int64

	// Exactly one of CustomerID / AccountID is set: residential customers
	// book individually, commercial accounts book on behalf of a property.
	CustomerID *int64
	AccountID  *int64

	// CustomerName is the denormalized display name shown in conflict
	// messages and schedules.
	CustomerName string

	ServiceNames    []string
	ServiceDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	TotalCost       float64
	Status          BookingStatus

	IsRecurring       bool
	RecurrencePattern *RecurrencePattern

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksSlot reports whether the booking occupies its time window for
// conflict purposes. Completed and cancelled bookings release their slot.
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusScheduled || b.Status == StatusInProgress
}

// CanBeCancelled reports whether the booking may still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled || b.Status == StatusInProgress
}

// CanTransitionTo reports whether a status change is a valid lifecycle step:
// scheduled -> in_progress -> completed, plus completed -> scheduled (reset of
// a visit closed by mistake).
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusScheduled:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusCompleted
	case StatusCompleted:
		return next == StatusScheduled
	default:
		return false
	}
}

// End returns the booking's end on its service date.
func (b *Booking) End() (time.Time, error) {
	start, err := b.StartTime.At(b.ServiceDate)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.DurationMinutes) * time.Minute), nil
}

// CustomerBookingsFilter narrows a customer's booking history.
type CustomerBookingsFilter struct {
	CustomerID *int64
	AccountID  *int64
	Status     *BookingStatus
	// UpcomingOnly keeps bookings dated today or later.
	UpcomingOnly bool
}
