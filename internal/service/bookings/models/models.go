// Package models holds the bookings service's request/response shapes and
// their conversions to and from the domain model.
package models

import (
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// GetCustomerBookingsRequest asks for a customer's or account's history.
type GetCustomerBookingsRequest struct {
	CustomerID   *int64
	AccountID    *int64
	Status       *string
	UpcomingOnly bool
}

// ToDomainFilter converts the request into a repository filter.
func (r *GetCustomerBookingsRequest) ToDomainFilter() (domain.CustomerBookingsFilter, error) {
	filter := domain.CustomerBookingsFilter{
		CustomerID:   r.CustomerID,
		AccountID:    r.AccountID,
		UpcomingOnly: r.UpcomingOnly,
	}
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.CustomerBookingsFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}

// CancelBookingRequest carries a cancellation.
type CancelBookingRequest struct {
	Reason string
}

// UpdateStatusRequest carries a lifecycle transition.
type UpdateStatusRequest struct {
	Status string
}

// BookingResponse is the service-level view of a booking.
type BookingResponse struct {
	ID                int64
	CustomerID        *int64
	AccountID         *int64
	CustomerName      string
	ServiceNames      []string
	ServiceDate       time.Time
	StartTime         types.TimeString
	DurationMinutes   int
	TotalCost         float64
	Status            string
	IsRecurring       bool
	RecurrencePattern *string
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// FromDomainBooking converts a domain booking to a response.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	var pattern *string
	if b.RecurrencePattern != nil {
		s := string(*b.RecurrencePattern)
		pattern = &s
	}
	return &BookingResponse{
		ID:                b.ID,
		CustomerID:        b.CustomerID,
		AccountID:         b.AccountID,
		CustomerName:      b.CustomerName,
		ServiceNames:      b.ServiceNames,
		ServiceDate:       b.ServiceDate,
		StartTime:         b.StartTime,
		DurationMinutes:   b.DurationMinutes,
		TotalCost:         b.TotalCost,
		Status:            string(b.Status),
		IsRecurring:       b.IsRecurring,
		RecurrencePattern: pattern,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusScheduled, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}
