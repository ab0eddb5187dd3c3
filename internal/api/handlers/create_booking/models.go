package create_booking

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	createBooking "github.com/jtmanningm/ezbiz-booking/internal/usecase/create_booking"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// CreateBookingRequest HTTP request model.
type CreateBookingRequest struct {
	CustomerID        *int64   `json:"customerId,omitempty"`
	AccountID         *int64   `json:"accountId,omitempty"`
	CustomerName      string   `json:"customerName"`
	ServiceNames      []string `json:"serviceNames"`
	ServiceDate       string   `json:"serviceDate"` // "2026-03-10"
	StartTime         string   `json:"startTime"`   // "10:00"
	Notes             string   `json:"notes,omitempty"`
	IsRecurring       bool     `json:"isRecurring,omitempty"`
	RecurrencePattern string   `json:"recurrencePattern,omitempty"`
	MaxOccurrences    int      `json:"maxOccurrences,omitempty"`
}

// BookingView is the created base booking in the response.
type BookingView struct {
	ID                int64    `json:"id"`
	CustomerID        *int64   `json:"customerId,omitempty"`
	AccountID         *int64   `json:"accountId,omitempty"`
	CustomerName      string   `json:"customerName"`
	ServiceNames      []string `json:"serviceNames"`
	ServiceDate       string   `json:"serviceDate"`
	StartTime         string   `json:"startTime"`
	DurationMinutes   int      `json:"durationMinutes"`
	TotalCost         float64  `json:"totalCost"`
	Status            string   `json:"status"`
	IsRecurring       bool     `json:"isRecurring"`
	RecurrencePattern *string  `json:"recurrencePattern,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	CreatedAt         string   `json:"createdAt"`
	UpdatedAt         string   `json:"updatedAt"`
}

// CreateBookingResponse HTTP response model. For recurring series it reports
// the dates booked and the occurrences skipped because of conflicts.
type CreateBookingResponse struct {
	Booking          *BookingView `json:"booking"`
	CreatedDates     []string     `json:"createdDates"`
	SkippedDates     []string     `json:"skippedDates,omitempty"`
	SkippedMessages  []string     `json:"skippedMessages,omitempty"`
	ConfirmationSent bool         `json:"confirmationSent"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	serviceDate, err := time.Parse(domain.DateFormat, r.ServiceDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:        r.CustomerID,
		AccountID:         r.AccountID,
		CustomerName:      r.CustomerName,
		ServiceNames:      r.ServiceNames,
		ServiceDate:       serviceDate,
		StartTime:         startTime,
		Notes:             r.Notes,
		IsRecurring:       r.IsRecurring,
		RecurrencePattern: r.RecurrencePattern,
		MaxOccurrences:    r.MaxOccurrences,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	b := resp.Booking

	var pattern *string
	if b.RecurrencePattern != nil {
		s := string(*b.RecurrencePattern)
		pattern = &s
	}

	return &CreateBookingResponse{
		Booking: &BookingView{
			ID:                b.ID,
			CustomerID:        b.CustomerID,
			AccountID:         b.AccountID,
			CustomerName:      b.CustomerName,
			ServiceNames:      b.ServiceNames,
			ServiceDate:       b.ServiceDate.Format(domain.DateFormat),
			StartTime:         string(b.StartTime),
			DurationMinutes:   b.DurationMinutes,
			TotalCost:         b.TotalCost,
			Status:            string(b.Status),
			IsRecurring:       b.IsRecurring,
			RecurrencePattern: pattern,
			Notes:             b.Notes,
			CreatedAt:         b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
		},
		CreatedDates:     formatDates(resp.CreatedDates),
		SkippedDates:     formatDates(resp.SkippedDates),
		SkippedMessages:  resp.SkippedMessages,
		ConfirmationSent: resp.ConfirmationSent,
	}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}
