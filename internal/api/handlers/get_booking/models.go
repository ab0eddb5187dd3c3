package get_booking

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/internal/service/bookings/models"
)

// BookingResponse HTTP response model.
type BookingResponse struct {
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

// FromServiceResponse converts the service result into the HTTP response.
func FromServiceResponse(b *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID,
		CustomerID:        b.CustomerID,
		AccountID:         b.AccountID,
		CustomerName:      b.CustomerName,
		ServiceNames:      b.ServiceNames,
		ServiceDate:       b.ServiceDate.Format(domain.DateFormat),
		StartTime:         string(b.StartTime),
		DurationMinutes:   b.DurationMinutes,
		TotalCost:         b.TotalCost,
		Status:            b.Status,
		IsRecurring:       b.IsRecurring,
		RecurrencePattern: b.RecurrencePattern,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
}
