package get_customer_bookings

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/internal/service/bookings/models"
)

// BookingView is one booking in the history response.
type BookingView struct {
	ID                int64    `json:"id"`
	CustomerName      string   `json:"customerName"`
	ServiceNames      []string `json:"serviceNames"`
	ServiceDate       string   `json:"serviceDate"`
	StartTime         string   `json:"startTime"`
	DurationMinutes   int      `json:"durationMinutes"`
	TotalCost         float64  `json:"totalCost"`
	Status            string   `json:"status"`
	IsRecurring       bool     `json:"isRecurring"`
	RecurrencePattern *string  `json:"recurrencePattern,omitempty"`
	CreatedAt         string   `json:"createdAt"`
}

// BookingListResponse HTTP response model.
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
	Total    int           `json:"total"`
}

// FromServiceResponse converts the service result into the HTTP response.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	out := &BookingListResponse{
		Bookings: make([]BookingView, len(resp.Bookings)),
		Total:    len(resp.Bookings),
	}
	for i, b := range resp.Bookings {
		out.Bookings[i] = BookingView{
			ID:                b.ID,
			CustomerName:      b.CustomerName,
			ServiceNames:      b.ServiceNames,
			ServiceDate:       b.ServiceDate.Format(domain.DateFormat),
			StartTime:         string(b.StartTime),
			DurationMinutes:   b.DurationMinutes,
			TotalCost:         b.TotalCost,
			Status:            b.Status,
			IsRecurring:       b.IsRecurring,
			RecurrencePattern: b.RecurrencePattern,
			CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
