package messaging

// ConfirmationRequest is the payload sent to the messaging gateway when a
// booking is created.
type ConfirmationRequest struct {
	BookingID    int64    `json:"booking_id"`
	CustomerID   *int64   `json:"customer_id,omitempty"`
	CustomerName string   `json:"customer_name"`
	ServiceNames []string `json:"service_names"`
	ServiceDate  string   `json:"service_date"`
	StartTime    string   `json:"start_time"`
	Duration     int      `json:"duration_minutes"`
	TotalCost    float64  `json:"total_cost"`
}

// ErrorResponse is the gateway's error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
