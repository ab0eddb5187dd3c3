package update_booking_status

// UpdateStatusRequest HTTP request model.
type UpdateStatusRequest struct {
	Status string `json:"status"` // scheduled | in_progress | completed
}

// UpdateStatusResponse HTTP response model.
type UpdateStatusResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}
