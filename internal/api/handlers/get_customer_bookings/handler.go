package get_customer_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jtmanningm/ezbiz-booking/internal/api/handlers"
	"github.com/jtmanningm/ezbiz-booking/internal/service/bookings"
	"github.com/jtmanningm/ezbiz-booking/internal/service/bookings/models"
)

const (
	msgInvalidCustomerID = "invalid customer ID"
	msgInvalidStatus     = "unknown booking status filter"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/bookings
// Optional query parameters: status, upcoming=true, account=true (treat the
// path ID as a commercial account instead of a residential customer).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{customerId}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	q := r.URL.Query()

	req := &models.GetCustomerBookingsRequest{
		UpcomingOnly: q.Get("upcoming") == "true",
	}
	if q.Get("account") == "true" {
		req.AccountID = &customerID
	} else {
		req.CustomerID = &customerID
	}
	if status := q.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetCustomerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /customers/{customerId}/bookings - Invalid filter: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /customers/{customerId}/bookings - Failed: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
