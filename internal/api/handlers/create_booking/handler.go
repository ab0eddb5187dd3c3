package create_booking

import (
	"errors"
	"net/http"

	"github.com/jtmanningm/ezbiz-booking/internal/api/handlers"
	createBooking "github.com/jtmanningm/ezbiz-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid serviceDate (YYYY-MM-DD) or startTime (HH:MM)"
	msgInvalidInput       = "invalid booking request"
	msgUnverified         = "could not verify availability, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable for %q on %s", req.CustomerName, req.ServiceDate)
			handlers.RespondConflict(w, slotMessage(err))

		case errors.Is(err, createBooking.ErrAvailabilityUnknown):
			h.logger.Error("POST /bookings - Availability unverified for %q on %s: %v",
				req.CustomerName, req.ServiceDate, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUnverified)

		default:
			h.logger.Error("POST /bookings - Failed to create booking for %q: %v", req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, customer=%q, dates=%d, skipped=%d",
		result.Booking.ID, req.CustomerName, len(result.CreatedDates), len(result.SkippedDates))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// slotMessage surfaces the conflict explanation without the sentinel prefix.
func slotMessage(err error) string {
	msg := err.Error()
	prefix := createBooking.ErrSlotUnavailable.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return "time slot is not available"
}
