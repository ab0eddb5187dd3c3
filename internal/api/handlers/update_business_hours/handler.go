package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/jtmanningm/ezbiz-booking/internal/api/handlers"
	"github.com/jtmanningm/ezbiz-booking/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgInvalidHours       = "open time must be before close time"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/business/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	hours, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /business/hours - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Update(r.Context(), hours)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidHours):
			h.logger.Warn("PUT /business/hours - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)
		default:
			h.logger.Error("PUT /business/hours - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business/hours - Updated: weekday %s-%s, weekend %s-%s",
		result.Weekday.Open, result.Weekday.Close, result.Weekend.Open, result.Weekend.Close)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
