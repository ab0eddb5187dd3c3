package validate_recurrence

import (
	"errors"
	"net/http"

	"github.com/jtmanningm/ezbiz-booking/internal/api/handlers"
	validateRecurrence "github.com/jtmanningm/ezbiz-booking/internal/usecase/validate_recurrence"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid baseDate (YYYY-MM-DD) or startTime (HH:MM)"
	msgInvalidInput       = "invalid recurrence request: pattern must be Weekly, Bi-Weekly or Monthly"
)

type Handler struct {
	useCase ValidateRecurrenceUseCase
	logger  Logger
}

func NewHandler(useCase ValidateRecurrenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/recurrence
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/recurrence - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/recurrence - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateRecurrence.ErrInvalidInput):
			h.logger.Warn("POST /availability/recurrence - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /availability/recurrence - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/recurrence - Checked %d occurrence(s), %d conflict(s)",
		len(result.CheckedDates), len(result.ConflictDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
