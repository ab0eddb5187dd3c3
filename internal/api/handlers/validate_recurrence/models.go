package validate_recurrence

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	validateRecurrence "github.com/jtmanningm/ezbiz-booking/internal/usecase/validate_recurrence"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// ValidateRecurrenceRequest HTTP request model.
type ValidateRecurrenceRequest struct {
	BaseDate       string   `json:"baseDate"`  // "2026-03-10"
	StartTime      string   `json:"startTime"` // "10:00"
	ServiceNames   []string `json:"serviceNames"`
	Pattern        string   `json:"pattern"` // Weekly | Bi-Weekly | Monthly
	MaxOccurrences int      `json:"maxOccurrences,omitempty"`
}

// ValidateRecurrenceResponse HTTP response model.
type ValidateRecurrenceResponse struct {
	AllAvailable     bool     `json:"allAvailable"`
	ConflictMessages []string `json:"conflictMessages,omitempty"`
	ConflictDates    []string `json:"conflictDates,omitempty"`
	CheckedDates     []string `json:"checkedDates"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *ValidateRecurrenceRequest) ToUseCaseRequest() (*validateRecurrence.Request, error) {
	baseDate, err := time.Parse(domain.DateFormat, r.BaseDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &validateRecurrence.Request{
		BaseDate:       baseDate,
		StartTime:      startTime,
		ServiceNames:   r.ServiceNames,
		Pattern:        domain.RecurrencePattern(r.Pattern),
		MaxOccurrences: r.MaxOccurrences,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *validateRecurrence.Response) *ValidateRecurrenceResponse {
	return &ValidateRecurrenceResponse{
		AllAvailable:     resp.AllAvailable,
		ConflictMessages: resp.ConflictMessages,
		ConflictDates:    formatDates(resp.ConflictDates),
		CheckedDates:     formatDates(resp.CheckedDates),
	}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(domain.DateFormat)
	}
	return out
}
