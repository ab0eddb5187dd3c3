package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	getAvailableSlots "github.com/jtmanningm/ezbiz-booking/internal/usecase/get_available_slots"
)

// SlotsResponse is the HTTP available-slots response.
type SlotsResponse struct {
	Date            string   `json:"date"`
	ServiceNames    []string `json:"serviceNames"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// ParseQuery builds the use case request from the query string.
func ParseQuery(q url.Values) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	req := &getAvailableSlots.Request{
		Date:         date,
		ServiceNames: splitServices(q.Get("services")),
	}

	if raw := q.Get("step"); raw != "" {
		step, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse step: %w", err)
		}
		req.GridStepMinutes = step
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = string(s)
	}
	return &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceNames:    resp.ServiceNames,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

func splitServices(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}
