package check_conflicts

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// ConflictView is one conflicting booking in the response.
type ConflictView struct {
	BookingID    int64  `json:"bookingId"`
	ServiceName  string `json:"serviceName"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	Duration     int    `json:"durationMinutes"`
}

// CheckResponse is the HTTP availability-check response.
type CheckResponse struct {
	Available       bool           `json:"available"`
	Unverified      bool           `json:"unverified,omitempty"`
	Message         string         `json:"message,omitempty"`
	DurationMinutes int            `json:"durationMinutes"`
	Conflicts       []ConflictView `json:"conflicts,omitempty"`
}

// ParseQuery builds the use case request from the query string.
func ParseQuery(q url.Values) (*checkConflicts.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(q.Get("time"))
	if err != nil {
		return nil, fmt.Errorf("parse time: %w", err)
	}

	req := &checkConflicts.Request{
		Date:         date,
		StartTime:    startTime,
		ServiceNames: splitServices(q.Get("services")),
	}

	if raw := q.Get("excludeBookingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse excludeBookingId: %w", err)
		}
		req.ExcludeBookingID = &id
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckResponse {
	out := &CheckResponse{
		Available:       resp.Available,
		Unverified:      resp.Unverified,
		Message:         resp.Message,
		DurationMinutes: resp.DurationMinutes,
	}
	for _, c := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictView{
			BookingID:    c.BookingID,
			ServiceName:  c.ServiceName,
			CustomerName: c.CustomerName,
			StartTime:    string(c.ConflictTime),
			Duration:     c.DurationMinutes,
		})
	}
	return out
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
