package update_business_hours

import (
	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// ProfileBody is one open/close window in the request and response.
type ProfileBody struct {
	Open  string `json:"open"`  // "08:00"
	Close string `json:"close"` // "17:00"
}

// UpdateBusinessHoursRequest HTTP request model.
type UpdateBusinessHoursRequest struct {
	Weekday ProfileBody `json:"weekday"`
	Weekend ProfileBody `json:"weekend"`
}

// BusinessHoursResponse HTTP response model.
type BusinessHoursResponse struct {
	Weekday ProfileBody `json:"weekday"`
	Weekend ProfileBody `json:"weekend"`
}

// ToDomain converts the HTTP request into the domain model.
func (r *UpdateBusinessHoursRequest) ToDomain() (*domain.BusinessHours, error) {
	weekday, err := profileToDomain(r.Weekday)
	if err != nil {
		return nil, err
	}
	weekend, err := profileToDomain(r.Weekend)
	if err != nil {
		return nil, err
	}
	return &domain.BusinessHours{Weekday: weekday, Weekend: weekend}, nil
}

func profileToDomain(p ProfileBody) (domain.HoursProfile, error) {
	open, err := types.NewTimeStringFromString(p.Open)
	if err != nil {
		return domain.HoursProfile{}, err
	}
	closeTime, err := types.NewTimeStringFromString(p.Close)
	if err != nil {
		return domain.HoursProfile{}, err
	}
	return domain.HoursProfile{Open: open, Close: closeTime}, nil
}

// FromDomain converts the persisted hours into the HTTP response.
func FromDomain(h *domain.BusinessHours) *BusinessHoursResponse {
	return &BusinessHoursResponse{
		Weekday: ProfileBody{Open: string(h.Weekday.Open), Close: string(h.Weekday.Close)},
		Weekend: ProfileBody{Open: string(h.Weekend.Open), Close: string(h.Weekend.Close)},
	}
}
