package get_business_hours

import "github.com/jtmanningm/ezbiz-booking/internal/domain"

// ProfileView is one open/close window.
type ProfileView struct {
	Open  string `json:"open"`  // "08:00"
	Close string `json:"close"` // "17:00"
}

// BusinessHoursResponse HTTP response model.
type BusinessHoursResponse struct {
	Weekday ProfileView `json:"weekday"`
	Weekend ProfileView `json:"weekend"`
}

// FromDomain converts the domain hours into the HTTP response.
func FromDomain(h *domain.BusinessHours) *BusinessHoursResponse {
	return &BusinessHoursResponse{
		Weekday: ProfileView{Open: string(h.Weekday.Open), Close: string(h.Weekday.Close)},
		Weekend: ProfileView{Open: string(h.Weekend.Open), Close: string(h.Weekend.Close)},
	}
}
