package list_services

import "github.com/jtmanningm/ezbiz-booking/internal/domain"

// ServiceView is one catalog entry in the response.
type ServiceView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Cost            float64 `json:"cost"`
}

// ServiceListResponse HTTP response model.
type ServiceListResponse struct {
	Services []ServiceView `json:"services"`
}

// FromDomainList converts the catalog entries into the HTTP response.
func FromDomainList(services []*domain.ServiceDefinition) *ServiceListResponse {
	out := &ServiceListResponse{Services: make([]ServiceView, len(services))}
	for i, s := range services {
		out.Services[i] = ServiceView{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Cost:            s.Cost,
		}
	}
	return out
}
