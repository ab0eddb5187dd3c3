package domain

import "time"

// ServiceDefinition is one entry of the service catalog: a named service with
// its duration and price. The catalog is read-only from the scheduling core's
// perspective; it is maintained by the settings UI.
type ServiceDefinition struct {
	ID              int64
	Name            string
	DurationMinutes int
	Cost            float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
