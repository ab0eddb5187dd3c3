package domain

import (
	"time"

	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// HoursProfile is one operating window: the business opens at Open and stops
// accepting work that would run past Close. Invariant: Open < Close.
type HoursProfile struct {
	Open  types.TimeString
	Close types.TimeString
}

// IsValid reports whether the window is well-formed.
func (p HoursProfile) IsValid() bool {
	if _, err := p.Open.Parse(); err != nil {
		return false
	}
	if _, err := p.Close.Parse(); err != nil {
		return false
	}
	return p.Open.IsBefore(p.Close)
}

// BusinessHours holds the two operating profiles of the business. Saturday
// and Sunday use the weekend profile, every other day the weekday profile.
type BusinessHours struct {
	ID        int64
	Weekday   HoursProfile
	Weekend   HoursProfile
	UpdatedAt time.Time
}

// ProfileFor selects the profile applying to the given date.
func (h *BusinessHours) ProfileFor(date time.Time) HoursProfile {
	if IsWeekend(date) {
		return h.Weekend
	}
	return h.Weekday
}

// DefaultBusinessHours returns the hardcoded fallback profiles used when no
// configuration exists.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		Weekday: HoursProfile{Open: DefaultWeekdayOpen, Close: DefaultWeekdayClose},
		Weekend: HoursProfile{Open: DefaultWeekendOpen, Close: DefaultWeekendClose},
	}
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
