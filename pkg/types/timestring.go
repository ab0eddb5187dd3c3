package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	// Layout is the canonical wall-clock representation (24h HH:MM).
	Layout = "15:04"

	// Layout12Hour is used in user-facing messages ("09:30 AM").
	Layout12Hour = "03:04 PM"
)

// TimeString represents a wall-clock time of day ("HH:MM") without a date.
// It is the single typed representation for TIME columns coming back from the
// database: drivers return them variously as string, []byte or time.Time, and
// Scan normalizes all three instead of probing at each call site.
type TimeString string

// NewTimeString creates a TimeString from the clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString parses and validates an "HH:MM" value.
// "HH:MM:SS" is accepted and truncated to minutes.
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return NewTimeString(t), nil
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return NewTimeString(t), nil
}

// String returns the canonical "HH:MM" form.
func (ts TimeString) String() string {
	return string(ts)
}

// Parse returns the time-of-day on the zero date.
func (ts TimeString) Parse() (time.Time, error) {
	return time.Parse(Layout, string(ts))
}

// At anchors the time-of-day on the given calendar date.
// Interval arithmetic in the booking core is always done on anchored
// time.Time values, never on bare clock values.
func (ts TimeString) At(date time.Time) (time.Time, error) {
	t, err := ts.Parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// AddMinutes returns the clock value m minutes later.
// Returns an error if the result would cross midnight.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := ts.Parse()
	if err != nil {
		return "", err
	}
	total := t.Hour()*60 + t.Minute() + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s%+d minutes is outside the day", ts, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Format12Hour renders the value for user-facing messages, e.g. "02:30 PM".
func (ts TimeString) Format12Hour() string {
	t, err := ts.Parse()
	if err != nil {
		return string(ts)
	}
	return t.Format(Layout12Hour)
}

// Value implements driver.Valuer.
func (ts TimeString) Value() (driver.Value, error) {
	if ts == "" {
		return nil, nil
	}
	if _, err := ts.Parse(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}
