package domain

import (
	"fmt"
	"time"
)

// RecurrencePattern is the cadence of a recurring booking series.
type RecurrencePattern string

const (
	RecurrenceWeekly   RecurrencePattern = "Weekly"
	RecurrenceBiWeekly RecurrencePattern = "Bi-Weekly"
	RecurrenceMonthly  RecurrencePattern = "Monthly"
)

// ParseRecurrencePattern validates a pattern received from a caller.
func ParseRecurrencePattern(s string) (RecurrencePattern, error) {
	switch RecurrencePattern(s) {
	case RecurrenceWeekly, RecurrenceBiWeekly, RecurrenceMonthly:
		return RecurrencePattern(s), nil
	default:
		return "", fmt.Errorf("unknown recurrence pattern %q", s)
	}
}

// Next returns the occurrence date following current.
//
// Monthly advances to the same day of the next calendar month; when that day
// does not exist (Jan 31 -> Feb), it clamps to the last day of the target
// month. Subsequent occurrences advance from the clamped date.
func (p RecurrencePattern) Next(current time.Time) time.Time {
	switch p {
	case RecurrenceWeekly:
		return current.AddDate(0, 0, 7)
	case RecurrenceBiWeekly:
		return current.AddDate(0, 0, 14)
	case RecurrenceMonthly:
		return nextMonthClamped(current)
	default:
		return current
	}
}

func nextMonthClamped(current time.Time) time.Time {
	year, month := current.Year(), current.Month()+1
	if month > time.December {
		year++
		month = time.January
	}
	day := current.Day()
	if last := lastDayOfMonth(year, month, current.Location()); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, current.Location())
}

// lastDayOfMonth computes the final day of the month as the day before the
// first of the following month.
func lastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
