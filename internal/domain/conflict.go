package domain

import (
	"fmt"
	"time"

	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

// BookingConflict explains why a requested slot collides with an existing
// booking. It is built transiently during conflict checks and never persisted.
type BookingConflict struct {
	ConflictDate    time.Time
	ConflictTime    types.TimeString
	ServiceName     string
	CustomerName    string
	DurationMinutes int
	BookingID       int64
}

// Message renders the user-facing description of the conflict, e.g.
// "Time slot conflicts with existing service 'Deep Clean' for Jane Doe at
// 10:00 AM (Duration: 90 minutes)".
func (c BookingConflict) Message() string {
	return fmt.Sprintf("Time slot conflicts with existing service '%s' for %s at %s (Duration: %d minutes)",
		c.ServiceName, c.CustomerName, c.ConflictTime.Format12Hour(), c.DurationMinutes)
}

// Overlaps reports whether the half-open intervals [reqStart, reqEnd) and
// [exStart, exEnd) collide once the existing interval is padded by
// bufferMinutes on both sides. Back-to-back jobs less than the buffer apart
// therefore count as conflicting.
func Overlaps(reqStart, reqEnd, exStart, exEnd time.Time, bufferMinutes int) bool {
	buffer := time.Duration(bufferMinutes) * time.Minute
	bufferedStart := exStart.Add(-buffer)
	bufferedEnd := exEnd.Add(buffer)
	return reqStart.Before(bufferedEnd) && reqEnd.After(bufferedStart)
}
