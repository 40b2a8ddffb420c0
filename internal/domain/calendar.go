package domain

import (
	"time"

	"github.com/hawkinspro/HPM-QuoteService/pkg/types"
)

// DayHours is the open/close window for one weekday. A closed day carries
// Closed=true and zero times.
type DayHours struct {
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// BusinessCalendar is the process-wide scheduling configuration: weekday
// hours, blackout dates, slot sizing defaults and the business timezone.
// It is constructed once at startup from config and never mutated.
type BusinessCalendar struct {
	Hours                     map[time.Weekday]DayHours
	BlackoutDates             map[string]struct{} // keyed by YYYY-MM-DD
	DefaultJobDurationMinutes int
	DefaultBufferMinutes      int
	Location                  *time.Location
}

// HoursFor returns the schedule for the given date's weekday. The second
// return is false when the weekday has no configured hours.
func (c *BusinessCalendar) HoursFor(date time.Time) (DayHours, bool) {
	hours, ok := c.Hours[date.Weekday()]
	if !ok || hours.Closed {
		return DayHours{Closed: true}, false
	}
	return hours, true
}

// IsBlackout reports whether the given date is a blackout date.
func (c *BusinessCalendar) IsBlackout(date time.Time) bool {
	_, ok := c.BlackoutDates[date.Format(DateFormat)]
	return ok
}

// BusyInterval is an externally reported committed time range. Intervals may
// arrive in any timezone and any order; Normalize before use.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Normalize converts both endpoints to the given location.
func (b BusyInterval) Normalize(loc *time.Location) BusyInterval {
	return BusyInterval{Start: b.Start.In(loc), End: b.End.In(loc)}
}

// Expand widens the interval by the buffer on both ends, so a candidate slot
// must keep at least that much idle time from the busy range.
func (b BusyInterval) Expand(buffer time.Duration) BusyInterval {
	return BusyInterval{Start: b.Start.Add(-buffer), End: b.End.Add(buffer)}
}

// Overlaps reports strict interval overlap with [start, end). Touching
// boundaries do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// AvailableSlot is one offerable appointment window. Slots are ephemeral:
// generated fresh per query, ordered chronologically by Start.
type AvailableSlot struct {
	Start        time.Time
	End          time.Time
	Label        string // presentational local time range, e.g. "8:00 AM - 10:00 AM"
	IsSameDay    bool
	IsAfterHours bool
}
