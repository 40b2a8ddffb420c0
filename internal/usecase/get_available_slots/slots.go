package get_available_slots

import (
	"fmt"
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

// generateSlots runs the fixed-step candidate scan over one business day.
// The cursor starts at dayStart and advances by the buffer regardless of
// whether the candidate survives; a candidate is [cursor, cursor+jobDuration]
// and the scan stops once the candidate end passes dayEnd. If the job does not
// fit the day window at all, the result is empty.
func generateSlots(
	dayStart, dayEnd time.Time,
	jobDuration, buffer time.Duration,
	busyIntervals []domain.BusyInterval,
	now time.Time,
	loc *time.Location,
) []domain.AvailableSlot {
	// Busy intervals arrive in calendar-source timezones and any order.
	// Normalize and expand them once; a candidate must keep at least the
	// buffer of idle time from every committed range.
	expanded := make([]domain.BusyInterval, len(busyIntervals))
	for i, interval := range busyIntervals {
		expanded[i] = interval.Normalize(loc).Expand(buffer)
	}

	sameDay := isSameDay(dayStart, now.In(loc))

	slots := make([]domain.AvailableSlot, 0)

	for cursor := dayStart; !cursor.Add(jobDuration).After(dayEnd); cursor = cursor.Add(buffer) {
		candidateEnd := cursor.Add(jobDuration)

		// No past slots on the current day.
		if !candidateEnd.After(now) {
			continue
		}

		if overlapsAny(cursor, candidateEnd, expanded) {
			continue
		}

		slots = append(slots, domain.AvailableSlot{
			Start:        cursor,
			End:          candidateEnd,
			Label:        slotLabel(cursor, candidateEnd),
			IsSameDay:    sameDay,
			IsAfterHours: isAfterHours(cursor),
		})
	}

	return slots
}

// overlapsAny reports strict overlap between the candidate and any expanded
// busy interval. Touching boundaries do not conflict.
func overlapsAny(start, end time.Time, busyIntervals []domain.BusyInterval) bool {
	for _, interval := range busyIntervals {
		if interval.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// isAfterHours reports whether the slot starts at or past the after-hours
// boundary in its own location.
func isAfterHours(start time.Time) bool {
	return start.Hour()*60+start.Minute() >= domain.AfterHoursStartMinutes
}

// slotLabel formats the presentational local time range, e.g.
// "8:00 AM - 10:00 AM".
func slotLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format(domain.LabelFormat), end.Format(domain.LabelFormat))
}

// isSameDay reports whether two times fall on the same calendar day.
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
