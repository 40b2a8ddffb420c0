package get_available_slots

import (
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

// Request asks for the offerable appointment windows on one calendar date.
// Zero values for the overrides mean "use the configured defaults".
type Request struct {
	Date               time.Time // calendar date, time-of-day ignored
	JobDurationMinutes int       // 0 = calendar default
	BufferMinutes      int       // 0 = calendar default
}

// Response carries the generated slots, chronologically ordered.
type Response struct {
	Date               time.Time
	JobDurationMinutes int
	BufferMinutes      int
	Slots              []domain.AvailableSlot
}
