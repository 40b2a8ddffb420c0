package create_booking

import (
	"time"

	"github.com/hawkinspro/HPM-QuoteService/pkg/types"
)

// Request describes one booking attempt for an already-quoted visit.
type Request struct {
	Date            time.Time        // calendar date, time-of-day ignored
	StartTime       types.TimeString // local start, e.g. "10:00"
	DurationMinutes int              // 0 = calendar default; sized from the quote's estimated hours
	Summary         string           // event title
	Description     string           // event body (service breakdown, notes)
	CustomerEmail   string           // optional attendee
}

// Response is the confirmed booking window.
type Response struct {
	EventID         string
	Status          string
	HTMLLink        string
	Start           time.Time
	End             time.Time
	DurationMinutes int
}
