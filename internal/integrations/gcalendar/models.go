package gcalendar

import "time"

// EventRequest describes a booking event to create on the calendar.
type EventRequest struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	CustomerEmail string // optional; added as an attendee when present
}

// CreatedEvent is the calendar's record of a created booking event.
type CreatedEvent struct {
	ID       string
	Status   string
	HTMLLink string
	Start    time.Time
	End      time.Time
}

// Logger is the logging interface required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder records external call outcomes. May be nil.
type MetricsRecorder interface {
	ObserveExternalCall(target, operation, outcome string, duration time.Duration)
}
