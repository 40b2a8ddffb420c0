package create_booking

import (
	"context"
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/internal/integrations/gcalendar"
)

// BusyIntervalSource reports committed time ranges for the business calendar.
// The booking flow re-fetches right before the write; availability results
// from earlier are never trusted.
type BusyIntervalSource interface {
	FetchBusy(ctx context.Context, start, end time.Time) ([]domain.BusyInterval, error)
}

// EventCreator inserts the booking event into the external calendar.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.CreatedEvent, error)
}

// TimeProvider supplies the current time (swappable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface required by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
