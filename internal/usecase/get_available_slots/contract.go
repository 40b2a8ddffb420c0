package get_available_slots

import (
	"context"
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

// BusyIntervalSource is the external collaborator reporting committed time
// ranges for the business calendar. Called exactly once per availability
// query; results are never cached and may arrive in any order.
type BusyIntervalSource interface {
	FetchBusy(ctx context.Context, start, end time.Time) ([]domain.BusyInterval, error)
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
