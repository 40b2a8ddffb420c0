package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/hawkinspro/HPM-QuoteService/internal/usecase/get_available_slots"
)

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder records per-query slot counts. May be nil.
type MetricsRecorder interface {
	ObserveSlotsGenerated(count int)
}
