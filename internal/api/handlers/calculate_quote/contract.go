package calculate_quote

import (
	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

type CalculateQuoteUseCase interface {
	Execute(req *domain.ServiceRequest) (*domain.QuoteResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder counts calculated quotes. May be nil.
type MetricsRecorder interface {
	IncQuotes()
}
