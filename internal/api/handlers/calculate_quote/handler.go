package calculate_quote

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hawkinspro/HPM-QuoteService/internal/api/handlers"
	calculateQuote "github.com/hawkinspro/HPM-QuoteService/internal/usecase/calculate_quote"
)

const (
	msgInvalidBody = "invalid request body, expected JSON"
	msgInvalidData = "invalid quote request"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
	metrics MetricsRecorder // may be nil
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger, metrics MetricsRecorder) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, calculateQuote.ErrInvalidInput) {
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /quotes - Failed to calculate quote: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if h.metrics != nil {
		h.metrics.IncQuotes()
	}

	h.logger.Info("POST /quotes - Quote calculated: services=%d, total=%.2f",
		result.NumServices, result.EstimatedTotalWithTax)
	handlers.RespondJSON(w, http.StatusOK, FromQuoteResult(result))
}
