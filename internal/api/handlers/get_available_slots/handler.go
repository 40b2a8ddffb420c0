package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hawkinspro/HPM-QuoteService/internal/api/handlers"
	getAvailableSlots "github.com/hawkinspro/HPM-QuoteService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration     = "invalid jobDurationMinutes"
	msgInvalidBuffer       = "invalid bufferMinutes"
	msgInvalidParams       = "invalid query parameters"
	msgCalendarUnreachable = "calendar is temporarily unreachable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
	metrics MetricsRecorder // may be nil
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger, metrics MetricsRecorder) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), jobDurationMinutes (optional),
// bufferMinutes (optional).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	jobDuration, ok := parseOptionalInt(query.Get("jobDurationMinutes"))
	if !ok {
		h.logger.Warn("GET /available-slots - Invalid jobDurationMinutes: %q", query.Get("jobDurationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	buffer, ok := parseOptionalInt(query.Get("bufferMinutes"))
	if !ok {
		h.logger.Warn("GET /available-slots - Invalid bufferMinutes: %q", query.Get("bufferMinutes"))
		handlers.RespondBadRequest(w, msgInvalidBuffer)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, jobDuration, buffer)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrBusySourceUnavailable):
			h.logger.Error("GET /available-slots - Busy source unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondBadGateway(w, msgCalendarUnreachable)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveSlotsGenerated(len(result.Slots))
	}

	h.logger.Info("GET /available-slots - Slots retrieved: date=%s, slots_count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseOptionalInt parses an optional non-negative integer query parameter.
// An empty value means "not supplied" and parses to zero.
func parseOptionalInt(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
