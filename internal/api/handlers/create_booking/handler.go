package create_booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hawkinspro/HPM-QuoteService/internal/api/handlers"
	createBooking "github.com/hawkinspro/HPM-QuoteService/internal/usecase/create_booking"
)

const (
	msgInvalidBody         = "invalid request body, expected JSON"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidData         = "invalid booking request"
	msgBusinessClosed      = "business is closed on this date"
	msgOutsideHours        = "requested window is outside business hours"
	msgTooLate             = "requested window is in the past"
	msgSlotTaken           = "slot is no longer available, please pick another"
	msgCalendarUnreachable = "calendar is temporarily unreachable"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createBooking.ErrBusinessClosed):
			h.logger.Warn("POST /bookings - Business closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside hours: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Past window: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLate)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrBusySourceUnavailable),
			errors.Is(err, createBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /bookings - Calendar unavailable: date=%s, error=%v", req.Date, err)
			handlers.RespondBadGateway(w, msgCalendarUnreachable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: event_id=%s, start=%s",
		result.EventID, result.Start.Format("2006-01-02 15:04"))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
