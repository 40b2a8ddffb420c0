package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

// UseCase generates the offerable appointment slots for one calendar date.
// Every query re-fetches busy intervals from the external source; no state is
// held between calls and producing a slot does not reserve it.
type UseCase struct {
	calendar     *domain.BusinessCalendar
	busySource   BusyIntervalSource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new availability usecase.
func NewUseCase(calendar *domain.BusinessCalendar, busySource BusyIntervalSource, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		busySource:   busySource,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute generates the slot list for the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate request parameters.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	jobDuration := req.JobDurationMinutes
	if jobDuration == 0 {
		jobDuration = uc.calendar.DefaultJobDurationMinutes
	}
	buffer := req.BufferMinutes
	if buffer == 0 {
		buffer = uc.calendar.DefaultBufferMinutes
	}

	uc.logger.Info("GetAvailableSlots: date=%s, job_duration=%dmin, buffer=%dmin",
		req.Date.Format(domain.DateFormat), jobDuration, buffer)

	emptyResponse := &Response{
		Date:               req.Date,
		JobDurationMinutes: jobDuration,
		BufferMinutes:      buffer,
		Slots:              []domain.AvailableSlot{},
	}

	// 2. Blackout date or closed weekday: business closed, empty list.
	if uc.calendar.IsBlackout(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is a blackout date", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	hours, open := uc.calendar.HoursFor(req.Date)
	if !open {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Weekday())
		return emptyResponse, nil
	}

	// 3. Compute the day window in the business timezone.
	dayStart, err := hours.Open.At(req.Date, uc.calendar.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute day start: %v", ErrInternal, err)
	}
	dayEnd, err := hours.Close.At(req.Date, uc.calendar.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute day end: %v", ErrInternal, err)
	}

	// 4. One busy-interval fetch per query. A failed fetch is a hard
	// failure; an empty slot list would mislead the caller into reading
	// "fully booked".
	busyIntervals, err := uc.busySource.FetchBusy(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: busy fetch failed for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrBusySourceUnavailable, err)
	}

	// 5. Fixed-step candidate scan.
	now := uc.timeProvider.Now()
	slots := generateSlots(
		dayStart,
		dayEnd,
		time.Duration(jobDuration)*time.Minute,
		time.Duration(buffer)*time.Minute,
		busyIntervals,
		now,
		uc.calendar.Location,
	)

	uc.logger.Info("GetAvailableSlots: generated %d slots for %s (%d busy intervals)",
		len(slots), req.Date.Format(domain.DateFormat), len(busyIntervals))

	return &Response{
		Date:               req.Date,
		JobDurationMinutes: jobDuration,
		BufferMinutes:      buffer,
		Slots:              slots,
	}, nil
}
