package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/internal/integrations/gcalendar"
)

// UseCase books a visit window on the external calendar. There is no
// reservation state anywhere, so the flow is optimistic: re-fetch busy
// intervals immediately before the event insert, re-validate non-overlap, and
// surface a post-validation conflict as the retryable ErrSlotTaken. Two
// near-simultaneous bookers can still race between the check and the insert;
// the calendar write order settles it and the loser's customer sees a
// "slot taken, pick again" outcome on the next availability query.
type UseCase struct {
	calendar     *domain.BusinessCalendar
	busySource   BusyIntervalSource
	eventCreator EventCreator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new booking usecase.
func NewUseCase(
	calendar *domain.BusinessCalendar,
	busySource BusyIntervalSource,
	eventCreator EventCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		busySource:   busySource,
		eventCreator: eventCreator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates and books the requested window.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Structural validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.calendar.DefaultJobDurationMinutes
	}

	uc.logger.Info("CreateBooking: date=%s, start=%s, duration=%dmin",
		req.Date.Format(domain.DateFormat), req.StartTime, duration)

	// 2. Business closed on this date?
	if uc.calendar.IsBlackout(req.Date) {
		uc.logger.Warn("CreateBooking: %s is a blackout date", req.Date.Format(domain.DateFormat))
		return nil, ErrBusinessClosed
	}
	hours, open := uc.calendar.HoursFor(req.Date)
	if !open {
		uc.logger.Warn("CreateBooking: closed on %s", req.Date.Weekday())
		return nil, ErrBusinessClosed
	}

	// 3. Resolve the concrete window in the business timezone.
	start, err := req.StartTime.At(req.Date, uc.calendar.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve start: %v", ErrInternal, err)
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	dayStart, err := hours.Open.At(req.Date, uc.calendar.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve day start: %v", ErrInternal, err)
	}
	dayEnd, err := hours.Close.At(req.Date, uc.calendar.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve day end: %v", ErrInternal, err)
	}

	if start.Before(dayStart) || end.After(dayEnd) {
		uc.logger.Warn("CreateBooking: window %s-%s outside business hours %s-%s",
			start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), hours.Open, hours.Close)
		return nil, ErrOutsideBusinessHours
	}

	// 4. No bookings into the past.
	now := uc.timeProvider.Now()
	if !start.After(now) {
		uc.logger.Warn("CreateBooking: window start %s is not in the future", start.Format(time.RFC3339))
		return nil, ErrTooLateToBook
	}

	// 5. Optimistic re-validation against a fresh busy list.
	busyIntervals, err := uc.busySource.FetchBusy(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("CreateBooking: busy fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBusySourceUnavailable, err)
	}

	buffer := time.Duration(uc.calendar.DefaultBufferMinutes) * time.Minute
	for _, interval := range busyIntervals {
		expanded := interval.Normalize(uc.calendar.Location).Expand(buffer)
		if expanded.Overlaps(start, end) {
			uc.logger.Warn("CreateBooking: conflict with busy interval %s-%s",
				interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
	}

	// 6. Insert the calendar event.
	created, err := uc.eventCreator.CreateEvent(ctx, gcalendar.EventRequest{
		Summary:       req.Summary,
		Description:   req.Description,
		Start:         start,
		End:           end,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: event insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("CreateBooking: booked event id=%s window=%s-%s",
		created.ID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	return &Response{
		EventID:         created.ID,
		Status:          created.Status,
		HTMLLink:        created.HTMLLink,
		Start:           created.Start,
		End:             created.End,
		DurationMinutes: duration,
	}, nil
}
