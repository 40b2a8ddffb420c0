package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/internal/integrations/gcalendar"
	"github.com/hawkinspro/HPM-QuoteService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBusySource struct {
	intervals []domain.BusyInterval
	err       error
	calls     int
}

func (s *fakeBusySource) FetchBusy(ctx context.Context, start, end time.Time) ([]domain.BusyInterval, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.intervals, nil
}

type fakeEventCreator struct {
	created *gcalendar.CreatedEvent
	err     error
	lastReq gcalendar.EventRequest
	calls   int
}

func (c *fakeEventCreator) CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.CreatedEvent, error) {
	c.calls++
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return c.created, nil
}

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

func testCalendar() *domain.BusinessCalendar {
	hours := domain.DayHours{Open: types.TimeString("08:00"), Close: types.TimeString("19:00")}
	return &domain.BusinessCalendar{
		Hours: map[time.Weekday]domain.DayHours{
			time.Monday:    hours,
			time.Tuesday:   hours,
			time.Wednesday: hours,
			time.Thursday:  hours,
			time.Friday:    hours,
			time.Saturday:  hours,
		},
		BlackoutDates: map[string]struct{}{
			"2026-09-08": {},
		},
		DefaultJobDurationMinutes: 120,
		DefaultBufferMinutes:      30,
		Location:                  time.UTC,
	}
}

func monday() time.Time {
	return time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
}

func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, time.September, 7, hour, minute, 0, 0, time.UTC)
}

func newBookingUseCase(source *fakeBusySource, creator *fakeEventCreator) *UseCase {
	uc := NewUseCase(testCalendar(), source, creator, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:      monday(),
		StartTime: types.TimeString("10:00"),
		Summary:   "TV mounting: 1x 55\"",
	}
}

func TestExecute_BooksFreeWindow(t *testing.T) {
	source := &fakeBusySource{}
	creator := &fakeEventCreator{created: &gcalendar.CreatedEvent{
		ID:       "evt-1",
		Status:   "confirmed",
		HTMLLink: "https://calendar.example/evt-1",
		Start:    mondayAt(10, 0),
		End:      mondayAt(12, 0),
	}}
	uc := newBookingUseCase(source, creator)

	req := validRequest()
	req.Description = "Drywall, no concealment"
	req.CustomerEmail = "customer@example.com"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "evt-1", resp.EventID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, mondayAt(10, 0), resp.Start)
	assert.Equal(t, mondayAt(12, 0), resp.End)

	require.Equal(t, 1, creator.calls)
	assert.Equal(t, mondayAt(10, 0), creator.lastReq.Start)
	assert.Equal(t, mondayAt(12, 0), creator.lastReq.End)
	assert.Equal(t, "customer@example.com", creator.lastReq.CustomerEmail)
	assert.Equal(t, 1, source.calls, "busy intervals must be re-fetched before the insert")
}

func TestExecute_DurationOverride(t *testing.T) {
	creator := &fakeEventCreator{created: &gcalendar.CreatedEvent{ID: "evt-2"}}
	uc := newBookingUseCase(&fakeBusySource{}, creator)

	req := validRequest()
	req.DurationMinutes = 180

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 180, resp.DurationMinutes)
	assert.Equal(t, mondayAt(13, 0), creator.lastReq.End)
}

func TestExecute_ConflictIsSlotTaken(t *testing.T) {
	source := &fakeBusySource{intervals: []domain.BusyInterval{
		{Start: mondayAt(12, 15), End: mondayAt(13, 0)},
	}}
	creator := &fakeEventCreator{created: &gcalendar.CreatedEvent{ID: "evt-3"}}
	uc := newBookingUseCase(source, creator)

	// Window 10:00-12:00 against busy 12:15-13:00 expanded by the 30 minute
	// buffer to 11:45-13:30.
	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, 0, creator.calls, "conflicting windows must never reach the calendar write")
}

func TestExecute_BufferTouchingBusyIsBookable(t *testing.T) {
	source := &fakeBusySource{intervals: []domain.BusyInterval{
		{Start: mondayAt(12, 30), End: mondayAt(13, 0)},
	}}
	creator := &fakeEventCreator{created: &gcalendar.CreatedEvent{ID: "evt-4"}}
	uc := newBookingUseCase(source, creator)

	// Busy expands to 12:00-13:30; a window ending exactly at 12:00 fits.
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, creator.calls)
}

func TestExecute_ClosedDates(t *testing.T) {
	uc := newBookingUseCase(&fakeBusySource{}, &fakeEventCreator{})

	blackout := validRequest()
	blackout.Date = time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), blackout)
	assert.ErrorIs(t, err, ErrBusinessClosed)

	sunday := validRequest()
	sunday.Date = time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), sunday)
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	uc := newBookingUseCase(&fakeBusySource{}, &fakeEventCreator{})

	early := validRequest()
	early.StartTime = types.TimeString("07:00")
	_, err := uc.Execute(context.Background(), early)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Starts inside the window but runs past closing.
	late := validRequest()
	late.StartTime = types.TimeString("18:00")
	_, err = uc.Execute(context.Background(), late)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_PastWindowRejected(t *testing.T) {
	uc := newBookingUseCase(&fakeBusySource{}, &fakeEventCreator{})
	uc.timeProvider = &stubTimeProvider{now: mondayAt(11, 0)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_BusyFetchFailure(t *testing.T) {
	source := &fakeBusySource{err: errors.New("freebusy query timed out")}
	creator := &fakeEventCreator{}
	uc := newBookingUseCase(source, creator)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBusySourceUnavailable)
	assert.Equal(t, 0, creator.calls)
}

func TestExecute_CalendarInsertFailure(t *testing.T) {
	creator := &fakeEventCreator{err: errors.New("events.insert: 503")}
	uc := newBookingUseCase(&fakeBusySource{}, creator)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecute_InvalidRequests(t *testing.T) {
	uc := newBookingUseCase(&fakeBusySource{}, &fakeEventCreator{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"negative duration", func(r *Request) { r.DurationMinutes = -60 }},
		{"missing summary", func(r *Request) { r.Summary = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			resp, err := uc.Execute(context.Background(), req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	resp, err := uc.Execute(context.Background(), nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
