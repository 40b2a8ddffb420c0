package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
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

func testDate(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func newSlotsUseCase(source *fakeBusySource) *UseCase {
	uc := NewUseCase(testCalendar(), source, nopLogger{})
	uc.timeProvider = &stubTimeProvider{now: time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_OpenDayWithDefaults(t *testing.T) {
	source := &fakeBusySource{}
	uc := newSlotsUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(2026, time.September, 7)})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.JobDurationMinutes)
	assert.Equal(t, 30, resp.BufferMinutes)
	assert.Equal(t, 1, source.calls)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC), resp.Slots[0].Start)
}

func TestExecute_OverridesReplaceDefaults(t *testing.T) {
	source := &fakeBusySource{}
	uc := newSlotsUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:               testDate(2026, time.September, 7),
		JobDurationMinutes: 60,
		BufferMinutes:      15,
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.JobDurationMinutes)
	assert.Equal(t, 15, resp.BufferMinutes)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, time.Hour, resp.Slots[0].End.Sub(resp.Slots[0].Start))
	assert.Equal(t, 15*time.Minute, resp.Slots[1].Start.Sub(resp.Slots[0].Start))
}

func TestExecute_BlackoutDateIsEmptyNotError(t *testing.T) {
	source := &fakeBusySource{}
	uc := newSlotsUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(2026, time.September, 8)})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Equal(t, 0, source.calls, "closed days must not hit the busy source")
}

func TestExecute_ClosedWeekdayIsEmptyNotError(t *testing.T) {
	source := &fakeBusySource{}
	uc := newSlotsUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(2026, time.September, 6)})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, 0, source.calls)
}

func TestExecute_BusyFetchFailureIsNeverMaskedAsEmpty(t *testing.T) {
	source := &fakeBusySource{err: errors.New("freebusy query timed out")}
	uc := newSlotsUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(2026, time.September, 7)})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBusySourceUnavailable)
}

func TestExecute_BusyIntervalsExcluded(t *testing.T) {
	source := &fakeBusySource{intervals: []domain.BusyInterval{
		{
			Start: time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, time.September, 7, 11, 0, 0, 0, time.UTC),
		},
	}}
	uc := newSlotsUseCase(source)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate(2026, time.September, 7)})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, time.Date(2026, time.September, 7, 11, 30, 0, 0, time.UTC), resp.Slots[0].Start)
}

func TestExecute_InvalidRequests(t *testing.T) {
	uc := newSlotsUseCase(&fakeBusySource{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"zero date", &Request{}},
		{"negative duration", &Request{Date: testDate(2026, time.September, 7), JobDurationMinutes: -30}},
		{"negative buffer", &Request{Date: testDate(2026, time.September, 7), BufferMinutes: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
