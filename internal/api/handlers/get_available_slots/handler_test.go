package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	getAvailableSlots "github.com/hawkinspro/HPM-QuoteService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (u *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	u.lastReq = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type fakeMetrics struct {
	lastCount int
	calls     int
}

func (m *fakeMetrics) ObserveSlotsGenerated(count int) {
	m.lastCount = count
	m.calls++
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:               date,
		JobDurationMinutes: 120,
		BufferMinutes:      30,
		Slots: []domain.AvailableSlot{
			{
				Start: time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC),
				End:   time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
				Label: "8:00 AM - 10:00 AM",
			},
		},
	}}
	metrics := &fakeMetrics{}
	handler := NewHandler(useCase, nopLogger{}, metrics)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-07", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, 120, resp.JobDurationMinutes)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-09-07T08:00:00Z", resp.Slots[0].Start)
	assert.Equal(t, "8:00 AM - 10:00 AM", resp.Slots[0].Label)

	assert.Equal(t, 1, metrics.calls)
	assert.Equal(t, 1, metrics.lastCount)
}

func TestHandle_OverridesPassedThrough(t *testing.T) {
	useCase := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:               time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		JobDurationMinutes: 60,
		BufferMinutes:      15,
		Slots:              []domain.AvailableSlot{},
	}}
	handler := NewHandler(useCase, nopLogger{}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/available-slots?date=2026-09-07&jobDurationMinutes=60&bufferMinutes=15", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, useCase.lastReq)
	assert.Equal(t, 60, useCase.lastReq.JobDurationMinutes)
	assert.Equal(t, 15, useCase.lastReq.BufferMinutes)
}

func TestHandle_BadParams(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{}, nil)

	tests := []struct {
		name  string
		query string
	}{
		{"missing date", ""},
		{"malformed date", "date=09/07/2026"},
		{"non-numeric duration", "date=2026-09-07&jobDurationMinutes=two"},
		{"negative duration", "date=2026-09-07&jobDurationMinutes=-30"},
		{"negative buffer", "date=2026-09-07&bufferMinutes=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_BusySourceUnavailable(t *testing.T) {
	useCase := &fakeUseCase{err: getAvailableSlots.ErrBusySourceUnavailable}
	handler := NewHandler(useCase, nopLogger{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-09-07", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
