package get_business_config

import (
	"net/http"
	"sort"
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/api/handlers"
	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// DayHours is one weekday's window in the HTTP model.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// ConfigResponse is the public scheduling configuration.
type ConfigResponse struct {
	Timezone                  string              `json:"timezone"`
	Hours                     map[string]DayHours `json:"hours"`
	BlackoutDates             []string            `json:"blackoutDates"`
	DefaultJobDurationMinutes int                 `json:"defaultJobDurationMinutes"`
	DefaultBufferMinutes      int                 `json:"defaultBufferMinutes"`
}

type Handler struct {
	calendar *domain.BusinessCalendar
	logger   Logger
}

func NewHandler(calendar *domain.BusinessCalendar, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/business-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours := make(map[string]DayHours, len(h.calendar.Hours))
	for weekday, day := range h.calendar.Hours {
		name := weekdayName(weekday)
		if day.Closed {
			hours[name] = DayHours{Closed: true}
			continue
		}
		hours[name] = DayHours{Open: day.Open.String(), Close: day.Close.String()}
	}

	blackouts := make([]string, 0, len(h.calendar.BlackoutDates))
	for date := range h.calendar.BlackoutDates {
		blackouts = append(blackouts, date)
	}
	sort.Strings(blackouts)

	h.logger.Info("GET /business-config - Config retrieved")
	handlers.RespondJSON(w, http.StatusOK, &ConfigResponse{
		Timezone:                  h.calendar.Location.String(),
		Hours:                     hours,
		BlackoutDates:             blackouts,
		DefaultJobDurationMinutes: h.calendar.DefaultJobDurationMinutes,
		DefaultBufferMinutes:      h.calendar.DefaultBufferMinutes,
	})
}

func weekdayName(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
