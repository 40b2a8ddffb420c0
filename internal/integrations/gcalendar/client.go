package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
)

const metricsTarget = "gcalendar"

// Client talks to the Google Calendar API: it is the busy-interval source for
// availability queries and the event sink for bookings. It performs no retries
// and caches nothing; every call goes to the API.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
	timeout    time.Duration
	log        Logger
	metrics    MetricsRecorder // may be nil
}

// NewClient builds a calendar client from a stored OAuth token file.
// The token file is produced by the one-time authorization tool; refreshing it
// is that tool's concern, not the service's.
func NewClient(
	ctx context.Context,
	calendarID string,
	tokenFile string,
	timezone string,
	timeout time.Duration,
	log Logger,
	metrics MetricsRecorder,
) (*Client, error) {
	raw, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read token file %s: %v", ErrInternal, tokenFile, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("%w: failed to parse token file %s: %v", ErrInternal, tokenFile, err)
	}

	service, err := calendar.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(&token)))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build calendar service: %v", ErrInternal, err)
	}

	return &Client{
		service:    service,
		calendarID: calendarID,
		timezone:   timezone,
		timeout:    timeout,
		log:        log,
		metrics:    metrics,
	}, nil
}

// FetchBusy queries freebusy for [start, end] and returns the committed
// intervals. Interval order is whatever the API returns; callers must not
// assume ordering.
func (c *Client) FetchBusy(ctx context.Context, start, end time.Time) ([]domain.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request := &calendar.FreeBusyRequest{
		TimeMin:  start.Format(time.RFC3339),
		TimeMax:  end.Format(time.RFC3339),
		TimeZone: c.timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
	}

	began := time.Now()
	response, err := c.service.Freebusy.Query(request).Context(ctx).Do()
	c.observe("freebusy", began, err)
	if err != nil {
		return nil, fmt.Errorf("%w: freebusy query failed: %v", ErrUnavailable, err)
	}

	entry, ok := response.Calendars[c.calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: freebusy response missing calendar %s", ErrInvalidResponse, c.calendarID)
	}
	if len(entry.Errors) > 0 {
		return nil, fmt.Errorf("%w: freebusy reported %q for calendar %s",
			ErrInvalidResponse, entry.Errors[0].Reason, c.calendarID)
	}

	intervals := make([]domain.BusyInterval, 0, len(entry.Busy))
	for _, period := range entry.Busy {
		busyStart, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: unparseable busy start %q: %v", ErrInvalidResponse, period.Start, err)
		}
		busyEnd, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("%w: unparseable busy end %q: %v", ErrInvalidResponse, period.End, err)
		}
		intervals = append(intervals, domain.BusyInterval{Start: busyStart, End: busyEnd})
	}

	c.log.Info("FetchBusy: %d busy intervals for calendar=%s window=%s..%s",
		len(intervals), c.calendarID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	return intervals, nil
}

// CreateEvent inserts a booking event and notifies attendees.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*CreatedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}
	if req.CustomerEmail != "" {
		event.Attendees = []*calendar.EventAttendee{{Email: req.CustomerEmail}}
	}

	began := time.Now()
	created, err := c.service.Events.Insert(c.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	c.observe("events.insert", began, err)
	if err != nil {
		return nil, fmt.Errorf("%w: event insert failed: %v", ErrUnavailable, err)
	}

	c.log.Info("CreateEvent: created event id=%s calendar=%s start=%s",
		created.Id, c.calendarID, req.Start.Format(time.RFC3339))

	return &CreatedEvent{
		ID:       created.Id,
		Status:   created.Status,
		HTMLLink: created.HtmlLink,
		Start:    req.Start,
		End:      req.End,
	}, nil
}

func (c *Client) observe(operation string, began time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.ObserveExternalCall(metricsTarget, operation, outcome, time.Since(began))
}
