package create_booking

import (
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	createBooking "github.com/hawkinspro/HPM-QuoteService/internal/usecase/create_booking"
	"github.com/hawkinspro/HPM-QuoteService/pkg/types"
)

// BookingRequest is the HTTP request model.
type BookingRequest struct {
	Date            string `json:"date"`      // YYYY-MM-DD
	StartTime       string `json:"startTime"` // HH:MM local
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Summary         string `json:"summary"`
	Description     string `json:"description,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
}

// BookingResponse is the HTTP response model.
type BookingResponse struct {
	EventID         string `json:"eventId"`
	Status          string `json:"status"`
	HTMLLink        string `json:"htmlLink,omitempty"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest converts the HTTP request to the usecase request.
func (r *BookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:            date,
		StartTime:       types.TimeString(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		Summary:         r.Summary,
		Description:     r.Description,
		CustomerEmail:   r.CustomerEmail,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		EventID:         resp.EventID,
		Status:          resp.Status,
		HTMLLink:        resp.HTMLLink,
		Start:           resp.Start.Format(time.RFC3339),
		End:             resp.End.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
	}
}
