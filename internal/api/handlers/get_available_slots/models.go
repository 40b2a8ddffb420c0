package get_available_slots

import (
	"time"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	getAvailableSlots "github.com/hawkinspro/HPM-QuoteService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	Date               string          `json:"date"`
	JobDurationMinutes int             `json:"jobDurationMinutes"`
	BufferMinutes      int             `json:"bufferMinutes"`
	Slots              []AvailableSlot `json:"slots"`
}

// AvailableSlot is one offerable window.
type AvailableSlot struct {
	Start        string `json:"start"` // RFC 3339 with business-timezone offset
	End          string `json:"end"`
	Label        string `json:"label"`
	IsSameDay    bool   `json:"isSameDay"`
	IsAfterHours bool   `json:"isAfterHours"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start:        slot.Start.Format(time.RFC3339),
			End:          slot.End.Format(time.RFC3339),
			Label:        slot.Label,
			IsSameDay:    slot.IsSameDay,
			IsAfterHours: slot.IsAfterHours,
		}
	}

	return &AvailableSlotsResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		JobDurationMinutes: resp.JobDurationMinutes,
		BufferMinutes:      resp.BufferMinutes,
		Slots:              slots,
	}
}

// ToUseCaseRequest builds the usecase request from query parameters.
func ToUseCaseRequest(dateStr string, jobDurationMinutes, bufferMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:               date,
		JobDurationMinutes: jobDurationMinutes,
		BufferMinutes:      bufferMinutes,
	}, nil
}
