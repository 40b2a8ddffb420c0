package get_available_slots

import "fmt"

// validateRequest checks the request parameters. The configured defaults were
// validated at startup; only caller-supplied overrides need guarding here. A
// zero-step scan would never make progress, so a non-positive buffer override
// is an input error, never silently defaulted.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.JobDurationMinutes < 0 {
		return fmt.Errorf("%w: jobDurationMinutes must not be negative", ErrInvalidInput)
	}

	if req.BufferMinutes < 0 {
		return fmt.Errorf("%w: bufferMinutes must not be negative", ErrInvalidInput)
	}

	return nil
}
