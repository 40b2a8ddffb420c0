package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	// (zero date, negative duration or buffer override).
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrBusySourceUnavailable is returned when the busy-interval fetch
	// fails. The failure is never masked as an empty slot list.
	ErrBusySourceUnavailable = errors.New("get_available_slots: busy-interval source unavailable")

	// ErrInternal is returned for unexpected internal failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
