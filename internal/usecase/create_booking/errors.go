package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrBusinessClosed is returned when the requested date is a blackout
	// date or a weekday with no business hours.
	ErrBusinessClosed = errors.New("create_booking: business is closed on this date")

	// ErrOutsideBusinessHours is returned when the requested window does
	// not fit inside the day's open hours.
	ErrOutsideBusinessHours = errors.New("create_booking: window is outside business hours")

	// ErrTooLateToBook is returned when the requested window starts in the
	// past.
	ErrTooLateToBook = errors.New("create_booking: window starts in the past")

	// ErrSlotTaken is returned when the re-validation finds a conflicting
	// busy interval. Retryable: the caller should pick another slot.
	ErrSlotTaken = errors.New("create_booking: slot is no longer available")

	// ErrBusySourceUnavailable is returned when the pre-write busy fetch
	// fails.
	ErrBusySourceUnavailable = errors.New("create_booking: busy-interval source unavailable")

	// ErrCalendarUnavailable is returned when the event insert fails.
	ErrCalendarUnavailable = errors.New("create_booking: calendar unavailable")

	// ErrInternal is returned for unexpected internal failures.
	ErrInternal = errors.New("create_booking: internal error")
)
