package gcalendar

import "errors"

var (
	// ErrUnavailable is returned when the calendar API cannot be reached
	// or rejects the call.
	ErrUnavailable = errors.New("gcalendar client: calendar unavailable")

	// ErrInvalidResponse is returned when the calendar API answers with
	// data the client cannot interpret.
	ErrInvalidResponse = errors.New("gcalendar client: invalid response")

	// ErrInternal is returned for client-side failures (bad token file,
	// request construction).
	ErrInternal = errors.New("gcalendar client: internal error")
)
