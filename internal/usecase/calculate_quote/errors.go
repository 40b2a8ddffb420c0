package calculate_quote

import "errors"

var (
	// ErrInvalidInput is returned for a nil request.
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")
)
