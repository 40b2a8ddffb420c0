package types

import (
	"fmt"
	"time"
)

// timeLayout is the canonical HH:MM layout for TimeString values.
const timeLayout = "15:04"

// TimeString represents a time of day in "HH:MM" format.
// It is used wherever the engine talks about wall-clock times inside a single
// business day (open/close hours, slot start times).
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only HH:MM.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return NewTimeString(t), nil
}

// String returns the "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero returns true if the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (ts TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("invalid time %q: expected HH:MM", string(ts))
	}
	return nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of
// minutes. The result stays within the same day; shifting past midnight is an
// error because business hours never wrap.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", string(ts))
	}

	shifted := t.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != t.Day() {
		return "", fmt.Errorf("time %q + %dmin crosses midnight", string(ts), minutes)
	}

	return NewTimeString(shifted), nil
}

// Minutes returns the value as minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Comparison is lexicographic, which is correct for zero-padded HH:MM.
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts < other
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts > other
}

// At anchors the time of day onto the given calendar date in loc.
func (ts TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", string(ts))
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
