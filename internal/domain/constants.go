package domain

// Default scheduling values, used when config omits them.
const (
	DefaultJobDurationMinutes = 120
	DefaultBufferMinutes      = 30
	DefaultTaxRate            = 0.06
)

// Estimated on-site duration clamps. Every visit books at least the minimum
// regardless of how small the job is, and a single visit never exceeds the
// maximum.
const (
	MinEstimatedHours = 1.0
	MaxEstimatedHours = 8.0
)

// AfterHoursStartMinutes marks the start of after-hours work, as minutes since
// midnight local time (18:00).
const AfterHoursStartMinutes = 18 * 60

// ZIPPrefixLength is the number of leading ZIP digits used for tax lookup.
const ZIPPrefixLength = 3

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	LabelFormat = "3:04 PM"    // presentational slot labels
)

// Business validation limits enforced at config load.
const (
	MinJobDurationMinutes = 15
	MaxJobDurationMinutes = 480 // 8 hours
	MinBufferMinutes      = 5
	MaxBufferMinutes      = 240
)
