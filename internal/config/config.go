package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hawkinspro/HPM-QuoteService/internal/domain"
	"github.com/hawkinspro/HPM-QuoteService/pkg/types"
)

// Config is the full service configuration, decoded from config.toml once at
// startup.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
	Business BusinessConfig `toml:"business"`
	Tax      TaxConfig      `toml:"tax"`
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig holds the external calendar integration settings.
type CalendarConfig struct {
	CalendarID string `toml:"calendar_id"`
	TokenFile  string `toml:"token_file"`
	Timeout    int    `toml:"timeout"` // seconds
}

// DayHoursConfig is one weekday's open/close window. A missing section or
// closed=true means no work is offered that day.
type DayHoursConfig struct {
	Open   string `toml:"open"`
	Close  string `toml:"close"`
	Closed bool   `toml:"closed"`
}

// BusinessConfig holds the scheduling rules.
type BusinessConfig struct {
	Timezone                  string                    `toml:"timezone"`
	DefaultJobDurationMinutes int                       `toml:"default_job_duration_minutes"`
	DefaultBufferMinutes      int                       `toml:"default_buffer_minutes"`
	BlackoutDates             []string                  `toml:"blackout_dates"`
	Hours                     map[string]DayHoursConfig `toml:"hours"`
}

// TaxConfig holds the ZIP-prefix tax table.
type TaxConfig struct {
	DefaultRate float64            `toml:"default_rate"`
	Rates       map[string]float64 `toml:"rates"`
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Load reads and validates the configuration file. Invalid scheduling values
// (zero buffer, non-positive duration, close before open) are rejected here so
// the slot generator never has to guard against them mid-scan.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
	if c.Calendar.Timeout == 0 {
		c.Calendar.Timeout = 10
	}
	if c.Business.DefaultJobDurationMinutes == 0 {
		c.Business.DefaultJobDurationMinutes = domain.DefaultJobDurationMinutes
	}
	if c.Business.DefaultBufferMinutes == 0 {
		c.Business.DefaultBufferMinutes = domain.DefaultBufferMinutes
	}
	if c.Tax.DefaultRate == 0 {
		c.Tax.DefaultRate = domain.DefaultTaxRate
	}
}

// Validate checks the scheduling and tax configuration.
func (c *Config) Validate() error {
	if c.Business.Timezone == "" {
		return fmt.Errorf("business.timezone is required")
	}
	if _, err := time.LoadLocation(c.Business.Timezone); err != nil {
		return fmt.Errorf("business.timezone: unknown timezone %q", c.Business.Timezone)
	}

	if d := c.Business.DefaultJobDurationMinutes; d < domain.MinJobDurationMinutes || d > domain.MaxJobDurationMinutes {
		return fmt.Errorf("business.default_job_duration_minutes must be between %d and %d, got %d",
			domain.MinJobDurationMinutes, domain.MaxJobDurationMinutes, d)
	}
	if b := c.Business.DefaultBufferMinutes; b < domain.MinBufferMinutes || b > domain.MaxBufferMinutes {
		return fmt.Errorf("business.default_buffer_minutes must be between %d and %d, got %d",
			domain.MinBufferMinutes, domain.MaxBufferMinutes, b)
	}

	for name, day := range c.Business.Hours {
		weekday, ok := weekdayNames[name]
		if !ok {
			return fmt.Errorf("business.hours: unknown weekday %q", name)
		}
		if day.Closed {
			continue
		}

		open, err := types.NewTimeStringFromString(day.Open)
		if err != nil {
			return fmt.Errorf("business.hours.%s.open: %v", name, err)
		}
		closeAt, err := types.NewTimeStringFromString(day.Close)
		if err != nil {
			return fmt.Errorf("business.hours.%s.close: %v", name, err)
		}
		if !open.IsBefore(closeAt) {
			return fmt.Errorf("business.hours.%s: close %s must be after open %s (weekday %d)",
				name, closeAt, open, weekday)
		}
	}

	for _, dateStr := range c.Business.BlackoutDates {
		if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
			return fmt.Errorf("business.blackout_dates: invalid date %q, expected YYYY-MM-DD", dateStr)
		}
	}

	if c.Tax.DefaultRate < 0 || c.Tax.DefaultRate >= 1 {
		return fmt.Errorf("tax.default_rate must be in [0, 1), got %v", c.Tax.DefaultRate)
	}
	for prefix, rate := range c.Tax.Rates {
		if len(prefix) != domain.ZIPPrefixLength {
			return fmt.Errorf("tax.rates: prefix %q must be %d digits", prefix, domain.ZIPPrefixLength)
		}
		if rate < 0 || rate >= 1 {
			return fmt.Errorf("tax.rates.%s must be in [0, 1), got %v", prefix, rate)
		}
	}

	return nil
}

// BusinessCalendar builds the immutable calendar value consumed by the slot
// generator and booking usecase.
func (c *Config) BusinessCalendar() (*domain.BusinessCalendar, error) {
	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Business.Timezone, err)
	}

	hours := make(map[time.Weekday]domain.DayHours, len(c.Business.Hours))
	for name, day := range c.Business.Hours {
		weekday := weekdayNames[name]
		if day.Closed {
			hours[weekday] = domain.DayHours{Closed: true}
			continue
		}

		open, err := types.NewTimeStringFromString(day.Open)
		if err != nil {
			return nil, fmt.Errorf("business.hours.%s.open: %w", name, err)
		}
		closeAt, err := types.NewTimeStringFromString(day.Close)
		if err != nil {
			return nil, fmt.Errorf("business.hours.%s.close: %w", name, err)
		}
		hours[weekday] = domain.DayHours{Open: open, Close: closeAt}
	}

	blackouts := make(map[string]struct{}, len(c.Business.BlackoutDates))
	for _, dateStr := range c.Business.BlackoutDates {
		blackouts[dateStr] = struct{}{}
	}

	return &domain.BusinessCalendar{
		Hours:                     hours,
		BlackoutDates:             blackouts,
		DefaultJobDurationMinutes: c.Business.DefaultJobDurationMinutes,
		DefaultBufferMinutes:      c.Business.DefaultBufferMinutes,
		Location:                  loc,
	}, nil
}

// TaxTable builds the tax lookup table consumed by the pricing engine.
func (c *Config) TaxTable() domain.TaxTable {
	rates := make(map[string]float64, len(c.Tax.Rates))
	for prefix, rate := range c.Tax.Rates {
		rates[prefix] = rate
	}
	return domain.TaxTable{
		DefaultRate: c.Tax.DefaultRate,
		Rates:       rates,
	}
}
