package config

import (
	"runtime"

	"github.com/philipp01105/nloggify/core"
)

// DefaultTimestampFormat is the layout used when none is configured.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// Config is the configuration of a single dispatch core.
//
// Create instances with New. The zero value is usable but accepts every
// level and never includes thread info.
type Config struct {
	minimumLevel      core.Level
	timestampFormat   string
	includeThreadInfo bool
}

// New returns a Config with the default settings: InfoLevel,
// DefaultTimestampFormat, and thread info enabled on multi-core hosts.
func New() Config {
	return Config{
		minimumLevel:      core.InfoLevel,
		timestampFormat:   DefaultTimestampFormat,
		includeThreadInfo: runtime.NumCPU() > 1,
	}
}

// MinimumLevel returns the lowest level that is dispatched.
func (c Config) MinimumLevel() core.Level {
	return c.minimumLevel
}

// TimestampFormat returns the time layout used for record headers.
func (c Config) TimestampFormat() string {
	if c.timestampFormat == "" {
		return DefaultTimestampFormat
	}
	return c.timestampFormat
}

// IncludeThreadInfo reports whether headers carry the goroutine tag.
func (c Config) IncludeThreadInfo() bool {
	return c.includeThreadInfo
}

// Enabled reports whether a record at level passes the minimum level.
func (c Config) Enabled(level core.Level) bool {
	return level >= c.minimumLevel
}

func (c *Config) SetMinimumLevel(level core.Level) {
	c.minimumLevel = level
}

// SetTimestampFormat validates layout with ValidateTimestampFormat and
// stores it. On error the previous layout is kept.
func (c *Config) SetTimestampFormat(layout string) error {
	if err := ValidateTimestampFormat(layout); err != nil {
		return err
	}
	c.timestampFormat = layout
	return nil
}

func (c *Config) SetIncludeThreadInfo(include bool) {
	c.includeThreadInfo = include
}

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	return c
}
