package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log record.
// Levels are ordered; a record is accepted when its level is >= the minimum.
type Level int8

const (
	// TraceLevel for very fine grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default minimum)
	InfoLevel
	// WarningLevel for recoverable problems
	WarningLevel
	// ErrorLevel for failed operations
	ErrorLevel
	// CriticalLevel for failures that need immediate attention
	CriticalLevel
	// FatalLevel for failures the application cannot continue from.
	// Logging at FatalLevel never exits the process.
	FatalLevel
)

var levelNames = [...]string{
	TraceLevel:    "Trace",
	DebugLevel:    "Debug",
	InfoLevel:     "Info",
	WarningLevel:  "Warning",
	ErrorLevel:    "Error",
	CriticalLevel: "Critical",
	FatalLevel:    "Fatal",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int8(l))
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarningLevel, ErrorLevel, CriticalLevel, FatalLevel}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts the short forms "warn" and "crit".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "critical", "crit":
		return CriticalLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid log level: %d", int8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
