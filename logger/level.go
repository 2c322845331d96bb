package logger

import "github.com/philipp01105/nloggify/core"

// Level is an alias for core.Level so callers only import this package.
type Level = core.Level

// Log levels
const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	FatalLevel    = core.FatalLevel
)

// ParseLevel parses a level name. See core.ParseLevel.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
