package logger

import "errors"

// Configuration errors. They are returned while configuring, never while
// logging.
var (
	// ErrDuplicateSink is returned when a sink kind is registered twice and
	// multiple sinks of the same kind are not allowed.
	ErrDuplicateSink = errors.New("sink kind already registered")
	// ErrEmptyConfiguration is returned by Build when no sink was registered.
	ErrEmptyConfiguration = errors.New("no sinks configured")
	// ErrAlreadyBuilt is returned when a sealed builder is used again.
	ErrAlreadyBuilt = errors.New("builder already built")
	// ErrAlreadyConfigured is returned when the manager already holds a
	// logger and reconfiguration is not allowed.
	ErrAlreadyConfigured = errors.New("logger already configured")
)
