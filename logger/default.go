package logger

import (
	"fmt"
	"sync"
)

var (
	defaultManager = NewManager()
	defaultMu      sync.RWMutex
)

// DefaultManager returns the process-wide manager used by the
// package-level functions.
func DefaultManager() *Manager {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultManager
}

// SetDefaultManager replaces the process-wide manager. Proxies obtained
// from the previous manager keep resolving against it.
func SetDefaultManager(m *Manager) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultManager = m
}

// Configure returns a builder for the default manager.
func Configure() (*Builder, error) {
	return DefaultManager().Configure()
}

// GetLogger returns the default manager's proxy.
func GetLogger() Logger {
	return DefaultManager().GetLogger()
}

// Package-level convenience functions using the default manager

// Log logs msg at level using the default logger
func Log(level Level, msg string) {
	GetLogger().Log(level, msg)
}

// Trace logs a trace message using the default logger
func Trace(msg string) {
	Log(TraceLevel, msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Log(DebugLevel, msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Log(InfoLevel, msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) {
	Log(WarningLevel, msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Log(ErrorLevel, msg)
}

// Critical logs a critical message using the default logger
func Critical(msg string) {
	Log(CriticalLevel, msg)
}

// Fatal logs a fatal message using the default logger. It does not exit.
func Fatal(msg string) {
	Log(FatalLevel, msg)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	logf(TraceLevel, format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	logf(DebugLevel, format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	logf(InfoLevel, format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...any) {
	logf(WarningLevel, format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	logf(ErrorLevel, format, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...any) {
	logf(CriticalLevel, format, args...)
}

// Fatalf logs a formatted fatal message using the default logger. It does
// not exit.
func Fatalf(format string, args ...any) {
	logf(FatalLevel, format, args...)
}

// logf formats only when the level is enabled.
func logf(level Level, format string, args ...any) {
	l := GetLogger()
	if !l.Enabled(level) {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}
