package core

import "time"

// Record is a single log event. It is built once per accepted call and
// handed to sinks by value.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Thread  ThreadInfo
	// Timestamp is Time rendered with the dispatching core's layout.
	// It is empty until the core fills it in.
	Timestamp string
}

// NewRecord stamps a record with the current time and, when withThread is
// set, the calling goroutine.
func NewRecord(level Level, msg string, withThread bool) Record {
	rec := Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
	if withThread {
		rec.Thread = CurrentThread()
	}
	return rec
}
