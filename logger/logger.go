package logger

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
	"github.com/philipp01105/nloggify/formatter"
	"github.com/philipp01105/nloggify/sink"
)

// Logger is the runtime logging surface. Implementations never panic or
// return errors from Log.
type Logger interface {
	// Enabled reports whether a record at level would be dispatched.
	Enabled(level Level) bool
	// Log dispatches msg to every sink accepting level.
	Log(level Level, msg string)
	// LogException runs action and logs msg with the failure when action
	// returns an error or panics. It reports whether action failed.
	// action runs on the caller goroutine without any logger lock held, so
	// it may log itself; only the failure record is written atomically.
	LogException(level Level, action func() error, msg string) bool
	// LogExceptionAsync runs action on its own goroutine and delivers the
	// LogException result on the returned channel. Async actions of one
	// logger run one at a time. If ctx is done before action gets its turn,
	// action never runs, the wait error is logged as the failure, and true
	// is delivered.
	LogExceptionAsync(ctx context.Context, level Level, action func(context.Context) error, msg string) <-chan bool
	// Close releases the sinks. It is safe to call more than once.
	Close() error
}

// Core is a dispatch core writing to a single sink.
//
// Log and the failure records of LogException are serialized through one
// mutex, so records from concurrent goroutines never interleave.
// LogExceptionAsync waits on a separate semaphore while its action runs,
// leaving the mutex free for other callers.
type Core struct {
	cfg      config.Config
	sink     sink.Sink
	stats    *sink.Stats
	mu       sync.Mutex
	asyncSem *semaphore.Weighted
	closed   bool
}

// NewCore creates a dispatch core for s. cfg is copied.
func NewCore(cfg config.Config, s sink.Sink) *Core {
	return &Core{
		cfg:      cfg.Clone(),
		sink:     s,
		stats:    sink.NewStats(),
		asyncSem: semaphore.NewWeighted(1),
	}
}

// Config returns a copy of the core's configuration.
func (c *Core) Config() config.Config {
	return c.cfg
}

// Sink returns the sink the core writes to.
func (c *Core) Sink() sink.Sink {
	return c.sink
}

func (c *Core) Enabled(level Level) bool {
	return c.cfg.Enabled(level)
}

// Log writes msg when level passes the minimum level. Nothing is built for
// filtered levels.
func (c *Core) Log(level Level, msg string) {
	if level < c.cfg.MinimumLevel() {
		return
	}
	c.dispatch(core.NewRecord(level, msg, c.cfg.IncludeThreadInfo()))
}

// dispatch renders rec with this core's settings and writes it. Sink
// errors and panics are counted as dropped records.
func (c *Core) dispatch(rec core.Record) {
	if !c.cfg.Enabled(rec.Level) {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.stats.IncrementDropped(rec.Level)
		}
	}()

	if !c.cfg.IncludeThreadInfo() {
		rec.Thread = core.ThreadInfo{}
	}
	rec.Timestamp = rec.Time.Format(c.cfg.TimestampFormat())
	header := formatter.Header(rec)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.stats.IncrementDropped(rec.Level)
		return
	}
	if err := c.sink.Write(rec, header); err != nil {
		c.stats.IncrementDropped(rec.Level)
		return
	}
	c.stats.IncrementWritten(rec.Level)
}

func (c *Core) LogException(level Level, action func() error, msg string) bool {
	return logException(c, level, action, msg)
}

func (c *Core) LogExceptionAsync(ctx context.Context, level Level, action func(context.Context) error, msg string) <-chan bool {
	return logExceptionAsync(ctx, c.asyncSem, c, level, action, msg)
}

// Stats returns the written and dropped record counts.
func (c *Core) Stats() sink.Snapshot {
	return c.stats.GetSnapshot()
}

// Close closes the sink. Records logged afterwards are dropped.
func (c *Core) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.sink.Close()
}
