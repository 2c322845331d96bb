package logger

import (
	"context"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/philipp01105/nloggify/core"
	"github.com/philipp01105/nloggify/sink"
)

// Multi is a composite logger fanning each record out to child cores.
//
// The level check happens once against the lowest child minimum. The
// record is stamped on the calling goroutine, then every child renders and
// writes it concurrently; Log returns after all children are done. Calls
// to Log are serialized so all children observe records in the same order.
type Multi struct {
	children    []*Core
	minLevel    core.Level
	withThread  bool
	concurrency int
	mu          sync.Mutex
	asyncSem    *semaphore.Weighted
	closed      bool
}

// MultiOption configures a Multi.
type MultiOption func(*Multi)

// WithMaxConcurrency bounds the number of children written in parallel.
// n <= 0 means no limit.
func WithMaxConcurrency(n int) MultiOption {
	return func(m *Multi) {
		m.concurrency = n
	}
}

// NewMulti creates a composite over children.
func NewMulti(children []*Core, opts ...MultiOption) *Multi {
	m := &Multi{
		children: append([]*Core(nil), children...),
		minLevel: core.FatalLevel,
		asyncSem: semaphore.NewWeighted(1),
	}
	for _, c := range m.children {
		cfg := c.Config()
		m.minLevel = min(m.minLevel, cfg.MinimumLevel())
		m.withThread = m.withThread || cfg.IncludeThreadInfo()
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Children returns the child cores in registration order.
func (m *Multi) Children() []*Core {
	return append([]*Core(nil), m.children...)
}

func (m *Multi) Enabled(level Level) bool {
	return len(m.children) > 0 && level >= m.minLevel
}

func (m *Multi) Log(level Level, msg string) {
	if !m.Enabled(level) {
		return
	}
	rec := core.NewRecord(level, msg, m.withThread)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fanOut(rec)
}

func (m *Multi) fanOut(rec core.Record) {
	if len(m.children) == 1 {
		m.children[0].dispatch(rec)
		return
	}

	var g errgroup.Group
	if m.concurrency > 0 {
		g.SetLimit(m.concurrency)
	}
	for _, child := range m.children {
		g.Go(func() error {
			child.dispatch(rec)
			return nil
		})
	}
	_ = g.Wait()
}

func (m *Multi) LogException(level Level, action func() error, msg string) bool {
	return logException(m, level, action, msg)
}

func (m *Multi) LogExceptionAsync(ctx context.Context, level Level, action func(context.Context) error, msg string) <-chan bool {
	return logExceptionAsync(ctx, m.asyncSem, m, level, action, msg)
}

// Stats returns the counts of all children combined.
func (m *Multi) Stats() sink.Snapshot {
	var snap sink.Snapshot
	for _, c := range m.children {
		snap.Add(c.Stats())
	}
	return snap
}

// Close closes every child, even when some fail, and returns the
// combined error.
func (m *Multi) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var err error
	for _, c := range m.children {
		err = multierr.Append(err, safeClose(c))
	}
	return err
}

func safeClose(c *Core) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return c.Close()
}
