package logger

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
	"github.com/philipp01105/nloggify/sink"
)

var errWrite = errors.New("disk full")

// recordingSink keeps every write in memory.
type recordingSink struct {
	mu      sync.Mutex
	lines   []string
	recs    []core.Record
	closed  int
	failing bool
	panics  bool
	onWrite func(rec core.Record)
	closeFn func() error
}

func (s *recordingSink) Write(rec core.Record, header string) error {
	if s.onWrite != nil {
		s.onWrite(rec)
	}
	if s.panics {
		panic("sink exploded")
	}
	if s.failing {
		return errWrite
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, header+rec.Message)
	s.recs = append(s.recs, rec)
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	s.closed++
	s.mu.Unlock()
	if s.closeFn != nil {
		return s.closeFn()
	}
	return nil
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func (s *recordingSink) Records() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.recs...)
}

func (s *recordingSink) Closed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *recordingSink) Joined() string {
	return strings.Join(s.Lines(), "\n")
}

func testConfig(level core.Level) config.Config {
	cfg := config.New()
	cfg.SetMinimumLevel(level)
	cfg.SetIncludeThreadInfo(false)
	return cfg
}

func newRecordingCore(level core.Level) (*Core, *recordingSink) {
	s := &recordingSink{}
	return NewCore(testConfig(level), s), s
}

func sinkFactory(s sink.Sink) Factory {
	return func() (sink.Sink, error) { return s, nil }
}

func consoleConfigFor(w io.Writer, level core.Level) config.ConsoleConfig {
	cc := config.ConsoleFrom(testConfig(level))
	cc.SetWriter(w)
	return cc
}
