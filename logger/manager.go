package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/sink"
)

const defaultConsoleWarning = `
===========================================================
 WARNING: Logger not configured. Using default console logger.
 Configure sinks with Configure() ... Build() before logging,
 or suppress this message with WithSuppressWarnings(true).
===========================================================
`

type managerOptions struct {
	allowMultipleSameSinks bool
	allowReconfiguration   bool
	suppressWarnings       bool
	warningOutput          io.Writer
	consoleOutput          io.Writer
	debugOutput            io.Writer
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

// WithAllowMultipleSameSinks lets a builder register the same sink kind
// more than once. Use at your own risk.
func WithAllowMultipleSameSinks(allow bool) ManagerOption {
	return func(o *managerOptions) {
		o.allowMultipleSameSinks = allow
	}
}

// WithAllowReconfiguration lets Configure replace an installed logger.
// The replaced logger is closed. Use at your own risk.
func WithAllowReconfiguration(allow bool) ManagerOption {
	return func(o *managerOptions) {
		o.allowReconfiguration = allow
	}
}

// WithSuppressWarnings silences the default-logger advisory.
func WithSuppressWarnings(suppress bool) ManagerOption {
	return func(o *managerOptions) {
		o.suppressWarnings = suppress
	}
}

// WithWarningOutput sets where advisories are printed (default os.Stderr).
func WithWarningOutput(w io.Writer) ManagerOption {
	return func(o *managerOptions) {
		o.warningOutput = w
	}
}

// WithConsoleOutput sets the writer of console sinks registered without
// an explicit configuration, including the default logger. The manager
// serializes writes to w across all of its sinks.
func WithConsoleOutput(w io.Writer) ManagerOption {
	return func(o *managerOptions) {
		o.consoleOutput = w
	}
}

// WithDebugOutput sets the debug stream (default os.Stderr). Writes to w
// are serialized like those to the console output.
func WithDebugOutput(w io.Writer) ManagerOption {
	return func(o *managerOptions) {
		o.debugOutput = w
	}
}

// lockOutputs wraps the shared outputs so sinks written concurrently by a
// composite never interleave bytes. One lock is used when console and
// debug output are the same writer.
func (o *managerOptions) lockOutputs() {
	console, debug := o.consoleOutput, o.debugOutput
	if console != nil {
		o.consoleOutput = lockWriter(console)
	}
	if debug != nil {
		if console != nil && sameWriter(console, debug) {
			o.debugOutput = o.consoleOutput
		} else {
			o.debugOutput = lockWriter(debug)
		}
	}
}

// lockWriter leaves *os.File alone so terminal detection still sees it.
func lockWriter(w io.Writer) io.Writer {
	if _, ok := w.(*os.File); ok {
		return w
	}
	return zapcore.Lock(zapcore.AddSync(w))
}

func sameWriter(a, b io.Writer) bool {
	ta := reflect.TypeOf(a)
	return ta == reflect.TypeOf(b) && ta.Comparable() && a == b
}

type installed struct {
	logger Logger
}

// Manager owns the active logger. Callers get a Proxy from GetLogger that
// resolves the active logger on every call, so a reconfiguration is seen
// by every holder.
//
// The first logger installed seals the manager: later Configure calls
// fail with ErrAlreadyConfigured unless reconfiguration is allowed.
type Manager struct {
	opts     managerOptions
	mu       sync.Mutex // guards lazy default creation and installs
	active   atomic.Pointer[installed]
	proxy    *Proxy
	warnOnce sync.Once
}

// NewManager creates an unconfigured manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(&m.opts)
	}
	m.opts.lockOutputs()
	m.proxy = &Proxy{manager: m}
	return m
}

// Configure returns a builder for the manager's logger.
func (m *Manager) Configure() (*Builder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active.Load() != nil && !m.opts.allowReconfiguration {
		return nil, ErrAlreadyConfigured
	}
	return newBuilder(m), nil
}

// Configured reports whether a logger is installed.
func (m *Manager) Configured() bool {
	return m.active.Load() != nil
}

// GetLogger returns the manager's proxy. When nothing is configured yet a
// default console logger is installed first.
func (m *Manager) GetLogger() Logger {
	m.Current()
	return m.proxy
}

// Current returns the installed logger, installing the default console
// logger when there is none.
func (m *Manager) Current() Logger {
	if in := m.active.Load(); in != nil {
		return in.logger
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if in := m.active.Load(); in != nil {
		return in.logger
	}

	l, err := newBuilder(m).Default().build()
	if err != nil {
		l = NewCore(config.New(), sink.NewDebug(m.opts.debugOutput))
	}
	m.setLogger(l)
	return l
}

// install makes l the active logger and closes the one it replaces.
// A failure to close the old logger does not undo the install.
func (m *Manager) install(l Logger) error {
	m.mu.Lock()
	if m.active.Load() != nil && !m.opts.allowReconfiguration {
		m.mu.Unlock()
		return ErrAlreadyConfigured
	}
	prev := m.setLogger(l)
	m.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// setLogger swaps the active logger and returns the previous one.
// Callers hold m.mu.
func (m *Manager) setLogger(l Logger) Logger {
	prev := m.active.Swap(&installed{logger: l})
	if prev == nil {
		return nil
	}
	return prev.logger
}

// Shutdown closes the active logger. Records logged afterwards are dropped.
func (m *Manager) Shutdown() error {
	if in := m.active.Load(); in != nil {
		return in.logger.Close()
	}
	return nil
}

func (m *Manager) warn(msg string) {
	if m.opts.suppressWarnings {
		return
	}
	m.warnOnce.Do(func() {
		w := m.opts.warningOutput
		if w == nil {
			w = os.Stderr
		}
		_, _ = fmt.Fprint(w, msg)
	})
}
