package logger

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/sink"
)

// Factory creates the sink of a registration when the builder is built.
type Factory func() (sink.Sink, error)

type builderState uint8

const (
	builderEmpty builderState = iota
	builderAccumulating
	builderSealed
)

type registration struct {
	kind    sink.Kind
	cfg     config.Config
	factory Factory
}

// Builder collects sink registrations and builds the manager's logger.
// Obtain one from Manager.Configure.
//
// Errors are sticky: the first failing WriteTo call is remembered, later
// calls do nothing, and Build returns the error. A Builder is not safe for
// concurrent use.
type Builder struct {
	manager *Manager
	state   builderState
	regs    []registration
	err     error
}

func newBuilder(m *Manager) *Builder {
	return &Builder{manager: m, state: builderEmpty}
}

// Err returns the first configuration error, if any.
func (b *Builder) Err() error {
	return b.err
}

// WriteToConsole registers a console sink. A nil cfg uses
// config.NewConsole writing to the manager's console output.
func (b *Builder) WriteToConsole(cfg *config.ConsoleConfig) *Builder {
	var cc config.ConsoleConfig
	if cfg != nil {
		cc = cfg.Clone()
	} else {
		cc = config.NewConsole()
		if b.manager.opts.consoleOutput != nil {
			cc.SetWriter(b.manager.opts.consoleOutput)
		}
	}

	return b.WriteTo(sink.Console, cc.Config, func() (sink.Sink, error) {
		return sink.NewConsole(cc), nil
	})
}

// WriteToDebug registers a debug stream sink writing to the manager's
// debug output. A nil cfg uses config.New.
func (b *Builder) WriteToDebug(cfg *config.Config) *Builder {
	c := config.New()
	if cfg != nil {
		c = cfg.Clone()
	}

	out := b.manager.opts.debugOutput
	return b.WriteTo(sink.Debug, c, func() (sink.Sink, error) {
		return sink.NewDebug(out), nil
	})
}

// WriteToPlainTextFile registers a plain text file sink. A nil cfg uses
// config.NewFile.
func (b *Builder) WriteToPlainTextFile(cfg *config.FileConfig) *Builder {
	fc := fileConfig(cfg)
	return b.WriteTo(sink.PlainTextFile, fc.Config, func() (sink.Sink, error) {
		return sink.NewPlainTextFile(fc)
	})
}

// WriteToJSONFile registers a JSON file sink. A nil cfg uses
// config.NewFile.
func (b *Builder) WriteToJSONFile(cfg *config.FileConfig) *Builder {
	fc := fileConfig(cfg)
	return b.WriteTo(sink.JSONFile, fc.Config, func() (sink.Sink, error) {
		return sink.NewJSONFile(fc)
	})
}

// WriteTo registers a sink of kind created by factory. The sink is
// created by Build and dispatched with cfg.
func (b *Builder) WriteTo(kind sink.Kind, cfg config.Config, factory Factory) *Builder {
	if b.err != nil {
		return b
	}
	if b.state == builderSealed {
		b.err = ErrAlreadyBuilt
		return b
	}
	if !b.manager.opts.allowMultipleSameSinks && b.has(kind) {
		b.err = fmt.Errorf("%w: %s", ErrDuplicateSink, kind)
		return b
	}

	b.regs = append(b.regs, registration{kind: kind, cfg: cfg, factory: factory})
	b.state = builderAccumulating
	return b
}

// Default registers a console sink with default settings and prints a
// one-time advisory unless warnings are suppressed.
func (b *Builder) Default() *Builder {
	b.manager.warn(defaultConsoleWarning)
	return b.WriteToConsole(nil)
}

// Build creates the registered sinks, installs the resulting logger in the
// manager and seals the builder. One sink yields a *Core, more yield a
// *Multi.
func (b *Builder) Build() (Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.state == builderSealed {
		return nil, ErrAlreadyBuilt
	}
	if b.state == builderEmpty {
		return nil, ErrEmptyConfiguration
	}

	l, err := b.build()
	if err != nil {
		return nil, err
	}
	if err := b.manager.install(l); err != nil {
		return nil, multierr.Append(err, l.Close())
	}

	b.state = builderSealed
	return l, nil
}

func (b *Builder) build() (Logger, error) {
	cores := make([]*Core, 0, len(b.regs))
	for _, r := range b.regs {
		s, err := r.factory()
		if err != nil {
			err = fmt.Errorf("create %s sink: %w", r.kind, err)
			for _, c := range cores {
				err = multierr.Append(err, c.Close())
			}
			return nil, err
		}
		cores = append(cores, NewCore(r.cfg, s))
	}

	if len(cores) == 1 {
		return cores[0], nil
	}
	return NewMulti(cores), nil
}

func (b *Builder) has(kind sink.Kind) bool {
	for _, r := range b.regs {
		if r.kind == kind {
			return true
		}
	}
	return false
}

func fileConfig(cfg *config.FileConfig) config.FileConfig {
	if cfg == nil {
		return config.NewFile()
	}
	return cfg.Clone()
}
