package logger

import (
	"fmt"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/sink"
)

// SettingsOptions returns the manager options stored in s.
func SettingsOptions(s config.Settings) []ManagerOption {
	return []ManagerOption{
		WithAllowMultipleSameSinks(s.AllowMultipleSameSinks),
		WithAllowReconfiguration(s.AllowReconfiguration),
		WithSuppressWarnings(s.SuppressWarnings),
	}
}

// ConfigureFromSettings configures and builds the manager's logger from
// the sinks listed in s.
func (m *Manager) ConfigureFromSettings(s config.Settings) (Logger, error) {
	b, err := m.Configure()
	if err != nil {
		return nil, err
	}

	base, err := s.Base()
	if err != nil {
		return nil, err
	}

	for i, ss := range s.Sinks {
		if err := addSink(b, base, ss); err != nil {
			return nil, fmt.Errorf("sinks[%d]: %w", i, err)
		}
	}
	return b.Build()
}

func addSink(b *Builder, base config.Config, ss config.SinkSettings) error {
	kind, err := sink.ParseKind(ss.Kind)
	if err != nil {
		return err
	}

	switch kind {
	case sink.Console:
		cc, err := ss.ConsoleConfig(base)
		if err != nil {
			return err
		}
		if out := b.manager.opts.consoleOutput; out != nil {
			cc.SetWriter(out)
		}
		b.WriteToConsole(&cc)
	case sink.Debug:
		cfg, err := ss.Config(base)
		if err != nil {
			return err
		}
		b.WriteToDebug(&cfg)
	case sink.PlainTextFile:
		fc, err := ss.FileConfig(base)
		if err != nil {
			return err
		}
		b.WriteToPlainTextFile(&fc)
	case sink.JSONFile:
		fc, err := ss.FileConfig(base)
		if err != nil {
			return err
		}
		b.WriteToJSONFile(&fc)
	}
	return b.Err()
}
