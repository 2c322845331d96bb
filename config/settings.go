package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/nloggify/core"
)

// ErrUnsupportedSettingsFormat is returned by LoadSettings for file
// extensions other than .toml, .yaml and .yml.
var ErrUnsupportedSettingsFormat = errors.New("unsupported settings format")

// Settings is the file representation of a logger setup.
//
// Top-level values are the defaults of every sink; each entry in Sinks may
// override them.
type Settings struct {
	MinimumLevel      string `toml:"minimum_level" yaml:"minimum_level"`
	TimestampFormat   string `toml:"timestamp_format" yaml:"timestamp_format"`
	IncludeThreadInfo *bool  `toml:"include_thread_info" yaml:"include_thread_info"`

	AllowMultipleSameSinks bool `toml:"allow_multiple_same_sinks" yaml:"allow_multiple_same_sinks"`
	AllowReconfiguration   bool `toml:"allow_reconfiguration" yaml:"allow_reconfiguration"`
	SuppressWarnings       bool `toml:"suppress_warnings" yaml:"suppress_warnings"`

	Sinks []SinkSettings `toml:"sinks" yaml:"sinks"`
}

// SinkSettings describes one sink. Kind is one of console, debug,
// plaintext or json.
type SinkSettings struct {
	Kind              string `toml:"kind" yaml:"kind"`
	MinimumLevel      string `toml:"minimum_level" yaml:"minimum_level"`
	TimestampFormat   string `toml:"timestamp_format" yaml:"timestamp_format"`
	IncludeThreadInfo *bool  `toml:"include_thread_info" yaml:"include_thread_info"`

	// File sinks
	Directory      string `toml:"directory" yaml:"directory"`
	FileNamePrefix string `toml:"file_name_prefix" yaml:"file_name_prefix"`

	// Console sink
	UseColors *bool `toml:"use_colors" yaml:"use_colors"`
}

// LoadSettings reads a settings file, choosing the decoder by extension.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	s, err := ParseSettings(data, format)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes data as format ("toml", "yaml" or "yml").
func ParseSettings(data []byte, format string) (Settings, error) {
	var s Settings
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse toml settings: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse yaml settings: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnsupportedSettingsFormat, format)
	}
	return s, nil
}

// Base returns the Config described by the top-level values.
func (s Settings) Base() (Config, error) {
	return apply(New(), s.MinimumLevel, s.TimestampFormat, s.IncludeThreadInfo)
}

// Config returns the sink's Config, starting from base.
func (s SinkSettings) Config(base Config) (Config, error) {
	cfg, err := apply(base, s.MinimumLevel, s.TimestampFormat, s.IncludeThreadInfo)
	if err != nil {
		return Config{}, fmt.Errorf("sink %q: %w", s.Kind, err)
	}
	return cfg, nil
}

// FileConfig returns the FileConfig of a file sink, starting from base.
func (s SinkSettings) FileConfig(base Config) (FileConfig, error) {
	cfg, err := s.Config(base)
	if err != nil {
		return FileConfig{}, err
	}

	fc := FileFrom(cfg)
	if s.Directory != "" {
		if err := fc.SetDirectory(s.Directory); err != nil {
			return FileConfig{}, fmt.Errorf("sink %q: %w", s.Kind, err)
		}
	}
	fc.SetFileNamePrefix(s.FileNamePrefix)
	return fc, nil
}

// ConsoleConfig returns the ConsoleConfig of a console sink, starting
// from base.
func (s SinkSettings) ConsoleConfig(base Config) (ConsoleConfig, error) {
	cfg, err := s.Config(base)
	if err != nil {
		return ConsoleConfig{}, err
	}

	cc := ConsoleFrom(cfg)
	if s.UseColors != nil {
		cc.SetUseColors(*s.UseColors)
	}
	return cc, nil
}

func apply(cfg Config, level, layout string, threadInfo *bool) (Config, error) {
	if level != "" {
		l, err := core.ParseLevel(level)
		if err != nil {
			return Config{}, err
		}
		cfg.SetMinimumLevel(l)
	}
	if layout != "" {
		if err := cfg.SetTimestampFormat(layout); err != nil {
			return Config{}, err
		}
	}
	if threadInfo != nil {
		cfg.SetIncludeThreadInfo(*threadInfo)
	}
	return cfg, nil
}
