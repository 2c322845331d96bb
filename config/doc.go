// Package config holds the validated configuration values consumed by
// nloggify dispatch cores and sinks.
//
// A Config carries the minimum level, the timestamp layout and the
// thread-info toggle. Setters validate eagerly: an invalid timestamp layout
// is rejected with ErrInvalidTimestampFormat and the previous value is kept.
// Config holds only scalars, so copying a Config value is a deep copy.
//
// FileConfig and ConsoleConfig embed Config and add the settings of the
// file based and console sinks. Configuration can also be bound to CLI flags
// with Options, or loaded from a TOML or YAML file with LoadSettings.
package config
