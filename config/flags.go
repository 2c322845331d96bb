package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/philipp01105/nloggify/core"
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping defaults via [NewOptions].
type Flags struct {
	Level           string
	TimestampFormat string
	ThreadInfo      string
}

// NewOptions creates [Options] with default values bound to these flag names.
func (f Flags) NewOptions() *Options {
	def := New()
	return &Options{
		Level:           strings.ToLower(def.MinimumLevel().String()),
		TimestampFormat: def.TimestampFormat(),
		ThreadInfo:      def.IncludeThreadInfo(),
		Flags:           f,
	}
}

// Options holds raw CLI values for a [Config].
//
// Register flags with [Options.RegisterFlags] and convert the parsed values
// with [Options.Config].
type Options struct {
	Level           string
	TimestampFormat string
	ThreadInfo      bool
	Flags           Flags
}

// NewOptions returns [Options] using the flag names log-level,
// log-timestamp-format and log-thread-info.
func NewOptions() *Options {
	f := Flags{
		Level:           "log-level",
		TimestampFormat: "log-timestamp-format",
		ThreadInfo:      "log-thread-info",
	}

	return f.NewOptions()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (o *Options) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.Level, o.Flags.Level, o.Level,
		fmt.Sprintf("minimum log level, one of: %s", strings.Join(LevelStrings(), ", ")))
	flags.StringVar(&o.TimestampFormat, o.Flags.TimestampFormat, o.TimestampFormat,
		"Go reference layout for log timestamps")
	flags.BoolVar(&o.ThreadInfo, o.Flags.ThreadInfo, o.ThreadInfo,
		"include the goroutine id in log headers")
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (o *Options) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(o.Flags.Level,
		cobra.FixedCompletions(LevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", o.Flags.Level, err)
	}

	return nil
}

// Config validates the option values and returns the resulting [Config].
func (o *Options) Config() (Config, error) {
	cfg := New()

	if o.Level != "" {
		level, err := core.ParseLevel(o.Level)
		if err != nil {
			return Config{}, fmt.Errorf("--%s: %w", o.Flags.Level, err)
		}
		cfg.SetMinimumLevel(level)
	}

	if o.TimestampFormat != "" {
		if err := cfg.SetTimestampFormat(o.TimestampFormat); err != nil {
			return Config{}, fmt.Errorf("--%s: %w", o.Flags.TimestampFormat, err)
		}
	}

	cfg.SetIncludeThreadInfo(o.ThreadInfo)

	return cfg, nil
}

// LevelStrings returns the lower-case names of all levels.
func LevelStrings() []string {
	levels := core.Levels()
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		out = append(out, strings.ToLower(l.String()))
	}
	return out
}
