package config_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/core"
)

func TestOptions_RegisterFlags(t *testing.T) {
	t.Parallel()

	opts := config.NewOptions()
	cmd := &cobra.Command{Use: "test"}
	opts.RegisterFlags(cmd.Flags())

	err := cmd.Flags().Parse([]string{
		"--log-level", "warn",
		"--log-timestamp-format", "15:04:05.000",
		"--log-thread-info=false",
	})
	require.NoError(t, err)

	cfg, err := opts.Config()
	require.NoError(t, err)
	assert.Equal(t, core.WarningLevel, cfg.MinimumLevel())
	assert.Equal(t, "15:04:05.000", cfg.TimestampFormat())
	assert.False(t, cfg.IncludeThreadInfo())
}

func TestOptions_Config(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		mutate  func(*config.Options)
		wantErr bool
		err     error
	}{
		"defaults": {
			mutate: func(*config.Options) {},
		},
		"bad level": {
			mutate:  func(o *config.Options) { o.Level = "loud" },
			wantErr: true,
		},
		"bad layout": {
			mutate:  func(o *config.Options) { o.TimestampFormat = "HH:mm" },
			wantErr: true,
			err:     config.ErrInvalidTimestampFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			opts := config.NewOptions()
			tc.mutate(opts)

			_, err := opts.Config()
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestOptions_RegisterCompletions(t *testing.T) {
	t.Parallel()

	opts := config.NewOptions()
	cmd := &cobra.Command{Use: "test"}
	opts.RegisterFlags(cmd.Flags())
	require.NoError(t, opts.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("log-level")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, []string{"trace", "debug", "info", "warning", "error", "critical", "fatal"}, values)
}

func TestFlags_CustomNames(t *testing.T) {
	t.Parallel()

	opts := config.Flags{Level: "verbosity", TimestampFormat: "ts", ThreadInfo: "threads"}.NewOptions()
	cmd := &cobra.Command{Use: "test"}
	opts.RegisterFlags(cmd.Flags())

	require.NoError(t, cmd.Flags().Parse([]string{"--verbosity", "trace"}))
	cfg, err := opts.Config()
	require.NoError(t, err)
	assert.Equal(t, core.TraceLevel, cfg.MinimumLevel())
}
