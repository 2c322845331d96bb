package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nloggify/config"
	"github.com/philipp01105/nloggify/sink"
)

func quietManager(t *testing.T, opts ...ManagerOption) (*Manager, *bytes.Buffer) {
	t.Helper()

	var console bytes.Buffer
	opts = append([]ManagerOption{
		WithConsoleOutput(&console),
		WithDebugOutput(&console),
		WithWarningOutput(&bytes.Buffer{}),
	}, opts...)
	return NewManager(opts...), &console
}

func configure(t *testing.T, m *Manager) *Builder {
	t.Helper()

	b, err := m.Configure()
	require.NoError(t, err)
	return b
}

func TestBuilder_DuplicateSink(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder) *Builder
	}{
		{"console", func(b *Builder) *Builder { return b.WriteToConsole(nil).WriteToConsole(nil) }},
		{"debug", func(b *Builder) *Builder { return b.WriteToDebug(nil).WriteToDebug(nil) }},
		{"plain text", func(b *Builder) *Builder {
			return b.WriteToPlainTextFile(nil).WriteToPlainTextFile(nil)
		}},
		{"json", func(b *Builder) *Builder { return b.WriteToJSONFile(nil).WriteToJSONFile(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := quietManager(t)
			b := tt.build(configure(t, m))

			require.ErrorIs(t, b.Err(), ErrDuplicateSink)
			_, err := b.Build()
			require.ErrorIs(t, err, ErrDuplicateSink)
			assert.False(t, m.Configured())
		})
	}
}

func TestBuilder_DuplicateSinkAllowed(t *testing.T) {
	m, console := quietManager(t, WithAllowMultipleSameSinks(true))

	l, err := configure(t, m).WriteToConsole(nil).WriteToConsole(nil).Build()
	require.NoError(t, err)
	require.IsType(t, &Multi{}, l)

	l.Log(InfoLevel, "twice")
	assert.Equal(t, 2, strings.Count(console.String(), "Info: twice\n"))
}

func TestBuilder_EmptyConfiguration(t *testing.T) {
	m, _ := quietManager(t)

	_, err := configure(t, m).Build()
	require.ErrorIs(t, err, ErrEmptyConfiguration)
	assert.False(t, m.Configured())
}

func TestBuilder_States(t *testing.T) {
	m, _ := quietManager(t)
	b := configure(t, m)
	assert.Equal(t, builderEmpty, b.state)

	b.WriteToConsole(nil)
	assert.Equal(t, builderAccumulating, b.state)

	_, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, builderSealed, b.state)
}

func TestBuilder_AlreadyBuilt(t *testing.T) {
	m, _ := quietManager(t)
	b := configure(t, m).WriteToConsole(nil)

	_, err := b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	require.ErrorIs(t, err, ErrAlreadyBuilt)

	b.WriteToDebug(nil)
	require.ErrorIs(t, b.Err(), ErrAlreadyBuilt)
}

func TestBuilder_SingleSinkIsCore(t *testing.T) {
	m, _ := quietManager(t)

	l, err := configure(t, m).WriteToDebug(nil).Build()
	require.NoError(t, err)
	assert.IsType(t, &Core{}, l)
	assert.Same(t, l, m.Current())
}

func TestBuilder_AllSinks(t *testing.T) {
	m, console := quietManager(t)
	dir := t.TempDir()

	fc := config.NewFile()
	require.NoError(t, fc.SetDirectory(dir))
	fc.SetFileNamePrefix("app")

	debugCfg := config.New()
	debugCfg.SetMinimumLevel(ErrorLevel)
	debugCfg.SetIncludeThreadInfo(false)

	l, err := configure(t, m).
		WriteToConsole(nil).
		WriteToDebug(&debugCfg).
		WriteToPlainTextFile(&fc).
		WriteToJSONFile(&fc).
		Build()
	require.NoError(t, err)

	multi, ok := l.(*Multi)
	require.True(t, ok)
	require.Len(t, multi.Children(), 4)

	l.Log(InfoLevel, "info line")
	l.Log(ErrorLevel, "error line")
	require.NoError(t, l.Close())

	assert.Contains(t, console.String(), "Info: info line")
	assert.Equal(t, 2, strings.Count(console.String(), "Error: error line"), "console and debug both write the error")

	logs, err := filepath.Glob(filepath.Join(dir, "app_*.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))

	jsons, err := filepath.Glob(filepath.Join(dir, "app_*.json"))
	require.NoError(t, err)
	require.Len(t, jsons, 1)
	data, err = os.ReadFile(jsons[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"error line"`)
}

func TestBuilder_ConfigIsCopiedAtRegistration(t *testing.T) {
	m, console := quietManager(t)

	cc := config.NewConsole()
	cc.SetWriter(console)
	cc.SetMinimumLevel(ErrorLevel)
	b := configure(t, m).WriteToConsole(&cc)

	cc.SetMinimumLevel(TraceLevel)
	l, err := b.Build()
	require.NoError(t, err)

	l.Log(InfoLevel, "filtered")
	assert.Empty(t, console.String())
}

func TestBuilder_FactoryErrorClosesCreatedSinks(t *testing.T) {
	m, _ := quietManager(t)
	errFactory := errors.New("no route")
	first := &recordingSink{}

	_, err := configure(t, m).
		WriteTo(sink.Console, testConfig(TraceLevel), func() (sink.Sink, error) { return first, nil }).
		WriteTo(sink.Debug, testConfig(TraceLevel), func() (sink.Sink, error) { return nil, errFactory }).
		Build()

	require.ErrorIs(t, err, errFactory)
	assert.Equal(t, 1, first.Closed())
	assert.False(t, m.Configured())
}

func TestBuilder_Default(t *testing.T) {
	var warnings bytes.Buffer
	m, console := quietManager(t, WithWarningOutput(&warnings))

	l, err := configure(t, m).Default().Build()
	require.NoError(t, err)

	l.Log(InfoLevel, "hello")
	assert.Contains(t, console.String(), "Info: hello")
	assert.Contains(t, warnings.String(), "Logger not configured")
}

func TestBuilder_DefaultSuppressed(t *testing.T) {
	var warnings bytes.Buffer
	m, _ := quietManager(t, WithWarningOutput(&warnings), WithSuppressWarnings(true))

	_, err := configure(t, m).Default().Build()
	require.NoError(t, err)
	assert.Empty(t, warnings.String())
}
