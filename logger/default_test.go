package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManager_PackageFunctions(t *testing.T) {
	prev := DefaultManager()
	t.Cleanup(func() { SetDefaultManager(prev) })

	var console bytes.Buffer
	SetDefaultManager(NewManager(WithConsoleOutput(&console), WithSuppressWarnings(true)))

	cc := consoleConfigFor(&console, TraceLevel)
	b, err := Configure()
	require.NoError(t, err)
	_, err = b.WriteToConsole(&cc).Build()
	require.NoError(t, err)

	Trace("t")
	Debugf("d=%d", 1)
	Info("i")
	Warningf("w=%s", "x")
	Error("e")
	Criticalf("c")
	Fatal("f")

	out := console.String()
	for _, want := range []string{"Trace: t", "Debug: d=1", "Info: i", "Warning: w=x", "Error: e", "Critical: c", "Fatal: f"} {
		assert.Contains(t, out, want)
	}

	_, err = Configure()
	assert.ErrorIs(t, err, ErrAlreadyConfigured)
}
