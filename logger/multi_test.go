package logger

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nloggify/core"
)

func newRecordingMulti(levels ...core.Level) (*Multi, []*recordingSink) {
	cores := make([]*Core, 0, len(levels))
	sinks := make([]*recordingSink, 0, len(levels))
	for _, lvl := range levels {
		c, s := newRecordingCore(lvl)
		cores = append(cores, c)
		sinks = append(sinks, s)
	}
	return NewMulti(cores), sinks
}

func TestMulti_FanOut(t *testing.T) {
	m, sinks := newRecordingMulti(InfoLevel, InfoLevel, InfoLevel)

	m.Log(InfoLevel, "to everyone")

	for i, s := range sinks {
		assert.Equal(t, []string{"to everyone"}, messages(s), "sink %d", i)
	}
}

func TestMulti_WritesConcurrently(t *testing.T) {
	const n = 3

	var entered sync.WaitGroup
	entered.Add(n)
	allIn := make(chan struct{})
	go func() {
		entered.Wait()
		close(allIn)
	}()

	cores := make([]*Core, n)
	sinks := make([]*recordingSink, n)
	timedOut := make([]bool, n)
	for i := range n {
		sinks[i] = &recordingSink{onWrite: func(core.Record) {
			entered.Done()
			select {
			case <-allIn:
			case <-time.After(5 * time.Second):
				timedOut[i] = true
			}
		}}
		cores[i] = NewCore(testConfig(TraceLevel), sinks[i])
	}

	NewMulti(cores).Log(InfoLevel, "barrier")

	for i := range n {
		assert.False(t, timedOut[i], "child %d never saw its siblings write in parallel", i)
		assert.Len(t, sinks[i].Lines(), 1)
	}
}

func TestMulti_MaxConcurrency(t *testing.T) {
	m, sinks := newRecordingMulti(TraceLevel, TraceLevel, TraceLevel, TraceLevel)
	m = NewMulti(m.Children(), WithMaxConcurrency(1))

	for i := range 10 {
		m.Log(InfoLevel, fmt.Sprint(i))
	}
	for _, s := range sinks {
		assert.Len(t, s.Lines(), 10)
	}
}

func TestMulti_LevelFilter(t *testing.T) {
	m, sinks := newRecordingMulti(DebugLevel, ErrorLevel)

	assert.False(t, m.Enabled(TraceLevel))
	assert.True(t, m.Enabled(DebugLevel))

	m.Log(TraceLevel, "nobody")
	m.Log(InfoLevel, "debug sink only")
	m.Log(ErrorLevel, "both")

	assert.Equal(t, []string{"debug sink only", "both"}, messages(sinks[0]))
	assert.Equal(t, []string{"both"}, messages(sinks[1]))
}

func TestMulti_SameOrderInEveryChild(t *testing.T) {
	m, sinks := newRecordingMulti(TraceLevel, TraceLevel, TraceLevel)

	var wg sync.WaitGroup
	for g := range 4 {
		wg.Go(func() {
			for i := range 50 {
				m.Log(InfoLevel, fmt.Sprintf("%d-%d", g, i))
			}
		})
	}
	wg.Wait()

	want := messages(sinks[0])
	require.Len(t, want, 200)
	for _, s := range sinks[1:] {
		assert.Equal(t, want, messages(s))
	}
}

func TestMulti_SharedTimestampAndThread(t *testing.T) {
	a, sa := newRecordingCore(TraceLevel)
	cfg := testConfig(TraceLevel)
	cfg.SetIncludeThreadInfo(true)
	sb := &recordingSink{}
	b := NewCore(cfg, sb)

	NewMulti([]*Core{a, b}).Log(InfoLevel, "x")

	ra, rb := sa.Records()[0], sb.Records()[0]
	assert.Equal(t, ra.Time, rb.Time)
	assert.True(t, ra.Thread.IsZero(), "child without thread info must not receive it")
	assert.Equal(t, core.CurrentThread().ID, rb.Thread.ID, "thread must be the caller, not a fan-out goroutine")
}

func TestMulti_ChildFailureIsIsolated(t *testing.T) {
	good1, s1 := newRecordingCore(TraceLevel)
	bad := NewCore(testConfig(TraceLevel), &recordingSink{panics: true})
	good2, s2 := newRecordingCore(TraceLevel)

	m := NewMulti([]*Core{good1, bad, good2})
	assert.NotPanics(t, func() { m.Log(ErrorLevel, "survives") })

	assert.Equal(t, []string{"survives"}, messages(s1))
	assert.Equal(t, []string{"survives"}, messages(s2))

	stats := m.Stats()
	assert.Equal(t, uint64(2), stats.WrittenTotal)
	assert.Equal(t, uint64(1), stats.DroppedTotal)
}

func TestMulti_CloseIsBestEffort(t *testing.T) {
	errClose := errors.New("close failed")

	s1 := &recordingSink{}
	s2 := &recordingSink{closeFn: func() error { return errClose }}
	s3 := &recordingSink{closeFn: func() error { panic("close panic") }}
	s4 := &recordingSink{}

	m := NewMulti([]*Core{
		NewCore(testConfig(TraceLevel), s1),
		NewCore(testConfig(TraceLevel), s2),
		NewCore(testConfig(TraceLevel), s3),
		NewCore(testConfig(TraceLevel), s4),
	})

	err := m.Close()
	require.ErrorIs(t, err, errClose)
	var pe *PanicError
	require.ErrorAs(t, err, &pe)

	for i, s := range []*recordingSink{s1, s2, s3, s4} {
		assert.Equal(t, 1, s.Closed(), "sink %d", i)
	}
	assert.NoError(t, m.Close())
}

func TestMulti_LogException(t *testing.T) {
	m, sinks := newRecordingMulti(TraceLevel, TraceLevel)

	assert.True(t, m.LogException(ErrorLevel, func() error { return errBoom }, "multi:"))
	assert.False(t, m.LogException(ErrorLevel, func() error { return nil }, "multi:"))

	for _, s := range sinks {
		require.Len(t, s.Lines(), 1)
		assert.Contains(t, s.Lines()[0], "multi: boom")
	}
}

func TestMulti_Empty(t *testing.T) {
	m := NewMulti(nil)
	assert.False(t, m.Enabled(FatalLevel))
	assert.NotPanics(t, func() { m.Log(FatalLevel, "nowhere") })
	assert.NoError(t, m.Close())
}
