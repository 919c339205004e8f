package clout

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for use as the output destination
// in concurrency tests.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// initForTest installs the builder's configuration with output captured
// in a buffer, and tears it down when the test finishes.
func initForTest(t *testing.T, b *Builder) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	b.out = &buf
	require.NoError(t, b.Done())
	t.Cleanup(func() {
		// The test may have shut down already; ignore the error.
		_ = Shutdown()
	})
	return &buf
}

func TestDoneInstallsState(t *testing.T) {
	buf := initForTest(t, Init())

	Statusf("hello %s", "world")
	assert.Equal(t, "[status] hello world\n", buf.String())
}

func TestDoneTwiceFails(t *testing.T) {
	buf := initForTest(t, Init().WithVerbose(1))

	err := Init().WithQuiet(true).Done()
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	// The first configuration must still be active: info passes a
	// verbose=1 floor but would not pass quiet.
	Infof("still here")
	assert.Contains(t, buf.String(), "[info] still here\n")
}

func TestShutdownBeforeInitFails(t *testing.T) {
	err := Shutdown()
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestShutdownTwiceFails(t *testing.T) {
	initForTest(t, Init())

	require.NoError(t, Shutdown())
	require.ErrorIs(t, Shutdown(), ErrNotInitialized)
}

func TestReinitAfterShutdown(t *testing.T) {
	initForTest(t, Init())
	require.NoError(t, Shutdown())

	buf := initForTest(t, Init())
	Statusf("back again")
	assert.Equal(t, "[status] back again\n", buf.String())
}

func TestEmitBeforeInitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("emitting before init should panic")
		}
	}()
	Statusf("too early")
}

func TestEmitAfterShutdownPanics(t *testing.T) {
	initForTest(t, Init())
	require.NoError(t, Shutdown())

	defer func() {
		if recover() == nil {
			t.Error("emitting after shutdown should panic")
		}
	}()
	Statusf("too late")
}

func TestDefaultVisibility(t *testing.T) {
	buf := initForTest(t, Init())

	Errorf("an error")
	Warnf("a warning")
	Statusf("a normal message")
	Infof("useful info")
	Debugf("debug info")
	Tracef("tracing")

	got := buf.String()
	assert.Equal(t, "[error] an error\n[warn] a warning\n[status] a normal message\n", got)
}

func TestVerboseVisibility(t *testing.T) {
	buf := initForTest(t, Init().WithVerbose(2))

	Infof("useful info")
	Debugf("debug info")
	Tracef("tracing")

	got := buf.String()
	assert.Contains(t, got, "[info] useful info\n")
	assert.Contains(t, got, "[debug] debug info\n")
	assert.NotContains(t, got, "[trace]")
}

func TestQuietVisibility(t *testing.T) {
	buf := initForTest(t, Init().WithVerbose(3).WithQuiet(true))

	Errorf("an error")
	Warnf("a warning")
	Statusf("a normal message")

	assert.Equal(t, "[error] an error\n", buf.String())
}

func TestSilentEmitsNothing(t *testing.T) {
	buf := initForTest(t, Init().WithSilent(true))

	Errorf("an error")
	Statusf("a normal message")
	Tracef("tracing")

	assert.Empty(t, buf.String())
}

func TestColoredOutput(t *testing.T) {
	buf := initForTest(t, Init().WithUseColor(ColorAlways))

	Errorf("boom")
	assert.Contains(t, buf.String(), "\x1b[", "ColorAlways should produce ANSI codes")
}

func TestUncoloredOutput(t *testing.T) {
	buf := initForTest(t, Init().WithUseColor(ColorNever))

	Errorf("boom")
	Warnf("careful")
	assert.Equal(t, "[error] boom\n[warn] careful\n", buf.String())
}

func TestStatusNeverColored(t *testing.T) {
	buf := initForTest(t, Init().WithUseColor(ColorAlways))

	Statusf("plain")
	assert.Equal(t, "[status] plain\n", buf.String())
}

func TestConcurrentEmitsDoNotInterleave(t *testing.T) {
	const goroutines = 8
	const messages = 50

	buf := &syncBuffer{}
	b := Init().WithVerbose(3)
	b.out = buf
	require.NoError(t, b.Done())
	t.Cleanup(func() { _ = Shutdown() })

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for m := 0; m < messages; m++ {
				Statusf("goroutine %d message %d", g, m)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, goroutines*messages)

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		var g, m int
		_, err := fmt.Sscanf(line, "[status] goroutine %d message %d", &g, &m)
		require.NoError(t, err, "spliced or malformed line: %q", line)
		seen[line] = true
	}
	assert.Len(t, seen, goroutines*messages, "every message should appear exactly once")
}
