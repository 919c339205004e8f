package clout

import (
	"fmt"
	"io"
	"sync"
)

// clout is the installed output state. It is created by Done, owned by
// the package mutex until Shutdown releases it, and never mutated in
// between.
type clout struct {
	floor Level
	color bool
	out   io.Writer
}

// The single process-wide instance. The one mutex guards both the
// lifecycle transitions and the act of writing a line, so no emit can
// observe a half-installed state and no two lines can interleave.
var (
	mu     sync.Mutex
	global *clout
)

// Init starts a configuration session and returns a Builder with the
// defaults (Status level, Auto color). Nothing is installed until Done
// is called.
//
//	clout.Init().
//		WithVerbose(verbose).
//		WithQuiet(quiet).
//		Done()
func Init() *Builder {
	return newBuilder()
}

// Done resolves the configuration and installs it as the process-wide
// output state. If clout is already initialised, Done returns
// ErrAlreadyInitialized and leaves the existing state untouched.
func (b *Builder) Done() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return ErrAlreadyInitialized
	}
	global = b.resolve()
	return nil
}

// Shutdown releases the output state. It returns ErrNotInitialized if
// clout is not currently initialised. After a successful Shutdown,
// clout may be initialised again.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		return ErrNotInitialized
	}
	global = nil
	return nil
}

// Emit outputs a message at the given level if the level passes the
// configured visibility floor. Each emitted line is written as a single
// unit: output from concurrent callers never interleaves within a line,
// and lines from one goroutine appear in program order.
//
// Emit panics if clout has not been initialised. Leveled output before
// Done is a programming error, and silently dropping it would hide the
// bug.
func Emit(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if global == nil {
		panic("clout: attempt to output before initialising")
	}
	if !Visible(level, global.floor) {
		return
	}

	line := "[" + level.String() + "] " + fmt.Sprintf(format, args...)
	if c := palette[level]; global.color && c != nil {
		line = c.Sprint(line)
	}
	fmt.Fprintln(global.out, line)
}

// Errorf emits an error message.
func Errorf(format string, args ...any) {
	Emit(LevelError, format, args...)
}

// Warnf emits a warning message.
func Warnf(format string, args ...any) {
	Emit(LevelWarn, format, args...)
}

// Statusf emits a status message.
func Statusf(format string, args ...any) {
	Emit(LevelStatus, format, args...)
}

// Infof emits an info message.
func Infof(format string, args ...any) {
	Emit(LevelInfo, format, args...)
}

// Debugf emits a debug message.
func Debugf(format string, args ...any) {
	Emit(LevelDebug, format, args...)
}

// Tracef emits a trace message.
func Tracef(format string, args ...any) {
	Emit(LevelTrace, format, args...)
}
