package clout

import "github.com/fatih/color"

// Level is the importance of a message. It is also used as the
// visibility floor: a message is shown when its level is at least as
// severe as the configured floor.
type Level int

// The six message levels, most severe first.
const (
	// LevelError is for messages indicating that an operation cannot proceed.
	LevelError Level = iota

	// LevelWarn is for messages indicating that an operation will proceed
	// but may not do what the user wanted.
	LevelWarn

	// LevelStatus is for the usual messages that indicate what an operation
	// is doing. Most user-facing output belongs here; it is the default
	// visibility floor.
	LevelStatus

	// LevelInfo is for messages that the user might find useful but are
	// not essential.
	LevelInfo

	// LevelDebug is for messages that are useful for the developer, or
	// when submitting bug reports, but are not useful for general use.
	LevelDebug

	// LevelTrace is for messages that indicate at a low level what an
	// operation is doing. Usually too noisy even for a bug report.
	LevelTrace
)

// levelNone is the floor installed for silent mode: no level passes it.
const levelNone Level = -1

// Visible reports whether a message at level candidate passes the
// visibility floor.
func Visible(candidate, floor Level) bool {
	return candidate <= floor
}

// String returns the lowercase tag for the level, as used in output lines.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelStatus:
		return "status"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "none"
	}
}

// forced returns a color that emits ANSI sequences unconditionally.
// Whether color is used at all is decided by the resolved state, not by
// fatih/color's own terminal detection.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// palette maps each level to its output color. Status messages are
// ordinary output and stay undecorated.
var palette = map[Level]*color.Color{
	LevelError: forced(color.FgRed, color.Bold),
	LevelWarn:  forced(color.FgYellow, color.Bold),
	LevelInfo:  forced(color.FgWhite),
	LevelDebug: forced(color.FgCyan),
	LevelTrace: forced(color.FgMagenta),
}
