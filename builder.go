package clout

import (
	"io"
	"os"
	"strconv"
)

// Builder configures clout. Obtain one from Init, chain the With
// methods in any order, then call Done to install the settings.
type Builder struct {
	verbose  int
	quiet    bool
	silent   bool
	useColor UseColor
	level    *Level

	// out is overridden in tests; normal use always targets stdout.
	out io.Writer
}

// newBuilder returns a Builder with the defaults: Status level, Auto color.
func newBuilder() *Builder {
	return &Builder{out: os.Stdout}
}

// WithVerbose sets the visibility floor from a verbosity count, for
// supporting flags like -v, -vv, and -vvv:
//
//	0 (the default) => Status
//	1               => Info
//	2               => Debug
//	3 or greater    => Trace
//
// Negative counts are treated as 0.
func (b *Builder) WithVerbose(verbose int) *Builder {
	b.verbose = verbose
	return b
}

// WithQuiet restricts output to errors only when quiet is true,
// regardless of any verbosity setting. Useful for supporting a -q flag.
func (b *Builder) WithQuiet(quiet bool) *Builder {
	b.quiet = quiet
	return b
}

// WithSilent disables all output, even errors, when silent is true.
// Silent takes precedence over every other knob. Useful for supporting
// a -s flag.
func (b *Builder) WithSilent(silent bool) *Builder {
	b.silent = silent
	return b
}

// WithLevel sets the visibility floor explicitly, replacing the
// Status-plus-verbosity ladder. Quiet and silent still take precedence.
func (b *Builder) WithLevel(level Level) *Builder {
	b.level = &level
	return b
}

// WithUseColor sets the color mode.
func (b *Builder) WithUseColor(useColor UseColor) *Builder {
	b.useColor = useColor
	return b
}

// FromEnv overlays settings from the environment: CLOUT_VERBOSE (an
// integer), CLOUT_QUIET and CLOUT_SILENT (booleans per
// strconv.ParseBool), and CLOUT_COLOR (auto, always, or never). Unset
// or malformed variables leave the current value untouched.
func (b *Builder) FromEnv() *Builder {
	if v := os.Getenv("CLOUT_VERBOSE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			b.verbose = n
		}
	}
	if v := os.Getenv("CLOUT_QUIET"); v != "" {
		if q, err := strconv.ParseBool(v); err == nil {
			b.quiet = q
		}
	}
	if v := os.Getenv("CLOUT_SILENT"); v != "" {
		if s, err := strconv.ParseBool(v); err == nil {
			b.silent = s
		}
	}
	if v := os.Getenv("CLOUT_COLOR"); v != "" {
		if mode, err := ParseUseColor(v); err == nil {
			b.useColor = mode
		}
	}
	return b
}

// resolve applies the precedence rules and produces the state that Done
// installs: silent beats quiet, quiet beats an explicit level, and an
// explicit level beats the verbosity ladder. The result depends only on
// the Builder's fields, never on the order the With methods were called.
//
// The color decision is computed even when silent, so that resolving
// the same Builder always yields the same state.
func (b *Builder) resolve() *clout {
	var floor Level
	switch {
	case b.silent:
		floor = levelNone
	case b.quiet:
		floor = LevelError
	case b.level != nil:
		floor = *b.level
	default:
		verbose := b.verbose
		if verbose < 0 {
			verbose = 0
		}
		floor = LevelStatus + Level(verbose)
		if floor > LevelTrace {
			floor = LevelTrace
		}
	}

	return &clout{
		floor: floor,
		color: b.useColor.resolve(b.out),
		out:   b.out,
	}
}
