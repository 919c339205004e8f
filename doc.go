// Package clout provides opinionated leveled output for command-line tools.
//
// Clout offers a logging-style API with a different focus: output is
// meant for the person running the tool, not for a log aggregator.
// There are no pluggable sinks or formatters, no structured output, and
// no file destinations. Messages always go to standard output, one line
// at a time, with optional ANSI color.
//
// # Levels
//
// Messages carry one of six levels, most severe first:
//
//	Error   the operation cannot proceed
//	Warn    the operation proceeds but may not do what the user wanted
//	Status  normal output describing what the operation is doing
//	Info    useful but non-essential detail
//	Debug   developer-facing detail, useful in bug reports
//	Trace   low-level detail, usually too noisy even for bug reports
//
// The extra Status level between Warn and Info exists because CLI tools
// conventionally offer three steps of verbosity (-v, -vv, -vvv), while
// traditional logging only provides two levels below Info.
//
// # Initialisation
//
// Clout must be initialised before any messages are output. Build a
// configuration and install it once, typically right after flag parsing:
//
//	err := clout.Init().
//		WithVerbose(verbose).
//		WithQuiet(quiet).
//		WithSilent(silent).
//		WithUseColor(clout.ColorAuto).
//		Done()
//
// Verbosity, quiet, and silent compose with fixed precedence: silent
// beats quiet, and quiet beats any verbosity. Emitting a message before
// Done, or after Shutdown, panics — that is a bug in the calling
// program, not a condition to tolerate.
//
// # Emitting messages
//
// One function per level, each with fmt.Printf semantics:
//
//	clout.Statusf("processing %d files", count)
//	clout.Debugf("cache hit for %s", key)
//
// Every visible message becomes exactly one line on stdout. Concurrent
// callers are safe; lines never interleave.
//
// # Color
//
// Color is decided once, at initialisation. ColorAuto enables it only
// when stdout is an interactive terminal and NO_COLOR is unset;
// ColorAlways and ColorNever override the detection in either
// direction.
//
// # Shutdown
//
// Shutdown releases the installed state. It is not strictly necessary
// at process exit, but allows re-initialisation (useful in tests).
package clout
