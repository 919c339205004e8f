package clout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// UseColor controls whether output lines are decorated with ANSI colors.
type UseColor int

const (
	// ColorAuto uses color only when output goes to an interactive terminal.
	ColorAuto UseColor = iota

	// ColorAlways uses color even when output is piped or redirected.
	ColorAlways

	// ColorNever disables color entirely.
	ColorNever
)

// ParseUseColor converts a flag or environment value into a UseColor.
// Accepted values are "auto", "always", and "never" (case-insensitive).
func ParseUseColor(s string) (UseColor, error) {
	switch strings.ToLower(s) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (must be auto, always, or never)", s)
}

// String returns the flag value for the color mode.
func (u UseColor) String() string {
	switch u {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// isTerminal reports whether w is an interactive terminal. It is a
// variable so tests can stub terminal detection.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// resolve decides whether color should be emitted for the given
// destination. Auto honors NO_COLOR (https://no-color.org/) and then
// probes the destination; anything that cannot be identified as an
// interactive terminal degrades to no color.
func (u UseColor) resolve(w io.Writer) bool {
	switch u {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, exists := os.LookupEnv("NO_COLOR"); exists {
			return false
		}
		return isTerminal(w)
	}
}
