// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled the variables are empty strings,
// making string concatenation a no-op.
package term

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/backmassage/bakesmith/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Orange  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// Configure resolves the color mode against stdout and sets the
// package-level ANSI variables. Call once during startup (from
// [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	set(resolve(mode, os.Stdout))
}

func set(enable bool) {
	if !enable {
		Red, Green, Yellow, Orange, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", "", ""
		return
	}
	Red = bold(termenv.ANSIBrightRed.Sequence(false))
	Green = bold(termenv.ANSIBrightGreen.Sequence(false))
	Yellow = bold(termenv.ANSIBrightYellow.Sequence(false))
	Orange = bold(termenv.ANSI256Color(208).Sequence(false))
	Blue = bold(termenv.ANSIBrightBlue.Sequence(false))
	Cyan = bold(termenv.ANSIBrightCyan.Sequence(false))
	Magenta = bold(termenv.ANSIBrightMagenta.Sequence(false))
	NC = termenv.CSI + termenv.ResetSeq + "m"
}

func bold(seq string) string {
	return termenv.CSI + termenv.BoldSeq + ";" + seq + "m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// resolve determines whether colors should be enabled based on the
// configured mode. In auto mode termenv decides from TTY detection, TERM,
// and NO_COLOR (https://no-color.org).
func resolve(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		out := termenv.NewOutput(w)
		return !out.EnvNoColor() && out.ColorProfile() != termenv.Ascii
	}
}
