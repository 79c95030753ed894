package display

import (
	"fmt"
	"io"

	"github.com/backmassage/bakesmith/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	if term.Enabled() {
		fmt.Fprint(w, term.Magenta)
	}
	fmt.Fprint(w, ` _           _                      _ _   _
| |__   __ _| | _____  ___ _ __ ___ (_) |_| |__
| '_ \ / _`+"`"+` | |/ / _ \/ __| '_ `+"`"+` _ \| | __| '_ \
| |_) | (_| |   <  __/\__ \ | | | | | | |_| | | |
|_.__/ \__,_|_|\_\___||___/_| |_| |_|_|\__|_| |_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
