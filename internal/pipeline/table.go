package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/bakesmith/internal/term"
)

// maxNameWidth caps the set and texture columns.
const maxNameWidth = 40

// printSetTable writes one row per set: name, role counts, texture and
// issue. Rows with issues are highlighted.
func printSetTable(w io.Writer, r Report) {
	nameW := len("Set")
	texW := len("Texture")
	issueW := len("Issue")
	const countW = len("Float")

	for _, s := range r.Sets {
		nameW = max(nameW, len(s.Name))
		texW = max(texW, len(s.Texture))
		issueW = max(issueW, len(s.Issue))
	}
	nameW = min(nameW, maxNameWidth)
	texW = min(texW, maxNameWidth)

	header := fmt.Sprintf("  %-*s  %*s  %*s  %*s  %*s  %-*s  %-*s",
		nameW, "Set",
		countW, "Low",
		countW, "Cage",
		countW, "High",
		countW, "Float",
		texW, "Texture",
		issueW, "Issue",
	)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "  "+strings.Repeat("─", len(header)-2))

	for _, s := range r.Sets {
		// Pad before coloring: %-*s counts escape bytes as width.
		fmt.Fprintf(w, "  %-*s  %*d  %*d  %*d  %*d  %-*s  %s\n",
			nameW, truncate(s.Name, nameW),
			countW, len(s.Low),
			countW, len(s.Cage),
			countW, len(s.High),
			countW, len(s.Float),
			texW, truncate(s.Texture, texW),
			colorPad(s.Issue, issueW),
		)
	}
	fmt.Fprintln(w)
}

// truncate shortens s to width bytes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

// colorPad pads a plain string to width, then wraps a non-empty issue in
// ANSI color.
func colorPad(s string, width int) string {
	padded := fmt.Sprintf("%-*s", width, s)
	if s == "" {
		return padded
	}
	return term.Orange + padded + term.NC
}

// issueTally formats per-issue counts, e.g. "no_low_objects 2, missing_uv_layer 1".
func issueTally(order []string, counts map[string]int) string {
	parts := make([]string, 0, len(order))
	for _, code := range order {
		if n := counts[code]; n > 0 {
			parts = append(parts, code+" "+strconv.Itoa(n))
		}
	}
	return strings.Join(parts, ", ")
}
