// Package display formats bake sets and counts for the text report.
package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/role"
	"github.com/backmassage/bakesmith/internal/scene"
)

// MaxListed caps how many object names a role line shows.
const MaxListed = 6

// FormatCount returns "1 set", "3 sets", "0 sets".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatNames joins object names, truncating after max with a "+N more" tail.
// An empty list renders as "-".
func FormatNames(objs []*scene.Object, max int) string {
	if len(objs) == 0 {
		return "-"
	}
	n := len(objs)
	if max > 0 && n > max {
		n = max
	}
	parts := make([]string, 0, n+1)
	for _, o := range objs[:n] {
		parts = append(parts, o.Name)
	}
	s := strings.Join(parts, ", ")
	if rest := len(objs) - n; rest > 0 {
		s += fmt.Sprintf(" (+%d more)", rest)
	}
	return s
}

// FormatRoleCounts returns per-role counts in report order, e.g.
// "low 2, cage 0, high 1, float 0".
func FormatRoleCounts(set *bakeset.BakeSet) string {
	parts := make([]string, 0, len(role.All))
	for _, r := range role.All {
		parts = append(parts, fmt.Sprintf("%s %d", r, len(set.Objects(r))))
	}
	return strings.Join(parts, ", ")
}

// FormatSetHeadline is the one-line summary of a set.
func FormatSetHeadline(set *bakeset.BakeSet) string {
	line := fmt.Sprintf("%s (%s)", set.Name, FormatRoleCounts(set))
	if set.HasIssues {
		line += " [" + string(set.Issue) + "]"
	}
	return line
}

// FormatRoleLine lists the members of one role, e.g. "  high: Rock_high".
func FormatRoleLine(set *bakeset.BakeSet, r role.Role) string {
	return fmt.Sprintf("  %-5s %s", r.String()+":", FormatNames(set.Objects(r), MaxListed))
}
