package bakeset

import (
	"github.com/backmassage/bakesmith/internal/naming"
	"github.com/backmassage/bakesmith/internal/scene"
)

// Members returns the low, high and cage objects of all sets, each once,
// in set order. Floaters are not members.
func Members(sets []*BakeSet) []*scene.Object {
	seen := make(map[*scene.Object]bool)
	var out []*scene.Object
	add := func(objs []*scene.Object) {
		for _, o := range objs {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	for _, s := range sets {
		add(s.Low)
		add(s.High)
		add(s.Cage)
	}
	return out
}

// BakedImages returns the image names that belong to any of sets, grouped
// by set. An image matching two sets is listed under both.
func BakedImages(sets []*BakeSet, images []string) []string {
	var out []string
	for _, s := range sets {
		for _, img := range images {
			if naming.MatchesSet(img, s.Name) {
				out = append(out, img)
			}
		}
	}
	return out
}

// Summary counts sets and objects for reporting.
type Summary struct {
	Sets       int
	WithIssues int
	Objects    int
	ByIssue    map[IssueCode]int
}

// Summarize tallies sets.
func Summarize(sets []*BakeSet) Summary {
	sum := Summary{Sets: len(sets), ByIssue: make(map[IssueCode]int)}
	for _, s := range sets {
		sum.Objects += s.Len()
		if s.HasIssues {
			sum.WithIssues++
			sum.ByIssue[s.Issue]++
		}
	}
	return sum
}
