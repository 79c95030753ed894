package bakeset

import "github.com/backmassage/bakesmith/internal/scene"

// New builds a BakeSet and validates it. The role slices are kept as given.
func New(name string, low, cage, high, float []*scene.Object) *BakeSet {
	s := &BakeSet{
		Name:  name,
		Low:   low,
		Cage:  cage,
		High:  high,
		Float: float,
	}
	s.Issues = Validate(s)
	if len(s.Issues) > 0 {
		s.HasIssues = true
		s.Issue = s.Issues[0]
	}
	return s
}

// Validate returns the structural issues of s in priority order:
// no low objects, cage count mismatch, missing UV layer on a low object.
func Validate(s *BakeSet) []IssueCode {
	var issues []IssueCode
	if len(s.Low) == 0 {
		issues = append(issues, IssueNoLowObjects)
	}
	if len(s.Cage) > 0 && len(s.Cage) != len(s.Low) {
		issues = append(issues, IssueCageCountMismatch)
	}
	for _, obj := range s.Low {
		if obj.UVLayerCount() == 0 {
			issues = append(issues, IssueMissingUVLayer)
			break
		}
	}
	return issues
}
