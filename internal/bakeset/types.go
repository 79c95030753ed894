package bakeset

import (
	"github.com/backmassage/bakesmith/internal/role"
	"github.com/backmassage/bakesmith/internal/scene"
)

// IssueCode names a structural problem with a bake set. Issues are not
// fatal; they are reported and resolution continues.
type IssueCode string

const (
	IssueNone              IssueCode = ""
	IssueNoLowObjects      IssueCode = "no_low_objects"
	IssueCageCountMismatch IssueCode = "cage_count_mismatch"
	IssueMissingUVLayer    IssueCode = "missing_uv_layer"
)

// Message returns a user-facing description of the issue.
func (c IssueCode) Message() string {
	switch c {
	case IssueNoLowObjects:
		return "no low poly object to bake onto"
	case IssueCageCountMismatch:
		return "cage count does not match low poly count"
	case IssueMissingUVLayer:
		return "low poly object has no UV map"
	}
	return ""
}

// BakeSet is one texture-baking unit: the objects that share a logical
// name, partitioned by role in selection order. A BakeSet is computed once
// by [Resolve] or [New] and must not be modified; regroup to change it.
type BakeSet struct {
	Name  string
	Low   []*scene.Object
	Cage  []*scene.Object
	High  []*scene.Object
	Float []*scene.Object

	HasIssues bool
	Issue     IssueCode   // first issue in priority order
	Issues    []IssueCode // every issue found, priority order
}

// Objects returns the members holding role r.
func (s *BakeSet) Objects(r role.Role) []*scene.Object {
	switch r {
	case role.Low:
		return s.Low
	case role.Cage:
		return s.Cage
	case role.High:
		return s.High
	case role.Float:
		return s.Float
	}
	return nil
}

// Len returns the total number of objects in the set.
func (s *BakeSet) Len() int {
	return len(s.Low) + len(s.Cage) + len(s.High) + len(s.Float)
}
