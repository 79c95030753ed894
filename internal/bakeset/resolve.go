package bakeset

import (
	"sort"
	"strings"

	"github.com/backmassage/bakesmith/internal/naming"
	"github.com/backmassage/bakesmith/internal/role"
	"github.com/backmassage/bakesmith/internal/scene"
)

// Assignment is the classification of one selected mesh.
type Assignment struct {
	Object  *scene.Object
	Role    role.Role
	Rule    string
	Logical string
}

// Classify assigns a role and logical name to every mesh in selection, in
// selection order. Non-mesh objects are skipped but still count as part of
// the selection for parent lookup and modifier inference. An object listed
// more than once is classified once.
func Classify(selection []*scene.Object) []Assignment {
	out := make([]Assignment, 0, len(selection))
	seen := make(map[*scene.Object]bool, len(selection))
	for _, obj := range selection {
		if !obj.IsMesh() || seen[obj] {
			continue
		}
		seen[obj] = true
		r, rule := role.ClassifyWithRule(obj, selection)
		out = append(out, Assignment{
			Object:  obj,
			Role:    r,
			Rule:    rule,
			Logical: naming.LogicalName(obj, selection),
		})
	}
	return out
}

// Resolve groups the meshes of selection into bake sets. Every mesh lands
// in exactly one set under exactly one role. Within a set each role list
// keeps selection order; sets are sorted by name, case-insensitively.
func Resolve(selection []*scene.Object) []*BakeSet {
	return Group(Classify(selection))
}

// Group clusters assignments by logical name. The first object seen for a
// name opens its cluster; later ones append to it.
func Group(assignments []Assignment) []*BakeSet {
	type cluster struct {
		name    string
		members []Assignment
	}
	var clusters []*cluster
	index := make(map[string]*cluster)

	for _, a := range assignments {
		c, ok := index[a.Logical]
		if !ok {
			c = &cluster{name: a.Logical}
			index[a.Logical] = c
			clusters = append(clusters, c)
		}
		c.members = append(c.members, a)
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return strings.ToLower(clusters[i].name) < strings.ToLower(clusters[j].name)
	})

	sets := make([]*BakeSet, 0, len(clusters))
	for _, c := range clusters {
		var low, cage, high, float []*scene.Object
		for _, a := range c.members {
			switch a.Role {
			case role.Low:
				low = append(low, a.Object)
			case role.Cage:
				cage = append(cage, a.Object)
			case role.High:
				high = append(high, a.Object)
			case role.Float:
				float = append(float, a.Object)
			}
		}
		sets = append(sets, New(c.name, low, cage, high, float))
	}
	return sets
}
