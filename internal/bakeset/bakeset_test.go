package bakeset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/bakesmith/internal/scene"
)

func mesh(name string, uvLayers int) *scene.Object {
	return &scene.Object{Name: name, Type: scene.TypeMesh, Mesh: &scene.Mesh{UVLayers: uvLayers}}
}

func names(objs []*scene.Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.Name)
	}
	return out
}

// setView is a comparable projection of a BakeSet.
type setView struct {
	Name                   string
	Low, Cage, High, Float []string
	Issue                  IssueCode
}

func view(sets []*BakeSet) []setView {
	out := make([]setView, 0, len(sets))
	for _, s := range sets {
		out = append(out, setView{
			Name:  s.Name,
			Low:   names(s.Low),
			Cage:  names(s.Cage),
			High:  names(s.High),
			Float: names(s.Float),
			Issue: s.Issue,
		})
	}
	return out
}

func TestResolve_SingleSet(t *testing.T) {
	sel := []*scene.Object{mesh("Rock_low", 1), mesh("Rock_high", 0), mesh("Rock_cage", 0)}

	sets := Resolve(sel)
	require.Len(t, sets, 1)
	s := sets[0]
	assert.Equal(t, "rock", s.Name)
	assert.Len(t, s.Low, 1)
	assert.Len(t, s.High, 1)
	assert.Len(t, s.Cage, 1)
	assert.Empty(t, s.Float)
	assert.False(t, s.HasIssues)
	assert.Equal(t, IssueNone, s.Issue)
}

func TestResolve_OrderingAndStability(t *testing.T) {
	sel := []*scene.Object{
		mesh("B_low", 1),
		mesh("A_low", 1),
		mesh("A_high", 0),
		mesh("A_low.001", 1),
		mesh("A_high.001", 0),
	}

	want := []setView{
		{Name: "a", Low: []string{"A_low", "A_low.001"}, Cage: []string{}, High: []string{"A_high", "A_high.001"}, Float: []string{}},
		{Name: "b", Low: []string{"B_low"}, Cage: []string{}, High: []string{}, Float: []string{}},
	}
	if diff := cmp.Diff(want, view(Resolve(sel))); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_CaseInsensitiveSort(t *testing.T) {
	// Logical names are lowercase already; collection names keep the same key.
	a := mesh("x", 1)
	a.Collections = []string{"beta"}
	b := mesh("y", 1)
	b.Collections = []string{"Alpha"}
	c := mesh("z", 1)
	c.Collections = []string{"ALPHA"}

	sets := Resolve([]*scene.Object{a, b, c})
	require.Len(t, sets, 2)
	assert.Equal(t, "alpha", sets[0].Name)
	assert.Equal(t, []string{"y", "z"}, names(sets[0].Low))
	assert.Equal(t, "beta", sets[1].Name)
}

func TestResolve_EveryMeshExactlyOnce(t *testing.T) {
	parent := &scene.Object{Name: "Helmet", Type: scene.TypeEmpty}
	visorHigh := mesh("Visor_high", 0)
	visorHigh.Parent = parent
	shell := mesh("Shell", 1)
	shell.Parent = parent
	sel := []*scene.Object{
		parent,
		visorHigh,
		shell,
		mesh("Bolt_float", 0),
		mesh("Bolt_lp", 1),
		mesh("Strap", 1),
	}

	sets := Resolve(sel)
	seen := make(map[*scene.Object]int)
	for _, s := range sets {
		for _, objs := range [][]*scene.Object{s.Low, s.Cage, s.High, s.Float} {
			for _, o := range objs {
				seen[o]++
			}
		}
	}
	assert.NotContains(t, seen, parent, "non-mesh objects are not grouped")
	for _, o := range sel[1:] {
		assert.Equal(t, 1, seen[o], "object %s", o.Name)
	}

	// Children of a selected parent group under the parent's name and take
	// the parent's role markers (none here), so Visor_high is low.
	require.Equal(t, "bolt", sets[0].Name)
	require.Equal(t, "helmet", sets[1].Name)
	assert.Equal(t, []string{"Visor_high", "Shell"}, names(sets[1].Low))
	assert.True(t, sets[1].HasIssues)
	assert.Equal(t, IssueMissingUVLayer, sets[1].Issue)

	rock := mesh("Rock_low", 1)
	sets = Resolve([]*scene.Object{rock, rock})
	require.Len(t, sets, 1)
	assert.Equal(t, []*scene.Object{rock}, sets[0].Low, "repeated selection entry")
}

func TestNew_Validation(t *testing.T) {
	uv := func(n string) *scene.Object { return mesh(n, 1) }
	noUV := func(n string) *scene.Object { return mesh(n, 0) }
	objs := func(fs ...*scene.Object) []*scene.Object { return fs }

	cases := []struct {
		name       string
		low, cage  []*scene.Object
		wantIssue  IssueCode
		wantIssues []IssueCode
	}{
		{"valid", objs(uv("a")), nil, IssueNone, nil},
		{"valid with matching cage", objs(uv("a"), uv("b")), objs(uv("c1"), uv("c2")), IssueNone, nil},
		{"no low", nil, nil, IssueNoLowObjects, []IssueCode{IssueNoLowObjects}},
		{"cage mismatch", objs(uv("a"), uv("b"), uv("c")), objs(uv("c1"), uv("c2")), IssueCageCountMismatch, []IssueCode{IssueCageCountMismatch}},
		{"missing uv", objs(noUV("a")), nil, IssueMissingUVLayer, []IssueCode{IssueMissingUVLayer}},
		{"no mesh data counts as no uv", objs(&scene.Object{Name: "n", Type: scene.TypeMesh}), nil, IssueMissingUVLayer, []IssueCode{IssueMissingUVLayer}},
		{"no low and cage reports no low first", nil, objs(uv("c1")), IssueNoLowObjects, []IssueCode{IssueNoLowObjects, IssueCageCountMismatch}},
		{"mismatch before uv", objs(noUV("a")), objs(uv("c1"), uv("c2")), IssueCageCountMismatch, []IssueCode{IssueCageCountMismatch, IssueMissingUVLayer}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New("set", tc.low, tc.cage, nil, nil)
			assert.Equal(t, tc.wantIssue != IssueNone, s.HasIssues)
			assert.Equal(t, tc.wantIssue, s.Issue)
			assert.Equal(t, tc.wantIssues, s.Issues)
		})
	}
}

func TestIssueCode_Message(t *testing.T) {
	for _, c := range []IssueCode{IssueNoLowObjects, IssueCageCountMismatch, IssueMissingUVLayer} {
		assert.NotEmpty(t, c.Message(), string(c))
	}
	assert.Empty(t, IssueNone.Message())
}

func TestMembersAndImages(t *testing.T) {
	low := mesh("Rock_low", 1)
	high := mesh("Rock_high", 0)
	float := mesh("Rock_float", 0)
	lid := mesh("Lid", 1)
	sets := Resolve([]*scene.Object{low, high, float, lid})

	assert.Equal(t, []string{"Lid", "Rock_low", "Rock_high"}, names(Members(sets)))

	images := []string{"rock_normal_tangent", "lid_ao", "rocky_ao", "rock_ao"}
	assert.Equal(t, []string{"lid_ao", "rock_normal_tangent", "rock_ao"}, BakedImages(sets, images))

	sum := Summarize(sets)
	assert.Equal(t, 2, sum.Sets)
	assert.Equal(t, 4, sum.Objects)
	assert.Equal(t, 0, sum.WithIssues)
}
