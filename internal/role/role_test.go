package role

import (
	"testing"

	"github.com/backmassage/bakesmith/internal/scene"
)

func mesh(name string, mods ...scene.Modifier) *scene.Object {
	return &scene.Object{Name: name, Type: scene.TypeMesh, Modifiers: mods, Mesh: &scene.Mesh{UVLayers: 1}}
}

func subsurf(levels float64) scene.Modifier {
	return scene.Modifier{Kind: scene.ModifierSubsurf, Params: map[string]float64{"render_levels": levels}}
}

func TestClassify_ByName(t *testing.T) {
	cases := []struct {
		name     string
		obj      string
		want     Role
		wantRule string
	}{
		{"high precedes cage", "Prop_high_cage", High, "high by name"},
		{"default low", "Prop", Low, DefaultRule},
		{"float precedes everything", "Debris_float_high", Float, "float by name"},
		{"explicit low", "Rock_lp", Low, "low by name"},
		{"cage", "Rock.cage", Cage, "cage by name"},
		{"single letter high", "Rock H", High, "high by name"},
		{"case insensitive", "ROCK_HIGHPOLY", High, "high by name"},
		{"substring does not match", "Highway_sign", Low, DefaultRule},
		{"duplicate suffix ignored", "Bolt_f.004", Float, "float by name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obj := mesh(tc.obj)
			got, rule := ClassifyWithRule(obj, []*scene.Object{obj})
			if got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.obj, got, tc.want)
			}
			if rule != tc.wantRule {
				t.Errorf("Classify(%q) rule = %q, want %q", tc.obj, rule, tc.wantRule)
			}
		})
	}
}

func TestClassify_ByModifier(t *testing.T) {
	bevel := scene.Modifier{Kind: scene.ModifierBevel}
	mirror := scene.Modifier{Kind: scene.ModifierMirror}
	other := mesh("Other")

	cases := []struct {
		name   string
		obj    *scene.Object
		others []*scene.Object
		want   Role
	}{
		{"subsurf in multi selection", mesh("Rock", subsurf(2)), []*scene.Object{other}, High},
		{"bevel in multi selection", mesh("Rock_low", bevel), []*scene.Object{other}, High},
		{"subsurf without render levels", mesh("Rock", subsurf(0)), []*scene.Object{other}, Low},
		{"fractional render levels", mesh("Rock", subsurf(0.5)), []*scene.Object{other}, High},
		{"unrelated modifier", mesh("Rock", mirror), []*scene.Object{other}, Low},
		{"single selection ignores modifiers", mesh("Rock", subsurf(2)), nil, Low},
		{"single selection keeps name role", mesh("Rock_cage", bevel), nil, Cage},
		{"float name beats modifier", mesh("Rock_float", bevel), []*scene.Object{other}, Float},
		{"modifier beats cage name", mesh("Rock_cage", bevel), []*scene.Object{other}, High},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := append([]*scene.Object{tc.obj}, tc.others...)
			if got := Classify(tc.obj, sel); got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.obj.Name, got, tc.want)
			}
		})
	}
}

func TestClassify_UsesParentName(t *testing.T) {
	parent := &scene.Object{Name: "Crate_high", Type: scene.TypeEmpty}
	child := mesh("Plank")
	child.Parent = parent

	if got := Classify(child, []*scene.Object{parent, child}); got != High {
		t.Errorf("child of selected high parent = %s, want high", got)
	}
	if got := Classify(child, []*scene.Object{child}); got != Low {
		t.Errorf("child of unselected parent = %s, want low", got)
	}
}

func TestParse(t *testing.T) {
	for _, r := range All {
		got, err := Parse(r.String())
		if err != nil || got != r {
			t.Errorf("Parse(%q) = %v, %v", r, got, err)
		}
	}
	if _, err := Parse("mid"); err == nil {
		t.Error("Parse(mid) should fail")
	}
}
