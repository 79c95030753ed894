package naming

import (
	"slices"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/backmassage/bakesmith/internal/scene"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"underscore", "Rock_low", []string{"rock", "low"}},
		{"mixed separators", "Left Arm-high.001", []string{"left", "arm", "high", "001"}},
		{"repeated separators", "a__b", []string{"a", "b"}},
		{"leading and trailing", "_.Prop- ", []string{"prop"}},
		{"only separators", "_ .-", nil},
		{"empty", "", nil},
		{"camel case kept whole", "RockLow", []string{"rocklow"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.in)
			if !slices.Equal(got, tc.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func genRawName() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf(
		"Rock", "arm", "LOW", "high", "c", "007", "_", "__", " ", ".", "-", "..",
	)).Map(func(parts []string) string {
		return strings.Join(parts, "")
	})
}

func TestTokenizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("no empty tokens", prop.ForAll(
		func(name string) bool {
			for _, tok := range Tokenize(name) {
				if tok == "" {
					return false
				}
			}
			return true
		},
		genRawName(),
	))

	properties.Property("idempotent over rejoin", prop.ForAll(
		func(name string) bool {
			first := Tokenize(name)
			return slices.Equal(first, Tokenize(strings.Join(first, "_")))
		},
		genRawName(),
	))

	properties.Property("repeated separators collapse", prop.ForAll(
		func(name string) bool {
			doubled := strings.NewReplacer("_", "__", ".", "..", "-", "--", " ", "  ").Replace(name)
			return slices.Equal(Tokenize(name), Tokenize(doubled))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestStripDuplicateSuffix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Cube.001", "Cube"},
		{"Rock_low.007", "Rock_low"},
		{".123", ""},
		{"Cube.01", "Cube.01"},     // two digits: not a duplicate suffix
		{"Cube.0001", "Cube.0001"}, // four digits: not a duplicate suffix
		{"Cube_001", "Cube_001"},
		{"Cube.00a", "Cube.00a"},
		{"abc", "abc"},
	}
	for _, tc := range cases {
		if got := StripDuplicateSuffix(tc.in); got != tc.want {
			t.Errorf("StripDuplicateSuffix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEffectiveBaseName(t *testing.T) {
	parent := &scene.Object{Name: "Helmet.002", Type: scene.TypeEmpty}
	child := &scene.Object{Name: "Visor_high", Type: scene.TypeMesh, Parent: parent, Collections: []string{"Props"}}
	grouped := &scene.Object{Name: "Strap_low", Type: scene.TypeMesh, Collections: []string{"Belt"}}
	multi := &scene.Object{Name: "Buckle_LP.003", Type: scene.TypeMesh, Collections: []string{"A", "B"}}

	cases := []struct {
		name      string
		obj       *scene.Object
		selection []*scene.Object
		want      string
	}{
		{"parent in selection", child, []*scene.Object{parent, child}, "helmet"},
		{"parent not selected falls to collection", child, []*scene.Object{child}, "props"},
		{"single collection", grouped, []*scene.Object{grouped}, "belt"},
		{"several collections use own name", multi, []*scene.Object{multi}, "buckle_lp"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EffectiveBaseName(tc.obj, tc.selection); got != tc.want {
				t.Errorf("EffectiveBaseName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStripKeywords(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trailing role", "Rock_low", "rock"},
		{"leading role", "high_Rock", "rock"},
		{"several leading", "lp_c_Rock", "rock"},
		{"stops at first keyword after content", "Left Arm Low", "left_arm"},
		{"drops words after role marker", "Left_L_Arm", "left"},
		{"only keywords", "low_cage", ""},
		{"no keywords", "Barrel Lid", "barrel_lid"},
		{"substring is not a keyword", "Lowland_hp", "lowland"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripKeywords(Tokenize(tc.in)); got != tc.want {
				t.Errorf("StripKeywords(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestLogicalName_SharedAcrossRoles(t *testing.T) {
	names := []string{"Rock_low", "Rock_high", "Rock_cage", "rock.float.001"}
	var sel []*scene.Object
	for _, n := range names {
		sel = append(sel, &scene.Object{Name: n, Type: scene.TypeMesh})
	}
	for _, o := range sel {
		if got := LogicalName(o, sel); got != "rock" {
			t.Errorf("LogicalName(%q) = %q, want %q", o.Name, got, "rock")
		}
	}
}

func TestKeywordSets(t *testing.T) {
	if !HighKeywords.Matches([]string{"prop", "hp"}) {
		t.Error("expected hp to match high keywords")
	}
	if LowKeywords.Matches([]string{"lowland"}) {
		t.Error("keyword matching must be exact, not substring")
	}
	for _, tok := range []string{"l", "h", "c", "f", "floater", "highpoly"} {
		if !IsKeyword(tok) {
			t.Errorf("IsKeyword(%q) = false", tok)
		}
	}
}

func TestTextureName(t *testing.T) {
	if got := TextureName("rock", "normal_tangent"); got != "rock_normal_tangent" {
		t.Errorf("TextureName = %q", got)
	}
	if !MatchesSet("rock_ao", "rock") {
		t.Error("rock_ao should match set rock")
	}
	if MatchesSet("rocky", "rock") {
		t.Error("rocky should not match set rock")
	}
}
