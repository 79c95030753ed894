package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/role"
	"github.com/backmassage/bakesmith/internal/scene"
)

func objs(names ...string) []*scene.Object {
	out := make([]*scene.Object, 0, len(names))
	for _, n := range names {
		out = append(out, &scene.Object{Name: n, Type: scene.TypeMesh, Mesh: &scene.Mesh{UVLayers: 1}})
	}
	return out
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{0, "set", "0 sets"},
		{1, "set", "1 set"},
		{2, "object", "2 objects"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n, tt.noun); got != tt.want {
			t.Errorf("FormatCount(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
		}
	}
}

func TestFormatNames(t *testing.T) {
	tests := []struct {
		name string
		objs []*scene.Object
		max  int
		want string
	}{
		{"empty", nil, 3, "-"},
		{"under max", objs("A", "B"), 3, "A, B"},
		{"at max", objs("A", "B", "C"), 3, "A, B, C"},
		{"over max", objs("A", "B", "C", "D", "E"), 3, "A, B, C (+2 more)"},
		{"no limit", objs("A", "B", "C", "D"), 0, "A, B, C, D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNames(tt.objs, tt.max))
		})
	}
}

func TestFormatSet(t *testing.T) {
	ok := bakeset.New("rock", objs("Rock_low"), nil, objs("Rock_high"), nil)
	assert.Equal(t, "rock (low 1, cage 0, high 1, float 0)", FormatSetHeadline(ok))
	assert.Equal(t, "  high: Rock_high", FormatRoleLine(ok, role.High))
	assert.Equal(t, "  cage: -", FormatRoleLine(ok, role.Cage))

	bad := bakeset.New("lid", nil, nil, objs("Lid_high"), nil)
	assert.Equal(t, "lid (low 0, cage 0, high 1, float 0) [no_low_objects]", FormatSetHeadline(bad))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_.__/")
}
