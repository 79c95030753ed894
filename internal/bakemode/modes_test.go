package bakemode

import (
	"errors"
	"testing"

	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/scene"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		m, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if m.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, m.Name)
		}
	}
	if _, err := Lookup("lightmap"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Lookup(lightmap) error = %v, want ErrUnknownMode", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names not sorted: %v", names)
		}
	}
}

func TestCheckSet(t *testing.T) {
	low := &scene.Object{Name: "Rock_low", Type: scene.TypeMesh, Mesh: &scene.Mesh{UVLayers: 1}}
	high := &scene.Object{Name: "Rock_high", Type: scene.TypeMesh, Mesh: &scene.Mesh{}}
	lowOnly := bakeset.New("rock", []*scene.Object{low}, nil, nil, nil)
	full := bakeset.New("rock", []*scene.Object{low}, nil, []*scene.Object{high}, nil)

	normal, _ := Lookup("normal_tangent")
	ao, _ := Lookup("ao")

	if err := normal.CheckSet(lowOnly); !errors.Is(err, ErrNeedsHighPoly) {
		t.Errorf("normal on low-only set: err = %v, want ErrNeedsHighPoly", err)
	}
	if err := normal.CheckSet(full); err != nil {
		t.Errorf("normal on full set: %v", err)
	}
	if err := ao.CheckSet(lowOnly); err != nil {
		t.Errorf("ao on low-only set: %v", err)
	}
	if got := normal.TextureName(full); got != "rock_normal_tangent" {
		t.Errorf("TextureName = %q", got)
	}
}
