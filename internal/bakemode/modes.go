// Package bakemode describes the bake modes a bake driver can run and the
// per-mode requirements that depend on bake-set structure.
package bakemode

import (
	"errors"
	"fmt"
	"sort"

	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/naming"
)

// Type is the render pass a mode bakes.
type Type string

const (
	TypeEmit    Type = "EMIT"
	TypeNormal  Type = "NORMAL"
	TypeAO      Type = "AO"
	TypeDiffuse Type = "DIFFUSE"
)

// VertexColor names the vertex-color preparation a mode needs on the
// source objects before baking, or "" for none.
type VertexColor string

const (
	VertexColorNone       VertexColor = ""
	VertexColorSelection  VertexColor = "selection"
	VertexColorDirty      VertexColor = "dirty"
	VertexColorIDMaterial VertexColor = "id_material"
	VertexColorIDElement  VertexColor = "id_element"
)

// Mode describes one bake mode.
type Mode struct {
	Name        string
	Type        Type
	NormalSpace string // "TANGENT" or "OBJECT"; NORMAL bakes only
	VertexColor VertexColor
	Background  [4]float64 // RGBA fill for texels outside every island
	Engine      string
	UseProject  bool // bake from high poly sources onto the low poly target
}

var defaultBackground = [4]float64{0.23, 0.23, 0.23, 1}

var registry = map[string]Mode{
	"normal_tangent": {Name: "normal_tangent", Type: TypeNormal, NormalSpace: "TANGENT", Background: [4]float64{0.5, 0.5, 1, 1}, Engine: "CYCLES", UseProject: true},
	"normal_object":  {Name: "normal_object", Type: TypeNormal, NormalSpace: "OBJECT", Background: [4]float64{0, 0, 0, 1}, Engine: "CYCLES", UseProject: true},
	"ao":             {Name: "ao", Type: TypeAO, Background: [4]float64{1, 1, 1, 1}, Engine: "CYCLES"},
	"diffuse":        {Name: "diffuse", Type: TypeDiffuse, Background: defaultBackground, Engine: "CYCLES", UseProject: true},
	"selection":      {Name: "selection", Type: TypeEmit, VertexColor: VertexColorSelection, Background: [4]float64{0, 0, 0, 1}, Engine: "CYCLES", UseProject: true},
	"dust":           {Name: "dust", Type: TypeEmit, VertexColor: VertexColorDirty, Background: [4]float64{0, 0, 0, 1}, Engine: "CYCLES"},
	"id_material":    {Name: "id_material", Type: TypeEmit, VertexColor: VertexColorIDMaterial, Background: defaultBackground, Engine: "CYCLES", UseProject: true},
	"id_element":     {Name: "id_element", Type: TypeEmit, VertexColor: VertexColorIDElement, Background: defaultBackground, Engine: "CYCLES", UseProject: true},
}

// ErrUnknownMode is returned by Lookup for names not in the registry.
var ErrUnknownMode = errors.New("unknown bake mode")

// ErrNeedsHighPoly is returned by CheckSet when a projected mode meets a
// set without high poly sources.
var ErrNeedsHighPoly = errors.New("projected bake needs high poly objects")

// Lookup returns the mode called name.
func Lookup(name string) (Mode, error) {
	m, ok := registry[name]
	if !ok {
		return Mode{}, fmt.Errorf("%w %q", ErrUnknownMode, name)
	}
	return m, nil
}

// Names returns every registered mode name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TextureName is the image the mode writes for set.
func (m Mode) TextureName(set *bakeset.BakeSet) string {
	return naming.TextureName(set.Name, m.Name)
}

// CheckSet reports whether the mode can run on set. Structural issues of
// the set itself are reported separately through its issue code.
func (m Mode) CheckSet(set *bakeset.BakeSet) error {
	if m.UseProject && len(set.High) == 0 {
		return fmt.Errorf("%s on set %q: %w", m.Name, set.Name, ErrNeedsHighPoly)
	}
	return nil
}
