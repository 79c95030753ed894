package scene

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML scene description from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse converts a YAML scene description into a linked Scene. Parents and
// materials are referenced by name; every slot naming the same material
// shares one *Material.
func Parse(data []byte) (*Scene, error) {
	var raw sceneFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse scene YAML: %w", err)
	}
	return buildScene(&raw)
}

// --- YAML wire types ---

type sceneFile struct {
	Objects []objectEntry `yaml:"objects"`
	Images  []string      `yaml:"images"`
}

type objectEntry struct {
	Name        string          `yaml:"name"`
	Type        string          `yaml:"type"`
	Parent      string          `yaml:"parent"`
	Collections []string        `yaml:"collections"`
	Selected    *bool           `yaml:"selected"`
	HideRender  bool            `yaml:"hide_render"`
	Modifiers   []modifierEntry `yaml:"modifiers"`
	Materials   []*string       `yaml:"materials"`
	Faces       []int           `yaml:"faces"`
	UVLayers    int             `yaml:"uv_layers"`
}

type modifierEntry struct {
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params"`
}

func buildScene(raw *sceneFile) (*Scene, error) {
	s := &Scene{Images: raw.Images}
	byName := make(map[string]*Object, len(raw.Objects))
	materials := make(map[string]*Material)

	for i, e := range raw.Objects {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("object %d: missing name", i)
		}
		if _, dup := byName[e.Name]; dup {
			return nil, fmt.Errorf("object %q: duplicate name", e.Name)
		}
		obj := &Object{
			Name:        e.Name,
			Type:        ObjectType(strings.ToLower(e.Type)),
			Collections: e.Collections,
			HideRender:  e.HideRender,
			Selected:    true,
			Mode:        ModeObject,
		}
		if obj.Type == "" {
			obj.Type = TypeMesh
		}
		if e.Selected != nil {
			obj.Selected = *e.Selected
		}
		for _, m := range e.Modifiers {
			obj.Modifiers = append(obj.Modifiers, Modifier{
				Kind:   ModifierKind(strings.ToLower(m.Kind)),
				Params: m.Params,
			})
		}
		for _, name := range e.Materials {
			if name == nil || *name == "" {
				obj.Slots = append(obj.Slots, nil)
				continue
			}
			mat, ok := materials[*name]
			if !ok {
				mat = &Material{Name: *name}
				materials[*name] = mat
			}
			obj.Slots = append(obj.Slots, mat)
		}
		if obj.Type == TypeMesh {
			obj.Mesh = &Mesh{UVLayers: e.UVLayers}
			for _, idx := range e.Faces {
				obj.Mesh.Faces = append(obj.Mesh.Faces, Face{MaterialIndex: idx})
			}
		} else if len(e.Faces) > 0 {
			return nil, fmt.Errorf("object %q: faces given for non-mesh type %q", e.Name, obj.Type)
		}
		byName[e.Name] = obj
		s.Objects = append(s.Objects, obj)
	}

	// Parents may be declared after their children.
	for i, e := range raw.Objects {
		if e.Parent == "" {
			continue
		}
		parent, ok := byName[e.Parent]
		if !ok {
			return nil, fmt.Errorf("object %q: unknown parent %q", e.Name, e.Parent)
		}
		if parent == s.Objects[i] {
			return nil, fmt.Errorf("object %q: parented to itself", e.Name)
		}
		s.Objects[i].Parent = parent
	}
	return s, nil
}
