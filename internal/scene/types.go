package scene

// ObjectType is the host datablock type of an object.
type ObjectType string

const (
	TypeMesh  ObjectType = "mesh"
	TypeEmpty ObjectType = "empty"
	TypeCurve ObjectType = "curve"
)

// ModifierKind identifies a modifier in an object's stack.
type ModifierKind string

const (
	ModifierSubsurf ModifierKind = "subsurf"
	ModifierBevel   ModifierKind = "bevel"
	ModifierMirror  ModifierKind = "mirror"
)

// Mode is the interaction mode an object is in. Face data is only written
// while an object is in edit mode.
type Mode string

const (
	ModeObject Mode = "object"
	ModeEdit   Mode = "edit"
)

// Modifier is one entry of a modifier stack: a kind plus its numeric
// parameters (e.g. "render_levels" for subsurf).
type Modifier struct {
	Kind   ModifierKind
	Params map[string]float64
}

// RenderLevels returns the render subdivision level of a subsurf modifier,
// or 0 when the parameter is absent.
func (m Modifier) RenderLevels() float64 {
	return m.Params["render_levels"]
}

// Material is a shared material datablock. Slots reference it by pointer, so
// renaming it is visible through every slot that holds it.
type Material struct {
	Name string
}

// Face is a mesh polygon; only its material slot assignment matters here.
type Face struct {
	MaterialIndex int
}

// Mesh holds the geometry data of a mesh object.
type Mesh struct {
	Faces    []Face
	UVLayers int
}

// Object is a scene object. Parent and Slots entries are shared references
// owned by the host scene.
type Object struct {
	Name        string
	Type        ObjectType
	Parent      *Object
	Collections []string
	Modifiers   []Modifier
	Slots       []*Material // nil entry = empty slot
	Mesh        *Mesh       // nil when the object carries no mesh data
	Selected    bool
	HideRender  bool
	Mode        Mode
}

// IsMesh reports whether the object is a mesh object.
func (o *Object) IsMesh() bool { return o != nil && o.Type == TypeMesh }

// UVLayerCount returns the number of UV layers, 0 without mesh data.
func (o *Object) UVLayerCount() int {
	if o == nil || o.Mesh == nil {
		return 0
	}
	return o.Mesh.UVLayers
}

// MaterialState is a comparable copy of an object's material assignment:
// slot material names (empty for an empty slot), the slot materials
// themselves, and per-face slot indices.
type MaterialState struct {
	Slots     []string
	Materials []*Material
	Faces     []int
}

// MaterialState captures the object's current material assignment.
func (o *Object) MaterialState() MaterialState {
	st := MaterialState{
		Slots:     make([]string, len(o.Slots)),
		Materials: append([]*Material(nil), o.Slots...),
	}
	for i, m := range o.Slots {
		if m != nil {
			st.Slots[i] = m.Name
		}
	}
	if o.Mesh != nil {
		st.Faces = make([]int, len(o.Mesh.Faces))
		for i, f := range o.Mesh.Faces {
			st.Faces[i] = f.MaterialIndex
		}
	}
	return st
}

// Equal reports whether two material states are identical. Slots must
// hold the same *Material, not just one with the same name.
func (s MaterialState) Equal(other MaterialState) bool {
	if len(s.Slots) != len(other.Slots) || len(s.Faces) != len(other.Faces) {
		return false
	}
	if len(s.Materials) != len(other.Materials) {
		return false
	}
	for i := range s.Slots {
		if s.Slots[i] != other.Slots[i] || s.Materials[i] != other.Materials[i] {
			return false
		}
	}
	for i := range s.Faces {
		if s.Faces[i] != other.Faces[i] {
			return false
		}
	}
	return true
}

// Scene is an ordered set of objects plus the image datablocks that exist
// alongside them.
type Scene struct {
	Objects []*Object
	Images  []string
	Source  string // path the scene was loaded from, if any
}

// Selection returns the selected objects in scene order.
func (s *Scene) Selection() []*Object {
	var sel []*Object
	for _, o := range s.Objects {
		if o.Selected {
			sel = append(sel, o)
		}
	}
	return sel
}

// Lookup returns the object named name, or nil.
func (s *Scene) Lookup(name string) *Object {
	for _, o := range s.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Select replaces the selection with the named objects. Names that do not
// exist are returned so the caller can report them.
func (s *Scene) Select(names []string) (missing []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	found := make(map[string]bool, len(names))
	for _, o := range s.Objects {
		o.Selected = want[o.Name]
		if o.Selected {
			found[o.Name] = true
		}
	}
	for _, n := range names {
		if !found[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

// Contains reports whether obj is one of objs (pointer identity).
func Contains(objs []*Object, obj *Object) bool {
	for _, o := range objs {
		if o == obj {
			return true
		}
	}
	return false
}
