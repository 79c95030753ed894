package snapshot

import "github.com/backmassage/bakesmith/internal/scene"

// Isolation records the objects hidden from render for a bake so exactly
// those can be shown again afterwards.
type Isolation struct {
	hidden []*scene.Object
}

// Isolate hides from render every object in objects that is currently
// renderable and not one of members.
func Isolate(objects, members []*scene.Object) *Isolation {
	iso := &Isolation{}
	for _, o := range objects {
		if o.HideRender || scene.Contains(members, o) {
			continue
		}
		o.HideRender = true
		iso.hidden = append(iso.hidden, o)
	}
	return iso
}

// Hidden returns the objects Isolate hid.
func (i *Isolation) Hidden() []*scene.Object { return i.hidden }

// Restore makes the hidden objects renderable again. Calling it twice is
// harmless.
func (i *Isolation) Restore() {
	for _, o := range i.hidden {
		o.HideRender = false
	}
	i.hidden = nil
}
