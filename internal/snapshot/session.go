package snapshot

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/backmassage/bakesmith/internal/host"
	"github.com/backmassage/bakesmith/internal/scene"
)

// DefaultMarker is prefixed to material names while they are backed up.
const DefaultMarker = "backup_"

// Logger is the minimal logging interface a Session needs.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// SlotSnapshot is the captured state of one material slot.
type SlotSnapshot struct {
	Material *scene.Material // nil for an empty slot
	Faces    []int           // ascending indices of faces assigned to the slot
}

type entry struct {
	obj   *scene.Object
	slots []SlotSnapshot
}

// Session maps objects to their material snapshots for one bake run.
type Session struct {
	id      string
	editor  host.Editor
	log     Logger
	verbose bool
	marker  string

	order   []*scene.Object
	entries map[*scene.Object]*entry
}

// Option configures a Session.
type Option func(*Session)

// WithEditor sets the editor used to enter and leave edit mode around face
// access. By default the object's mode flag is switched directly.
func WithEditor(e host.Editor) Option { return func(s *Session) { s.editor = e } }

// WithLogger routes conflict warnings and debug traces to l.
func WithLogger(l Logger, verbose bool) Option {
	return func(s *Session) {
		s.log = l
		s.verbose = verbose
	}
}

// WithMarker overrides the material name marker.
func WithMarker(marker string) Option { return func(s *Session) { s.marker = marker } }

// NewSession returns an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		editor:  modeFlagEditor{},
		log:     nopLogger{},
		marker:  DefaultMarker,
		entries: make(map[*scene.Object]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Len returns the number of objects with a live snapshot.
func (s *Session) Len() int { return len(s.entries) }

// Has reports whether obj has a live snapshot.
func (s *Session) Has(obj *scene.Object) bool {
	_, ok := s.entries[obj]
	return ok
}

// Objects returns the snapshotted objects in first-backup order.
func (s *Session) Objects() []*scene.Object {
	out := make([]*scene.Object, len(s.order))
	copy(out, s.order)
	return out
}

// Snapshot returns a copy of the captured slots of obj.
func (s *Session) Snapshot(obj *scene.Object) ([]SlotSnapshot, bool) {
	e, ok := s.entries[obj]
	if !ok {
		return nil, false
	}
	out := make([]SlotSnapshot, len(e.slots))
	for i, sl := range e.slots {
		out[i] = SlotSnapshot{Material: sl.Material, Faces: append([]int(nil), sl.Faces...)}
	}
	return out, true
}

// Backup captures the material slots of obj and the faces assigned to
// each, then marks the captured materials. Objects without mesh data fail
// with ErrInvalidState. A second Backup of the same object replaces the
// first; the replacement is logged as ErrSnapshotConflict.
func (s *Session) Backup(obj *scene.Object) error {
	if obj == nil {
		return fmt.Errorf("backup: nil object: %w", ErrInvalidState)
	}
	if obj.Mesh == nil {
		return fmt.Errorf("backup %q: no mesh data: %w", obj.Name, ErrInvalidState)
	}

	if err := s.editor.EnterEditMode(obj); err != nil {
		return fmt.Errorf("backup %q: %w", obj.Name, err)
	}
	slots := capture(obj)
	if err := s.leaveEditMode(obj); err != nil {
		return fmt.Errorf("backup %q: %w", obj.Name, err)
	}

	if prev, ok := s.entries[obj]; ok {
		s.log.Warn("session %s: %v: %q (replacing unrestored snapshot)", s.id, ErrSnapshotConflict, obj.Name)
		s.unmark(prev)
	} else {
		s.order = append(s.order, obj)
	}
	e := &entry{obj: obj, slots: slots}
	s.entries[obj] = e
	s.mark(e)

	s.log.Debug(s.verbose, "session %s: stored %q (%d slots)", s.id, obj.Name, len(slots))
	return nil
}

// leaveEditMode exits edit mode, trying a second time before giving up.
// When both attempts fail the object is left in edit mode.
func (s *Session) leaveEditMode(obj *scene.Object) error {
	err := s.editor.ExitEditMode(obj)
	if err == nil {
		return nil
	}
	s.log.Warn("session %s: leave edit mode on %q: %v (retrying)", s.id, obj.Name, err)
	return s.editor.ExitEditMode(obj)
}

// capture records every slot's material and the faces using it. Faces
// whose index points past the slot list belong to no slot.
func capture(obj *scene.Object) []SlotSnapshot {
	slots := make([]SlotSnapshot, len(obj.Slots))
	for i, mat := range obj.Slots {
		slots[i].Material = mat
	}
	for fi, f := range obj.Mesh.Faces {
		if f.MaterialIndex >= 0 && f.MaterialIndex < len(slots) {
			slots[f.MaterialIndex].Faces = append(slots[f.MaterialIndex].Faces, fi)
		}
	}
	return slots
}

// RestoreAll restores every snapshotted object and empties the session.
// A failure on one object does not stop the others; all failures are
// returned together once the pass completes. An empty session is a no-op.
func (s *Session) RestoreAll() error {
	if len(s.entries) == 0 {
		return nil
	}
	var errs []error
	for _, obj := range s.order {
		if err := s.restore(s.entries[obj]); err != nil {
			errs = append(errs, err)
		}
	}
	s.order = nil
	s.entries = make(map[*scene.Object]*entry)
	return errors.Join(errs...)
}

// restore reinstates one snapshot. The slot list is resized to the
// captured count, so slots added during the bake are dropped and a
// snapshot with no slots leaves the object without materials.
func (s *Session) restore(e *entry) error {
	obj := e.obj
	s.unmark(e)

	if len(e.slots) == 0 {
		obj.Slots = nil
	} else {
		slots := make([]*scene.Material, len(e.slots))
		for i, sl := range e.slots {
			slots[i] = sl.Material
		}
		obj.Slots = slots
	}

	if obj.Mesh == nil {
		return fmt.Errorf("restore %q: mesh data removed: %w", obj.Name, ErrInvalidState)
	}
	if err := s.editor.EnterEditMode(obj); err != nil {
		return fmt.Errorf("restore %q: %w", obj.Name, err)
	}
	faceSlot := make(map[int]int)
	for si, sl := range e.slots {
		for _, fi := range sl.Faces {
			faceSlot[fi] = si
		}
	}
	for fi := range obj.Mesh.Faces {
		if si, ok := faceSlot[fi]; ok {
			obj.Mesh.Faces[fi].MaterialIndex = si
		}
	}
	if err := s.leaveEditMode(obj); err != nil {
		return fmt.Errorf("restore %q: %w", obj.Name, err)
	}

	s.log.Debug(s.verbose, "session %s: restored %q (%d slots)", s.id, obj.Name, len(e.slots))
	return nil
}

// Clear drops every snapshot without restoring slots or faces. Material
// name markers are removed.
func (s *Session) Clear() {
	for _, obj := range s.order {
		s.unmark(s.entries[obj])
	}
	s.order = nil
	s.entries = make(map[*scene.Object]*entry)
}

// distinctMaterials returns each captured material once, in slot order.
func (e *entry) distinctMaterials() []*scene.Material {
	seen := make(map[*scene.Material]bool)
	var out []*scene.Material
	for _, sl := range e.slots {
		if sl.Material != nil && !seen[sl.Material] {
			seen[sl.Material] = true
			out = append(out, sl.Material)
		}
	}
	return out
}

func (s *Session) mark(e *entry) {
	for _, m := range e.distinctMaterials() {
		m.Name = s.marker + m.Name
	}
}

func (s *Session) unmark(e *entry) {
	for _, m := range e.distinctMaterials() {
		m.Name = strings.TrimPrefix(m.Name, s.marker)
	}
}

// Pending returns the names of snapshotted objects, sorted.
func (s *Session) Pending() []string {
	names := make([]string, 0, len(s.order))
	for _, o := range s.order {
		names = append(names, o.Name)
	}
	sort.Strings(names)
	return names
}

type modeFlagEditor struct{}

func (modeFlagEditor) EnterEditMode(obj *scene.Object) error {
	obj.Mode = scene.ModeEdit
	return nil
}

func (modeFlagEditor) ExitEditMode(obj *scene.Object) error {
	obj.Mode = scene.ModeObject
	return nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Debug(bool, string, ...interface{}) {}
