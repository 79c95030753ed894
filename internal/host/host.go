// Package host defines the editor services bake resolution calls into and
// an in-memory implementation of them.
//
// The editor owns mode switching and material datablocks. The same
// interfaces front a live editor bridge or the offline scene used by the
// CLI and tests.
package host

import (
	"errors"
	"fmt"
	"sync"

	"github.com/backmassage/bakesmith/internal/scene"
)

// Editor switches an object in and out of edit mode. Face slot indices are
// only read and written between EnterEditMode and ExitEditMode. When
// ExitEditMode fails the object may still be in edit mode; callers report
// the error and leave the mode to the user.
type Editor interface {
	EnterEditMode(obj *scene.Object) error
	ExitEditMode(obj *scene.Object) error
}

// Materials assigns bake materials to objects.
type Materials interface {
	// AssignBakeMaterial replaces every slot of obj with a single slot
	// holding the material called name, and moves all faces onto it.
	AssignBakeMaterial(obj *scene.Object, name string) error
}

// ErrHost is wrapped by every failure the Local host reports.
var ErrHost = errors.New("host operation failed")

// Local implements Editor and Materials over in-memory scene objects.
// Failures can be injected per object name to exercise error paths.
type Local struct {
	mu        sync.Mutex
	materials map[string]*scene.Material
	failures  map[string]string // object name → operation that fails
}

// NewLocal creates an in-memory host.
func NewLocal() *Local {
	return &Local{
		materials: make(map[string]*scene.Material),
		failures:  make(map[string]string),
	}
}

// Operation names accepted by FailOn.
const (
	OpEnterEdit = "enter_edit"
	OpExitEdit  = "exit_edit"
	OpAssign    = "assign"
)

// FailOn makes op fail for the object called name.
func (l *Local) FailOn(name, op string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[name] = op
}

func (l *Local) fail(obj *scene.Object, op string) error {
	if l.failures[obj.Name] == op {
		return fmt.Errorf("%s %q: %w", op, obj.Name, ErrHost)
	}
	return nil
}

// EnterEditMode puts obj into edit mode. Objects without mesh data cannot
// be edited.
func (l *Local) EnterEditMode(obj *scene.Object) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.fail(obj, OpEnterEdit); err != nil {
		return err
	}
	if obj.Mesh == nil {
		return fmt.Errorf("%s %q: no mesh data: %w", OpEnterEdit, obj.Name, ErrHost)
	}
	obj.Mode = scene.ModeEdit
	return nil
}

// ExitEditMode returns obj to object mode.
func (l *Local) ExitEditMode(obj *scene.Object) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.fail(obj, OpExitEdit); err != nil {
		return err
	}
	obj.Mode = scene.ModeObject
	return nil
}

// AssignBakeMaterial implements Materials. Materials are created on first
// use and shared by name afterwards.
func (l *Local) AssignBakeMaterial(obj *scene.Object, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.fail(obj, OpAssign); err != nil {
		return err
	}
	if obj.Mesh == nil {
		return fmt.Errorf("%s %q: no mesh data: %w", OpAssign, obj.Name, ErrHost)
	}
	mat, ok := l.materials[name]
	if !ok {
		mat = &scene.Material{Name: name}
		l.materials[name] = mat
	}
	obj.Slots = []*scene.Material{mat}
	for i := range obj.Mesh.Faces {
		obj.Mesh.Faces[i].MaterialIndex = 0
	}
	return nil
}

// Material returns the bake material created under name, or nil.
func (l *Local) Material(name string) *scene.Material {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.materials[name]
}
