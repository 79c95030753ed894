// Package scene models the slice of the host editor's scene graph that bake
// resolution reads and the snapshot session mutates: objects, their parent and
// collection links, modifier stacks, material slots, and per-face slot indices.
//
// The host owns these values. Everything outside this package treats an
// *Object as an opaque identity and only touches the fields it documents.
//
// A scene can be described in YAML (see [Parse]) so the engine can run
// outside the editor for diagnostics and tests.
package scene
