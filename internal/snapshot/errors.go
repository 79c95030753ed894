package snapshot

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrInvalidState is returned when an object lacks the data an
	// operation needs, e.g. Backup on an object without mesh data.
	ErrInvalidState = errors.New("invalid object state")

	// ErrSnapshotConflict is logged, never returned, when Backup replaces
	// an unrestored snapshot of the same object.
	ErrSnapshotConflict = errors.New("snapshot already exists for object")
)
