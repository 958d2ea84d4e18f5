package grades

import (
	"errors"
	"fmt"
)

// Store is the snapshot persistence the diff engine depends on.
type Store interface {
	// Load returns the baseline course list and whether a baseline existed.
	// A missing or empty snapshot is not an error.
	Load() (courses []Course, exists bool, err error)
	// Save replaces the snapshot with the given course list in full.
	Save(courses []Course) error
}

// ErrSnapshotWrite marks a snapshot persist failure that happened after the
// diff was already computed.
var ErrSnapshotWrite = errors.New("snapshot write failed")

// Run loads the baseline, diffs fresh against it, and unconditionally
// replaces the snapshot with the fresh data. When no baseline existed the
// changes are suppressed so a first run establishes state without flooding
// notifications. A failed write still returns the computed changes alongside
// an ErrSnapshotWrite-wrapped error: delivering the notification wins over
// guaranteeing the write, but the operator should see the drift.
func Run(store Store, fresh []Course) ([]Change, error) {
	previous, exists, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	var changes []Change
	if exists {
		changes = ChooseDiffer(fresh).Diff(previous, fresh)
	}

	if err := store.Save(fresh); err != nil {
		return changes, fmt.Errorf("%w: %v", ErrSnapshotWrite, err)
	}
	return changes, nil
}
