package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmoret/gaps-notify/internal/grades"
)

// ErrCorrupt marks a snapshot file that exists but cannot be decoded. The
// store never overwrites a corrupt snapshot; the operator has to inspect it.
var ErrCorrupt = errors.New("snapshot is corrupt")

const snapshotFile = "grades.json"

// Store persists the last-known course list as a single JSON file inside a
// data directory.
type Store struct {
	path string
}

// New creates a Store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{path: filepath.Join(dataDir, snapshotFile)}, nil
}

// Path returns the snapshot file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the baseline course list. A missing or empty file means no
// baseline yet and is reported through the bool, not as an error.
func (s *Store) Load() ([]grades.Course, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	var courses []grades.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return courses, true, nil
}

// Save replaces the snapshot with the given course list in full.
func (s *Store) Save(courses []grades.Course) error {
	data, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
