package grades

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for exercising Run.
type fakeStore struct {
	courses  []Course
	exists   bool
	loadErr  error
	saveErr  error
	saved    []Course
	saveSeen bool
}

func (s *fakeStore) Load() ([]Course, bool, error) {
	return s.courses, s.exists, s.loadErr
}

func (s *fakeStore) Save(courses []Course) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = courses
	s.saveSeen = true
	return nil
}

func TestRunFirstRunSuppressesChanges(t *testing.T) {
	store := &fakeStore{exists: false}
	fresh := []Course{
		{Name: "MAT1", Grades: []Entry{{Value: "5.5", Category: "cours"}}},
	}

	changes, err := Run(store, fresh)
	require.NoError(t, err)
	require.Empty(t, changes)
	require.True(t, store.saveSeen, "first run must still establish the baseline")
	require.Equal(t, fresh, store.saved)
}

func TestRunIsIdempotentAgainstUnchangedSource(t *testing.T) {
	fresh := []Course{
		{Name: "MAT1", Grades: []Entry{{Value: "5.5", Category: "cours"}, {Value: "4.0", Category: "laboratoire"}}},
	}
	store := &fakeStore{}

	_, err := Run(store, fresh)
	require.NoError(t, err)

	// Second run against the snapshot the first one wrote.
	store.courses = store.saved
	store.exists = true
	changes, err := Run(store, fresh)
	require.NoError(t, err)
	require.Empty(t, changes)
}

func TestRunReportsChangesAgainstBaseline(t *testing.T) {
	store := &fakeStore{
		exists: true,
		courses: []Course{
			{Name: "X", Grades: []Entry{{Value: "A", Category: "lab"}}},
		},
	}
	fresh := []Course{
		{Name: "X", Grades: []Entry{{Value: "A", Category: "lab"}, {Value: "A", Category: "lab"}}},
	}

	changes, err := Run(store, fresh)
	require.NoError(t, err)
	require.Equal(t, []Change{{Course: "X", Category: "lab", Grade: "A"}}, changes)
	require.Equal(t, fresh, store.saved, "snapshot must be fully replaced")
}

func TestRunAbortsOnUnreadableBaseline(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("unexpected end of JSON input")}

	changes, err := Run(store, []Course{{Name: "MAT1"}})
	require.Error(t, err)
	require.Nil(t, changes)
	require.False(t, store.saveSeen, "a corrupt baseline must not be overwritten")
}

func TestRunWriteFailureStillReturnsChanges(t *testing.T) {
	store := &fakeStore{
		exists:  true,
		courses: []Course{{Name: "X", Grades: []Entry{{Value: "4.0", Category: "cours"}}}},
		saveErr: errors.New("disk full"),
	}
	fresh := []Course{
		{Name: "X", Grades: []Entry{{Value: "4.0", Category: "cours"}, {Value: "5.0", Category: "cours"}}},
	}

	changes, err := Run(store, fresh)
	require.ErrorIs(t, err, ErrSnapshotWrite)
	require.Equal(t, []Change{{Course: "X", Category: "cours", Grade: "5.0"}}, changes)
}
