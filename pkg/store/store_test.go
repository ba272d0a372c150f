package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/roster"
	"laptudirm.com/x/deskmate/pkg/state"
)

func progress() state.Classroom {
	classroom := state.NewClassroom(layout.Config{Students: 6, Rows: 2, BenchCapacity: 2})
	classroom = state.Transition(classroom, state.RevealNext{})
	classroom = state.Transition(classroom, state.RevealNext{})
	return state.Transition(classroom, state.ViewRound{Index: 0})
}

func class() roster.Roster {
	height := 152
	return roster.Roster{
		1: {LastName: "Martin", FirstName: "Léa", HeightCm: &height, Gender: roster.Female},
		2: {FirstName: "Hugo"},
	}
}

func testStore(t *testing.T, store Store) {
	t.Helper()

	_, err := store.LoadClassroom()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadProjects()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadRoster()
	assert.ErrorIs(t, err, ErrNotFound)

	saved := progress()
	require.NoError(t, store.SaveClassroom(saved))

	loaded, err := store.LoadClassroom()
	require.NoError(t, err)
	assert.Equal(t, saved.Config, loaded.Config)
	assert.Equal(t, []int{0, 1}, loaded.Revealed)
	assert.Equal(t, 0, loaded.View)
	assert.Empty(t, loaded.Rounds)

	projects := state.TransitionProjects(state.Projects{}, state.AddProject{
		Course: "CS 101", Name: "Robots", Students: 9, TeamSize: 3,
	})
	projects = state.TransitionProjects(projects, state.RevealProject{ID: projects.Active})
	require.NoError(t, store.SaveProjects(projects))

	loadedProjects, err := store.LoadProjects()
	require.NoError(t, err)
	assert.Equal(t, projects.Active, loadedProjects.Active)
	require.Len(t, loadedProjects.Projects, 1)
	assert.Equal(t, "CS 101", loadedProjects.Projects[0].Course)
	assert.Equal(t, []int{0}, loadedProjects.Projects[0].Revealed)
	assert.Empty(t, loadedProjects.Projects[0].Rounds)

	require.NoError(t, store.SaveRoster(class()))
	students, err := store.LoadRoster()
	require.NoError(t, err)
	assert.Equal(t, class(), students)

	require.NoError(t, store.Clear())
	_, err = store.LoadClassroom()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadProjects()
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.LoadRoster()
	assert.ErrorIs(t, err, ErrNotFound)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}

func TestFile(t *testing.T) {
	testStore(t, NewFile(filepath.Join(t.TempDir(), "nested", "deskmate")))
}

func TestMemory(t *testing.T) {
	testStore(t, &Memory{})
}

func TestFileCorrupt(t *testing.T) {
	store := NewFile(t.TempDir())
	require.NoError(t, os.WriteFile(store.path(classroomFile), []byte("config: [unclosed"), FilePermissions))

	_, err := store.LoadClassroom()
	assert.ErrorIs(t, err, ErrNotFound)

	// A corrupt file is simply replaced by the next save.
	require.NoError(t, store.SaveClassroom(progress()))
	_, err = store.LoadClassroom()
	assert.NoError(t, err)
}

func TestFileDefaultDirectory(t *testing.T) {
	assert.Equal(t, Directory, NewFile("").Dir)
}

func TestMemoryIsolation(t *testing.T) {
	store := &Memory{}

	saved := progress()
	require.NoError(t, store.SaveClassroom(saved))
	saved.Revealed[0] = 5

	loaded, err := store.LoadClassroom()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, loaded.Revealed)

	students := class()
	require.NoError(t, store.SaveRoster(students))
	*students[1].HeightCm = 200

	loadedStudents, err := store.LoadRoster()
	require.NoError(t, err)
	assert.Equal(t, 152, *loadedStudents[1].HeightCm)
}
