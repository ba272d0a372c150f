package export

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/deskmate/pkg/fov"
	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/roster"
	"laptudirm.com/x/deskmate/pkg/state"
)

var names = roster.Roster{
	1: {FirstName: "Ana"},
	2: {FirstName: "Ben"},
	3: {FirstName: "Cleo"},
	4: {FirstName: "Dan"},
	5: {FirstName: "Eva"},
	6: {FirstName: "Finn"},
}

func open(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func value(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()

	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestClassroom(t *testing.T) {
	config := layout.Config{Students: 4, Rows: 2, BenchCapacity: 2}
	classroom := state.Transition(state.NewClassroom(config), state.RevealNext{})

	round, ok := classroom.Current()
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, Classroom(&buf, classroom, names, fov.Arrange(round, config, nil, true)))

	f := open(t, &buf)
	assert.Equal(t, []string{RoundsSheet, CoverageSheet, SeatingSheet}, f.GetSheetList())

	assert.Equal(t, "Round", value(t, f, RoundsSheet, "A1"))
	assert.Equal(t, "Bench 2", value(t, f, RoundsSheet, "C1"))
	assert.Equal(t, "Alone", value(t, f, RoundsSheet, "D1"))
	assert.Equal(t, "1", value(t, f, RoundsSheet, "A2"))
	assert.Equal(t, "Ana & Ben", value(t, f, RoundsSheet, "B2"))
	assert.Equal(t, "Cleo & Dan", value(t, f, RoundsSheet, "C2"))
	assert.Equal(t, "", value(t, f, RoundsSheet, "D2"))

	assert.Equal(t, "Ana", value(t, f, CoverageSheet, "B1"))
	assert.Equal(t, "Ana", value(t, f, CoverageSheet, "A2"))
	assert.Equal(t, "-", value(t, f, CoverageSheet, "B2"))
	assert.Equal(t, "1", value(t, f, CoverageSheet, "C2"))
	assert.Equal(t, "1", value(t, f, CoverageSheet, "B3"))
	assert.Equal(t, "", value(t, f, CoverageSheet, "D2"))
	assert.Equal(t, "2", value(t, f, CoverageSheet, "B7"))
	assert.Equal(t, "6", value(t, f, CoverageSheet, "B8"))
	assert.Equal(t, "33.3%", value(t, f, CoverageSheet, "B9"))

	assert.Equal(t, "Round 1", value(t, f, SeatingSheet, "A1"))
	assert.Equal(t, "Row 1", value(t, f, SeatingSheet, "A2"))
	assert.Equal(t, "Row 2", value(t, f, SeatingSheet, "C2"))
	assert.Equal(t, "Ana", value(t, f, SeatingSheet, "A3"))
	assert.Equal(t, "Ben", value(t, f, SeatingSheet, "B3"))
	assert.Equal(t, "Cleo", value(t, f, SeatingSheet, "C3"))
	assert.Equal(t, "Dan", value(t, f, SeatingSheet, "D3"))
}

func TestClassroomScoredSeating(t *testing.T) {
	config := layout.Config{Students: 4, Rows: 1, BenchCapacity: 2}
	classroom := state.Transition(state.NewClassroom(config), state.RevealNext{})
	round, _ := classroom.Current()

	heights := fov.Heights{1: 150, 2: 150, 3: 160, 4: 160}

	var buf bytes.Buffer
	require.NoError(t, Classroom(&buf, classroom, names, fov.Arrange(round, config, heights, true)))

	f := open(t, &buf)
	assert.Equal(t, "Ana", value(t, f, SeatingSheet, "A3"))
	assert.Equal(t, "Cleo", value(t, f, SeatingSheet, "A4"))
	assert.Equal(t, "Average view", value(t, f, SeatingSheet, "A7"))
	assert.Equal(t, "100%", value(t, f, SeatingSheet, "B7"))

	style, err := f.GetCellStyle(SeatingSheet, "A3")
	require.NoError(t, err)
	assert.NotZero(t, style)
}

func TestClassroomNothingRevealed(t *testing.T) {
	classroom := state.NewClassroom(layout.DefaultConfig)

	var buf bytes.Buffer
	require.NoError(t, Classroom(&buf, classroom, roster.Roster{}, fov.Arrangement{}))

	f := open(t, &buf)
	assert.Equal(t, "No round has been revealed yet.", value(t, f, SeatingSheet, "A1"))
	assert.Equal(t, "Alone", value(t, f, RoundsSheet, "B1"))
	assert.Equal(t, "#1", value(t, f, CoverageSheet, "B1"))
}

func TestProject(t *testing.T) {
	projects := state.TransitionProjects(state.Projects{}, state.AddProject{
		Course: "CS 101", Name: "Robots", Students: 6, TeamSize: 3,
	})
	projects = state.TransitionProjects(projects, state.RevealProject{ID: projects.Active})

	project, err := projects.Current()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Project(&buf, project, names))

	f := open(t, &buf)
	assert.Equal(t, []string{TeamsSheet, CoverageSheet}, f.GetSheetList())

	assert.Equal(t, "Team 2", value(t, f, TeamsSheet, "C1"))
	assert.Equal(t, "1", value(t, f, TeamsSheet, "A2"))
	assert.Equal(t, "Ana, Ben, Cleo", value(t, f, TeamsSheet, "B2"))
	assert.Equal(t, "Dan, Eva, Finn", value(t, f, TeamsSheet, "C2"))

	assert.Equal(t, "6", value(t, f, CoverageSheet, "B9"))
	assert.Equal(t, "15", value(t, f, CoverageSheet, "B10"))
	assert.Equal(t, "40.0%", value(t, f, CoverageSheet, "B11"))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "class.xlsx")
	classroom := state.NewClassroom(layout.DefaultConfig)

	require.NoError(t, Save(path, func(w io.Writer) error {
		return Classroom(w, classroom, roster.Roster{}, fov.Arrangement{})
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{RoundsSheet, CoverageSheet, SeatingSheet}, f.GetSheetList())

	err = Save(filepath.Join(t.TempDir(), "missing", "class.xlsx"), func(w io.Writer) error { return nil })
	assert.ErrorContains(t, err, "export ")
}

func TestSaveFailureKeepsNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "class.xlsx")

	err := Save(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("PK"))
		return errors.New("disk full")
	})
	assert.ErrorContains(t, err, "disk full")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// An earlier export survives a failed one.
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	assert.Error(t, Save(path, func(w io.Writer) error { return errors.New("disk full") }))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}
