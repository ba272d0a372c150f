package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/schedule"
)

var small = layout.Config{Students: 5, Rows: 2, BenchCapacity: 2}

func reveal(classroom Classroom, times int) Classroom {
	for i := 0; i < times; i++ {
		classroom = Transition(classroom, RevealNext{})
	}

	return classroom
}

func TestNewClassroom(t *testing.T) {
	classroom := NewClassroom(small)

	assert.Empty(t, classroom.Revealed)
	assert.Equal(t, -1, classroom.View)
	assert.Len(t, classroom.Rounds, 5)
	assert.True(t, classroom.CanReveal())
	assert.False(t, classroom.CanGoPrev())
	assert.False(t, classroom.CanGoNext())

	_, ok := classroom.Current()
	assert.False(t, ok)
}

func TestRevealNext(t *testing.T) {
	classroom := reveal(NewClassroom(small), 2)

	assert.Equal(t, []int{0, 1}, classroom.Revealed)
	assert.Equal(t, 1, classroom.View)

	round, ok := classroom.Current()
	require.True(t, ok)
	assert.Equal(t, 1, round.Index)

	// Revealing past the end of the schedule does nothing.
	done := reveal(classroom, 10)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, done.Revealed)
	assert.False(t, done.CanReveal())
	assert.Equal(t, done, Transition(done, RevealNext{}))
}

func TestTransitionDoesNotMutate(t *testing.T) {
	before := reveal(NewClassroom(small), 2)
	before.Revealed = append(make([]int, 0, 10), before.Revealed...)

	after := Transition(before, RevealNext{})
	branch := Transition(before, RevealNext{})

	assert.Equal(t, []int{0, 1}, before.Revealed)
	assert.Equal(t, 1, before.View)
	assert.Equal(t, []int{0, 1, 2}, after.Revealed)
	assert.Equal(t, after.Revealed, branch.Revealed)
}

func TestViewing(t *testing.T) {
	classroom := reveal(NewClassroom(small), 3)

	classroom = Transition(classroom, ViewRound{Index: 0})
	assert.Equal(t, 0, classroom.View)
	assert.False(t, classroom.CanGoPrev())
	assert.True(t, classroom.CanGoNext())

	// The viewed round can never be one which is not revealed yet.
	assert.Equal(t, 0, Transition(classroom, ViewRound{Index: 3}).View)
	assert.Equal(t, 0, Transition(classroom, ViewRound{Index: -1}).View)
	assert.Equal(t, 0, Transition(classroom, ViewPrev{}).View)

	classroom = Transition(classroom, ViewNext{})
	classroom = Transition(classroom, ViewNext{})
	assert.Equal(t, 2, classroom.View)
	assert.Equal(t, 2, Transition(classroom, ViewNext{}).View)
	assert.Equal(t, 1, Transition(classroom, ViewPrev{}).View)

	// Viewing never reveals anything.
	assert.Equal(t, []int{0, 1, 2}, classroom.Revealed)
}

func TestUpdateConfigAndReset(t *testing.T) {
	classroom := reveal(NewClassroom(small), 3)

	updated := Transition(classroom, UpdateConfig{Config: layout.DefaultConfig})
	assert.Equal(t, layout.DefaultConfig, updated.Config)
	assert.Empty(t, updated.Revealed)
	assert.Equal(t, -1, updated.View)
	assert.Equal(t, schedule.Rounds(28), updated.Rounds)

	reset := Transition(classroom, ResetAll{})
	assert.Equal(t, small, reset.Config)
	assert.Empty(t, reset.Revealed)
	assert.Equal(t, schedule.Rounds(5), reset.Rounds)
}

func TestHydrate(t *testing.T) {
	cases := []struct {
		name     string
		revealed []int
		view     int
		want     []int
		wantView int
	}{
		{name: "intact", revealed: []int{0, 1, 2}, view: 1, want: []int{0, 1, 2}, wantView: 1},
		{name: "view ahead", revealed: []int{0, 1}, view: 4, want: []int{0, 1}, wantView: 1},
		{name: "gap", revealed: []int{0, 2, 3}, view: 0, want: []int{0}, wantView: 0},
		{name: "beyond schedule", revealed: []int{0, 1, 2, 3, 4, 5}, view: 5, want: []int{0, 1, 2, 3, 4}, wantView: 4},
		{name: "nothing", revealed: nil, view: 3, want: []int{}, wantView: -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			classroom := Hydrate(Classroom{Config: small, Revealed: c.revealed, View: c.view})

			assert.Equal(t, c.want, classroom.Revealed)
			assert.Equal(t, c.wantView, classroom.View)
			assert.Equal(t, schedule.Rounds(5), classroom.Rounds)
		})
	}
}

func TestDerivedViews(t *testing.T) {
	classroom := reveal(NewClassroom(small), 3)

	history := classroom.History()
	require.Len(t, history, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{history[0].Index, history[1].Index, history[2].Index})

	stats := classroom.Coverage()
	assert.Equal(t, 6, stats.Paired)
	assert.Equal(t, 10, stats.Total)
}
