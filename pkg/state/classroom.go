// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package state holds the progress of a class through its schedules as
// immutable values, changed only by applying actions to them.
package state

import (
	"slices"

	"laptudirm.com/x/deskmate/pkg/coverage"
	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/schedule"
)

// Classroom is the progress of a class through its pair schedule.
type Classroom struct {
	Config layout.Config `yaml:"config"`

	// Revealed is the prefix of the schedule's rounds revealed so far.
	Revealed []int `yaml:"revealed"`

	// View is the revealed round currently being looked at, or -1.
	View int `yaml:"view"`

	// Rounds is the full schedule. It is a pure function of the
	// configuration, so it is regenerated instead of being stored.
	Rounds []schedule.Round `yaml:"-"`
}

// NewClassroom returns a classroom with nothing revealed yet.
func NewClassroom(config layout.Config) Classroom {
	return Classroom{
		Config:   config,
		Revealed: []int{},
		View:     -1,
		Rounds:   schedule.Rounds(config.Students),
	}
}

// Hydrate rebuilds the schedule of a stored classroom, and drops whatever
// progress does not fit it.
func Hydrate(saved Classroom) Classroom {
	classroom := NewClassroom(saved.Config)
	classroom.Revealed = validPrefix(saved.Revealed, len(classroom.Rounds))
	classroom.View = clampView(saved.View, len(classroom.Revealed))
	return classroom
}

// Action is a change to a Classroom.
type Action interface {
	action()
}

type (
	// RevealNext reveals the next round of the schedule and views it.
	RevealNext struct{}

	// ViewRound views an already revealed round.
	ViewRound struct{ Index int }

	// ViewPrev views the previous revealed round.
	ViewPrev struct{}

	// ViewNext views the next revealed round.
	ViewNext struct{}

	// UpdateConfig replaces the configuration and starts over.
	UpdateConfig struct{ Config layout.Config }

	// ResetAll starts over with the same configuration.
	ResetAll struct{}
)

func (RevealNext) action()   {}
func (ViewRound) action()    {}
func (ViewPrev) action()     {}
func (ViewNext) action()     {}
func (UpdateConfig) action() {}
func (ResetAll) action()     {}

// Transition returns the classroom after applying the action to it. The
// given classroom is never modified.
func Transition(classroom Classroom, action Action) Classroom {
	switch action := action.(type) {
	case RevealNext:
		next := len(classroom.Revealed)
		if next >= len(classroom.Rounds) {
			return classroom
		}

		classroom.Revealed = append(slices.Clip(classroom.Revealed), next)
		classroom.View = next

	case ViewRound:
		if action.Index >= 0 && action.Index < len(classroom.Revealed) {
			classroom.View = action.Index
		}

	case ViewPrev:
		if classroom.CanGoPrev() {
			classroom.View--
		}

	case ViewNext:
		if classroom.CanGoNext() {
			classroom.View++
		}

	case UpdateConfig:
		return NewClassroom(action.Config)

	case ResetAll:
		return NewClassroom(classroom.Config)
	}

	return classroom
}

// Current returns the round being viewed, if any.
func (classroom Classroom) Current() (schedule.Round, bool) {
	if classroom.View < 0 || classroom.View >= len(classroom.Rounds) {
		return schedule.Round{}, false
	}

	return classroom.Rounds[classroom.View], true
}

// CanReveal reports whether there are rounds left to reveal.
func (classroom Classroom) CanReveal() bool {
	return len(classroom.Revealed) < len(classroom.Rounds)
}

// CanGoPrev reports whether there is a revealed round before the viewed one.
func (classroom Classroom) CanGoPrev() bool {
	return classroom.View > 0
}

// CanGoNext reports whether there is a revealed round after the viewed one.
func (classroom Classroom) CanGoNext() bool {
	return classroom.View < len(classroom.Revealed)-1
}

// Coverage returns which students have sat together in the revealed rounds.
func (classroom Classroom) Coverage() coverage.Stats {
	return coverage.Compute(classroom.Config.Students, classroom.Rounds, classroom.Revealed)
}

// History returns the revealed rounds, latest first.
func (classroom Classroom) History() []schedule.Round {
	return history(classroom.Rounds, classroom.Revealed)
}

func history[R any](rounds []R, revealed []int) []R {
	list := make([]R, 0, len(revealed))
	for i := len(revealed) - 1; i >= 0; i-- {
		list = append(list, rounds[revealed[i]])
	}

	return list
}

// validPrefix returns the longest prefix of revealed which is exactly
// 0, 1, 2, ... and refers to one of the n rounds.
func validPrefix(revealed []int, n int) []int {
	prefix := make([]int, 0, len(revealed))
	for i, index := range revealed {
		if index != i || index >= n {
			break
		}

		prefix = append(prefix, index)
	}

	return prefix
}

func clampView(view, revealed int) int {
	if view < 0 || view >= revealed {
		return revealed - 1
	}

	return view
}
