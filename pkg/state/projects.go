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

package state

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/deskmate/pkg/coverage"
	"laptudirm.com/x/deskmate/pkg/internal/util"
	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/schedule"
)

// ErrNoProject is returned when a project can not be found.
var ErrNoProject = errors.New("no such project")

// Project is the progress of a class through a team schedule.
type Project struct {
	ID       uuid.UUID `yaml:"id"`
	Course   string    `yaml:"course"`
	Name     string    `yaml:"name"`
	Students int       `yaml:"students"`
	TeamSize int       `yaml:"team-size"`

	Revealed []int `yaml:"revealed"`
	View     int   `yaml:"view"`

	Rounds []schedule.TeamRound `yaml:"-"`
}

// Title returns the course and name of the project.
func (project Project) Title() string {
	return project.Course + " — " + project.Name
}

// Current returns the team round being viewed, if any.
func (project Project) Current() (schedule.TeamRound, bool) {
	if project.View < 0 || project.View >= len(project.Rounds) {
		return schedule.TeamRound{}, false
	}

	return project.Rounds[project.View], true
}

// CanReveal reports whether there are team rounds left to reveal.
func (project Project) CanReveal() bool {
	return len(project.Revealed) < len(project.Rounds)
}

// Coverage returns which students have shared a team in the revealed rounds.
func (project Project) Coverage() coverage.Stats {
	return coverage.Compute(project.Students, project.Rounds, project.Revealed)
}

// History returns the revealed team rounds, latest first.
func (project Project) History() []schedule.TeamRound {
	return history(project.Rounds, project.Revealed)
}

// Projects is every project of the class, and which one is being worked on.
type Projects struct {
	Projects []Project `yaml:"projects"`
	Active   uuid.UUID `yaml:"active"`
}

// clamp forces the size of the project into the supported bounds.
func (project Project) clamp() Project {
	project.Students = min(max(project.Students, layout.MinStudents), layout.MaxStudents)
	project.TeamSize = min(max(project.TeamSize, layout.MinTeamSize), layout.MaxTeamSize)
	return project
}

// HydrateProjects rebuilds the schedules of stored projects. Projects whose
// size is out of bounds are clamped into them.
func HydrateProjects(saved Projects) Projects {
	projects := Projects{
		Projects: make([]Project, len(saved.Projects)),
		Active:   saved.Active,
	}

	for i, project := range saved.Projects {
		if clamped := project.clamp(); clamped.Students != project.Students || clamped.TeamSize != project.TeamSize {
			logrus.WithFields(logrus.Fields{
				"project":   project.Title(),
				"students":  project.Students,
				"team-size": project.TeamSize,
			}).Warn("saved project is out of bounds, clamping it")
			project = clamped
		}

		project.Rounds = schedule.TeamRounds(project.Students, project.TeamSize)
		project.Revealed = validPrefix(project.Revealed, len(project.Rounds))
		project.View = clampView(project.View, len(project.Revealed))
		projects.Projects[i] = project
	}

	if _, err := projects.Find(projects.Active); err != nil {
		projects.Active = projects.first()
	}

	return projects
}

// Find returns the project with the given id.
func (projects Projects) Find(id uuid.UUID) (Project, error) {
	for _, project := range projects.Projects {
		if project.ID == id {
			return project, nil
		}
	}

	return Project{}, ErrNoProject
}

// Current returns the active project.
func (projects Projects) Current() (Project, error) {
	return projects.Find(projects.Active)
}

// Sorted returns the projects in the natural order of their titles.
func (projects Projects) Sorted() []Project {
	sorted := slices.Clone(projects.Projects)
	slices.SortStableFunc(sorted, func(a, b Project) int {
		x, y := strings.ToLower(a.Title()), strings.ToLower(b.Title())
		switch {
		case util.AlphanumLess(x, y):
			return -1
		case util.AlphanumLess(y, x):
			return +1
		default:
			return 0
		}
	})

	return sorted
}

func (projects Projects) first() uuid.UUID {
	if len(projects.Projects) == 0 {
		return uuid.Nil
	}

	return projects.Projects[0].ID
}

// ProjectAction is a change to Projects.
type ProjectAction interface {
	projectAction()
}

type (
	// AddProject adds a new project and makes it the active one.
	AddProject struct {
		ID       uuid.UUID // generated if uuid.Nil
		Course   string
		Name     string
		Students int
		TeamSize int
	}

	// RemoveProject removes a project. If it was active, the first
	// remaining project becomes active.
	RemoveProject struct{ ID uuid.UUID }

	// SelectProject makes a project the active one.
	SelectProject struct{ ID uuid.UUID }

	// RevealProject reveals the next team round of a project.
	RevealProject struct{ ID uuid.UUID }

	// ViewProjectRound views an already revealed team round of a project.
	ViewProjectRound struct {
		ID    uuid.UUID
		Index int
	}
)

func (AddProject) projectAction()       {}
func (RemoveProject) projectAction()    {}
func (SelectProject) projectAction()    {}
func (RevealProject) projectAction()    {}
func (ViewProjectRound) projectAction() {}

// TransitionProjects returns the projects after applying the action to them.
// The given projects are never modified.
func TransitionProjects(projects Projects, action ProjectAction) Projects {
	switch action := action.(type) {
	case AddProject:
		id := action.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		project := Project{
			ID:       id,
			Course:   strings.TrimSpace(action.Course),
			Name:     strings.TrimSpace(action.Name),
			Students: action.Students,
			TeamSize: action.TeamSize,
			Revealed: []int{},
			View:     -1,
			Rounds:   schedule.TeamRounds(action.Students, action.TeamSize),
		}

		return Projects{
			Projects: append(slices.Clip(projects.Projects), project),
			Active:   id,
		}

	case RemoveProject:
		remaining := slices.DeleteFunc(slices.Clone(projects.Projects), func(project Project) bool {
			return project.ID == action.ID
		})

		next := Projects{Projects: remaining, Active: projects.Active}
		if projects.Active == action.ID {
			next.Active = next.first()
		}

		return next

	case SelectProject:
		if _, err := projects.Find(action.ID); err == nil {
			projects.Active = action.ID
		}

		return projects

	case RevealProject:
		return projects.update(action.ID, func(project Project) Project {
			next := len(project.Revealed)
			if next >= len(project.Rounds) {
				return project
			}

			project.Revealed = append(slices.Clip(project.Revealed), next)
			project.View = next
			return project
		})

	case ViewProjectRound:
		return projects.update(action.ID, func(project Project) Project {
			if action.Index >= 0 && action.Index < len(project.Revealed) {
				project.View = action.Index
			}

			return project
		})
	}

	return projects
}

// update returns the projects with the given one replaced by f's result.
func (projects Projects) update(id uuid.UUID, f func(Project) Project) Projects {
	updated := slices.Clone(projects.Projects)
	for i, project := range updated {
		if project.ID == id {
			updated[i] = f(project)
		}
	}

	return Projects{Projects: updated, Active: projects.Active}
}
