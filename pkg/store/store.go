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

// Package store persists the progress of a class between invocations.
// Persistence is best-effort: a missing or unreadable file is the same as
// nothing having been saved.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/deskmate/pkg/roster"
	"laptudirm.com/x/deskmate/pkg/state"
)

// ErrNotFound is returned when loading something which was never saved.
var ErrNotFound = errors.New("nothing saved")

// Store is durable storage for a class. Schedules are never stored, only
// what is needed to regenerate them and the progress through them.
type Store interface {
	LoadClassroom() (state.Classroom, error)
	SaveClassroom(state.Classroom) error

	LoadProjects() (state.Projects, error)
	SaveProjects(state.Projects) error

	LoadRoster() (roster.Roster, error)
	SaveRoster(roster.Roster) error

	// Clear removes everything which has been saved.
	Clear() error
}

// File is a Store which keeps a yaml file for each kind of data in Dir.
type File struct {
	Dir string
}

var _ Store = File{}

// NewFile returns a File store in the given directory, or the default
// one if dir is empty.
func NewFile(dir string) File {
	if dir == "" {
		dir = Directory
	}

	return File{Dir: dir}
}

func (store File) LoadClassroom() (state.Classroom, error) {
	var classroom state.Classroom
	err := load(store.path(classroomFile), &classroom)
	return classroom, err
}

func (store File) SaveClassroom(classroom state.Classroom) error {
	return store.dump(classroomFile, classroom)
}

func (store File) LoadProjects() (state.Projects, error) {
	var projects state.Projects
	err := load(store.path(projectsFile), &projects)
	return projects, err
}

func (store File) SaveProjects(projects state.Projects) error {
	return store.dump(projectsFile, projects)
}

func (store File) LoadRoster() (roster.Roster, error) {
	var students roster.Roster
	err := load(store.path(rosterFile), &students)
	return students, err
}

func (store File) SaveRoster(students roster.Roster) error {
	return store.dump(rosterFile, students)
}

func (store File) Clear() error {
	for _, file := range []string{classroomFile, projectsFile, rosterFile} {
		if err := tryRemove(store.path(file)); err != nil {
			return fmt.Errorf("clear %s: %w", file, err)
		}
	}

	return nil
}

func (store File) path(file string) string {
	return filepath.Join(store.Dir, file)
}

func (store File) dump(file string, data any) error {
	if err := TryMkdir(store.Dir); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	encoded, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}

	path := store.path(file)

	// Write the new data next to the old file and swap them, so that an
	// interrupted save never leaves a half written file behind.
	temp := path + ".tmp"
	if err := os.WriteFile(temp, encoded, FilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}

	if err := os.Rename(temp, path); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}

	logrus.WithField("file", path).Trace("saved")
	return nil
}

func load(path string, data any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("file", path).Warn("unable to read saved data")
		}

		return ErrNotFound
	}

	if err := yaml.Unmarshal(file, data); err != nil {
		logrus.WithError(err).WithField("file", path).Warn("ignoring corrupt saved data")
		return ErrNotFound
	}

	logrus.WithField("file", path).Trace("loaded")
	return nil
}

// Memory is a Store which keeps everything in memory.
type Memory struct {
	classroom *state.Classroom
	projects  *state.Projects
	roster    roster.Roster
}

var _ Store = (*Memory)(nil)

func (store *Memory) LoadClassroom() (state.Classroom, error) {
	if store.classroom == nil {
		return state.Classroom{}, ErrNotFound
	}

	classroom := *store.classroom
	classroom.Revealed = slices.Clone(classroom.Revealed)
	return classroom, nil
}

func (store *Memory) SaveClassroom(classroom state.Classroom) error {
	classroom.Revealed = slices.Clone(classroom.Revealed)
	classroom.Rounds = nil
	store.classroom = &classroom
	return nil
}

func (store *Memory) LoadProjects() (state.Projects, error) {
	if store.projects == nil {
		return state.Projects{}, ErrNotFound
	}

	return cloneProjects(*store.projects), nil
}

func (store *Memory) SaveProjects(projects state.Projects) error {
	projects = cloneProjects(projects)
	for i := range projects.Projects {
		projects.Projects[i].Rounds = nil
	}

	store.projects = &projects
	return nil
}

func (store *Memory) LoadRoster() (roster.Roster, error) {
	if store.roster == nil {
		return nil, ErrNotFound
	}

	return cloneRoster(store.roster), nil
}

func (store *Memory) SaveRoster(students roster.Roster) error {
	store.roster = cloneRoster(students)
	return nil
}

func (store *Memory) Clear() error {
	*store = Memory{}
	return nil
}

func cloneProjects(projects state.Projects) state.Projects {
	projects.Projects = slices.Clone(projects.Projects)
	for i := range projects.Projects {
		projects.Projects[i].Revealed = slices.Clone(projects.Projects[i].Revealed)
	}

	return projects
}

func cloneRoster(students roster.Roster) roster.Roster {
	clone := make(roster.Roster, len(students))
	for id, student := range students {
		if student.HeightCm != nil {
			height := *student.HeightCm
			student.HeightCm = &height
		}

		clone[id] = student
	}

	return clone
}
