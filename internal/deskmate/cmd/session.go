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

package cmd

import (
	"errors"
	"math/rand"
	"reflect"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/deskmate/pkg/config"
	"laptudirm.com/x/deskmate/pkg/roster"
	"laptudirm.com/x/deskmate/pkg/state"
	"laptudirm.com/x/deskmate/pkg/store"
)

// environment is what the commands share: the user's configuration and
// where the class is kept.
type environment struct {
	config config.Config
	store  store.Store
	rng    *rand.Rand
}

// setup loads the configuration and opens the store named by it, unless
// the environment has already been set up.
func (env *environment) setup(cmd *cobra.Command) error {
	if env.store == nil {
		path, _ := cmd.Flags().GetString("config")

		conf, err := config.Load(path)
		if err != nil {
			return err
		}

		if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
			conf.DataDir = dir
		}

		env.config = conf
		env.store = store.NewFile(conf.DataDir)
		logrus.WithField("dir", env.store.(store.File).Dir).Debug("using data directory")
	}

	if env.rng == nil {
		env.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !env.config.Color {
		color.NoColor = true
	}

	return nil
}

// session is the class as loaded from the store. Every change made through
// it is saved right away.
type session struct {
	*environment

	classroom state.Classroom
	projects  state.Projects
	students  roster.Roster
}

func (env *environment) open() *session {
	s := &session{environment: env}

	saved, err := env.store.LoadClassroom()
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.classroom = state.NewClassroom(env.config.Classroom())
	case saved.Config.Validate() != nil:
		logrus.WithField("config", saved.Config).Warn("saved configuration is out of bounds, clamping it")
		saved.Config = saved.Config.Clamp()
		fallthrough
	default:
		s.classroom = state.Hydrate(saved)
	}

	projects, _ := env.store.LoadProjects()
	s.projects = state.HydrateProjects(projects)

	students, _ := env.store.LoadRoster()
	s.students = students
	s.syncRoster()

	return s
}

// syncRoster makes sure that there is a student for every seat of the
// classroom and every project.
func (s *session) syncRoster() {
	n := s.classroom.Config.Students
	for _, project := range s.projects.Projects {
		n = max(n, project.Students)
	}

	synced := roster.Sync(s.students, n, s.rng)
	if !reflect.DeepEqual(synced, s.students) {
		s.students = synced
		s.saveRoster()
	}
}

func (s *session) dispatch(action state.Action) {
	logrus.WithField("action", action).Trace("classroom")

	s.classroom = state.Transition(s.classroom, action)
	if err := s.store.SaveClassroom(s.classroom); err != nil {
		logrus.WithError(err).Warn("unable to save progress")
	}
}

func (s *session) dispatchProject(action state.ProjectAction) {
	logrus.WithField("action", action).Trace("projects")

	s.projects = state.TransitionProjects(s.projects, action)
	if err := s.store.SaveProjects(s.projects); err != nil {
		logrus.WithError(err).Warn("unable to save projects")
	}
}

func (s *session) saveRoster() {
	if err := s.store.SaveRoster(s.students); err != nil {
		logrus.WithError(err).Warn("unable to save students")
	}
}
