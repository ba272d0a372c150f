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
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/state"
)

// findProject finds a project by its position in the project list, or by
// a unique prefix of its id.
func (s *session) findProject(ref string) (state.Project, error) {
	sorted := s.projects.Sorted()
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(sorted) {
		return sorted[n-1], nil
	}

	var matches []state.Project
	for _, project := range sorted {
		if strings.HasPrefix(project.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, project)
		}
	}

	switch len(matches) {
	case 0:
		return state.Project{}, fmt.Errorf("%w: %s", state.ErrNoProject, ref)
	case 1:
		return matches[0], nil
	default:
		return state.Project{}, fmt.Errorf("project %s is ambiguous, %d projects match", ref, len(matches))
	}
}

// project returns the project named by the --project flag, or the active
// one if it isn't provided.
func (s *session) project(cmd *cobra.Command) (state.Project, error) {
	if ref, _ := cmd.Flags().GetString("project"); ref != "" {
		return s.findProject(ref)
	}

	project, err := s.projects.Current()
	if err != nil {
		return state.Project{}, fmt.Errorf("%w: add one with `deskmate project add`", err)
	}

	return project, nil
}

func (s *session) showProject(cmd *cobra.Command, project state.Project) error {
	w := cmd.OutOrStdout()

	heading.Fprintln(w, project.Title())
	round, ok := project.Current()
	if !ok {
		fmt.Fprintln(w, "No round has been revealed yet, use `deskmate project next` to reveal one.")
		return nil
	}

	fmt.Fprintf(w, "%d of %d rounds revealed\n\n", len(project.Revealed), len(project.Rounds))
	renderTeamRound(w, round, s.students)
	return nil
}

func Project(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage team projects",
		Long: heredoc.Doc(`project manages the team projects of the class. Every
			project has its own series of rounds, each of which splits
			the class into teams of the project's team size.

			Projects are referred to by their number in the project list
			or by the start of their id. Commands which work with a single
			project use the selected one unless --project is provided.`),
	}

	cmd.PersistentFlags().StringP("project", "p", "", "Work with the given project instead of the selected one")

	cmd.AddCommand(ProjectAdd(env))
	cmd.AddCommand(ProjectRemove(env))
	cmd.AddCommand(ProjectSelect(env))
	cmd.AddCommand(ProjectList(env))
	cmd.AddCommand(ProjectNext(env))
	cmd.AddCommand(ProjectView(env))
	cmd.AddCommand(ProjectShow(env))
	cmd.AddCommand(ProjectMatrix(env))
	cmd.AddCommand(ProjectHistory(env))
	return cmd
}

func ProjectAdd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add course name",
		Short: "Add a team project and select it",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Docf(`add adds a new team project for the given course. The
			project has as many students as the classroom unless
			--students is provided. Teams have between %d and %d
			students.`, layout.MinTeamSize, layout.MaxTeamSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			course, name := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			if course == "" || name == "" {
				return fmt.Errorf("a project needs both a course and a name")
			}

			students := s.classroom.Config.Students
			if cmd.Flags().Changed("students") {
				students, _ = cmd.Flags().GetInt("students")
			}

			if students < layout.MinStudents || students > layout.MaxStudents {
				return fmt.Errorf("%w: students must be in [%d, %d], got %d",
					layout.ErrOutOfBounds, layout.MinStudents, layout.MaxStudents, students)
			}

			size, _ := cmd.Flags().GetInt("team-size")
			if err := layout.ValidateTeamSize(size); err != nil {
				return err
			}

			s.dispatchProject(state.AddProject{
				Course:   course,
				Name:     name,
				Students: students,
				TeamSize: size,
			})
			s.syncRoster()

			project, err := s.projects.Current()
			if err != nil {
				return err
			}

			heading.Fprint(cmd.OutOrStdout(), "Added project ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", project.Title(), shortID(project))
			return nil
		},
	}

	cmd.Flags().IntP("students", "s", 0, "Number of students in the project")
	cmd.Flags().Int("team-size", 3, "Number of students in a team")
	return cmd
}

func ProjectRemove(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "remove project",
		Short: "Remove a team project",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			project, err := s.findProject(args[0])
			if err != nil {
				return err
			}

			s.dispatchProject(state.RemoveProject{ID: project.ID})
			heading.Fprint(cmd.OutOrStdout(), "Removed project ")
			fmt.Fprintln(cmd.OutOrStdout(), project.Title())
			return nil
		},
	}
}

func ProjectSelect(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "select project",
		Short: "Select the team project to work with",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			project, err := s.findProject(args[0])
			if err != nil {
				return err
			}

			s.dispatchProject(state.SelectProject{ID: project.ID})
			return s.showProject(cmd, project)
		},
	}
}

func shortID(project state.Project) string {
	return project.ID.String()[:8]
}

func ProjectList(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the team projects",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			w := cmd.OutOrStdout()

			sorted := s.projects.Sorted()
			if len(sorted) == 0 {
				failure.Fprintln(w, "No projects added.")
				return nil
			}

			for i, project := range sorted {
				marker := " "
				if project.ID == s.projects.Active {
					marker = focus.Sprint("*")
				}

				fmt.Fprintf(w, "%s %d. %s %s  %d of %d rounds, %.1f%% covered\n",
					marker, i+1, label.Sprint(project.Title()), faint.Sprint(shortID(project)),
					len(project.Revealed), len(project.Rounds), project.Coverage().Percentage)
			}

			return nil
		},
	}
}

func ProjectNext(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Reveal the next round of a team project",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			project, err := s.project(cmd)
			if err != nil {
				return err
			}

			if !project.CanReveal() {
				failure.Fprintln(cmd.OutOrStdout(), "Every round has already been revealed.")
				return nil
			}

			s.dispatchProject(state.RevealProject{ID: project.ID})
			project, _ = s.projects.Find(project.ID)
			return s.showProject(cmd, project)
		},
	}
}

func ProjectView(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "view { prev | next | round }",
		Short: "View an already revealed round of a team project",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			project, err := s.project(cmd)
			if err != nil {
				return err
			}

			index := project.View
			switch args[0] {
			case "prev":
				index--
			case "next":
				index++
			default:
				round, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid round %q", args[0])
				}

				index = round - 1
			}

			if index < 0 || index >= len(project.Revealed) {
				return fmt.Errorf("round %d has not been revealed, %d rounds have", index+1, len(project.Revealed))
			}

			s.dispatchProject(state.ViewProjectRound{ID: project.ID, Index: index})
			project, _ = s.projects.Find(project.ID)
			return s.showProject(cmd, project)
		},
	}
}

func ProjectShow(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the teams of the round being viewed",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			project, err := s.project(cmd)
			if err != nil {
				return err
			}

			return s.showProject(cmd, project)
		},
	}
}

func ProjectMatrix(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show which students have shared a team",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			project, err := s.project(cmd)
			if err != nil {
				return err
			}

			heading.Fprintln(cmd.OutOrStdout(), project.Title())
			renderMatrix(cmd.OutOrStdout(), project.Coverage(), project.Students)
			return nil
		},
	}
}

func ProjectHistory(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the revealed rounds of a team project, latest first",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			w := cmd.OutOrStdout()

			project, err := s.project(cmd)
			if err != nil {
				return err
			}

			heading.Fprintln(w, project.Title())
			history := project.History()
			if len(history) == 0 {
				fmt.Fprintln(w, "No round has been revealed yet.")
				return nil
			}

			for _, round := range history {
				renderTeamRound(w, round, s.students)
			}

			return nil
		},
	}
}
