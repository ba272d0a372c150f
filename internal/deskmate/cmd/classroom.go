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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/deskmate/pkg/fov"
	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/state"
)

// arrange seats the round being viewed in the classroom.
func (s *session) arrange(cmd *cobra.Command) fov.Arrangement {
	round, ok := s.classroom.Current()
	if !ok {
		return fov.Arrangement{}
	}

	optimize := s.config.Optimize
	if flag := cmd.Flags().Lookup("no-optimize"); flag != nil && flag.Changed {
		optimize = false
	}

	return fov.Arrange(round, s.classroom.Config, s.students.Heights(), optimize)
}

func (s *session) show(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()

	if _, ok := s.classroom.Current(); !ok {
		fmt.Fprintln(w, "No round has been revealed yet, use `deskmate next` to reveal one.")
		return nil
	}

	renderArrangement(w, s.classroom, s.students, s.arrange(cmd))
	return nil
}

func Show(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the seating of the round being viewed",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`show prints the seating of the round being viewed, row by
			row from the front of the classroom to the back.

			Pairs of shorter students sit in the front, and the students
			of every bench are seated so that as few of them as possible
			have their view blocked. Every student is coloured by how
			well they can see, from green for a clear view to red for a
			blocked one.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.open().show(cmd)
		},
	}

	cmd.Flags().Bool("no-optimize", false, "Don't orient benches for the best view")
	return cmd
}

func Next(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Reveal the next round and show it",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			if !s.classroom.CanReveal() {
				failure.Fprintln(cmd.OutOrStdout(), "Every round has already been revealed.")
				return nil
			}

			s.dispatch(state.RevealNext{})
			logrus.WithField("round", s.classroom.View+1).Debug("revealed")
			return s.show(cmd)
		},
	}

	cmd.Flags().Bool("no-optimize", false, "Don't orient benches for the best view")
	return cmd
}

func View(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view { prev | next | round }",
		Short: "View an already revealed round",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`view switches to another of the rounds revealed so far,
			either the one before or after the current one, or the
			round with the given number.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			switch args[0] {
			case "prev":
				if !s.classroom.CanGoPrev() {
					return fmt.Errorf("already viewing the first round")
				}

				s.dispatch(state.ViewPrev{})
			case "next":
				if !s.classroom.CanGoNext() {
					return fmt.Errorf("already viewing the last revealed round")
				}

				s.dispatch(state.ViewNext{})
			default:
				round, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid round %q", args[0])
				}

				if round < 1 || round > len(s.classroom.Revealed) {
					return fmt.Errorf("round %d has not been revealed, %d rounds have", round, len(s.classroom.Revealed))
				}

				s.dispatch(state.ViewRound{Index: round - 1})
			}

			return s.show(cmd)
		},
	}

	cmd.Flags().Bool("no-optimize", false, "Don't orient benches for the best view")
	return cmd
}

func History(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the revealed rounds, latest first",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			w := cmd.OutOrStdout()

			history := s.classroom.History()
			if len(history) == 0 {
				fmt.Fprintln(w, "No round has been revealed yet.")
				return nil
			}

			for _, round := range history {
				renderRound(w, round, s.students)
			}

			return nil
		},
	}
}

func Matrix(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show which students have sat together",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			renderMatrix(cmd.OutOrStdout(), s.classroom.Coverage(), s.classroom.Config.Students)
			return nil
		},
	}
}

func Config(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the classroom configuration",
		Args:  cobra.NoArgs,
		Long: heredoc.Docf(`config prints the number of students and rows of benches
			in the classroom. If any of the flags are provided, the
			classroom is reconfigured instead.

			Reconfiguring generates a new schedule, so every revealed
			round is forgotten. There can be between %d and %d students,
			in between %d and %d rows.`,
			layout.MinStudents, layout.MaxStudents, layout.MinRows, layout.MaxRows),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			w := cmd.OutOrStdout()

			config := s.classroom.Config
			if cmd.Flags().Changed("students") {
				config.Students, _ = cmd.Flags().GetInt("students")
			}

			if cmd.Flags().Changed("rows") {
				config.Rows, _ = cmd.Flags().GetInt("rows")
			}

			if config != s.classroom.Config {
				if err := config.Validate(); err != nil {
					return err
				}

				s.dispatch(state.UpdateConfig{Config: config})
				s.syncRoster()
				heading.Fprintln(w, "Classroom reconfigured")
			}

			label.Fprint(w, "Students: ")
			fmt.Fprintln(w, config.Students)
			label.Fprint(w, "Rows:     ")
			fmt.Fprintln(w, config.Rows)
			label.Fprint(w, "Benches:  ")
			fmt.Fprintln(w, layout.DistributeBenches(config))
			label.Fprint(w, "Rounds:   ")
			fmt.Fprintf(w, "%d of %d revealed\n", len(s.classroom.Revealed), len(s.classroom.Rounds))
			return nil
		},
	}

	cmd.Flags().IntP("students", "s", 0, "Number of students in the class")
	cmd.Flags().IntP("rows", "r", 0, "Number of rows of benches")
	return cmd
}

func Reset(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget every revealed round",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`reset starts the schedule of the classroom over. With --all,
			everything deskmate has saved is removed, including the
			students and the projects.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if all, _ := cmd.Flags().GetBool("all"); all {
				if err := env.store.Clear(); err != nil {
					return err
				}

				heading.Fprintln(w, "Removed all saved data")
				return nil
			}

			env.open().dispatch(state.ResetAll{})
			heading.Fprintln(w, "Classroom reset")
			return nil
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Remove all saved data")
	return cmd
}
