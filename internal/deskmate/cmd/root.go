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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	return root(&environment{})
}

func root(env *environment) *cobra.Command {
	root := &cobra.Command{
		Use:   "deskmate",
		Short: "Seat a class so that everyone works with everyone",
		Long: heredoc.Doc(`deskmate assigns the students of a class to benches, two
			at a time, over a series of rounds so that every student
			sits with every other student exactly once. Pairs of
			shorter students are seated in the front, and every bench
			is oriented so that everyone can see the board.

			Team projects get their own series of rounds, which shuffle
			the class into teams of a fixed size.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("verbose").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}

			return env.setup(cmd)
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Deskmate's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().Bool("verbose", false, "Show Debug Information")
	root.PersistentFlags().StringP("config", "c", "", "Read the configuration from the given file")
	root.PersistentFlags().String("data-dir", "", "Keep the class's progress in the given directory")
	root.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Show(env))
	root.AddCommand(Next(env))
	root.AddCommand(View(env))
	root.AddCommand(History(env))
	root.AddCommand(Matrix(env))
	root.AddCommand(Config(env))
	root.AddCommand(Reset(env))
	root.AddCommand(Students(env))
	root.AddCommand(Project(env))
	root.AddCommand(Export(env))

	return root
}
