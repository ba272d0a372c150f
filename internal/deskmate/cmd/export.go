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
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/deskmate/pkg/export"
)

func Export(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export file.xlsx",
		Short: "Export the revealed rounds to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`export writes the revealed rounds of the classroom, which
			students have sat together, and the seating of the round
			being viewed to an xlsx spreadsheet.

			With --project, the revealed rounds of the given team project
			are exported instead. Use --project . for the selected one.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			ref, _ := cmd.Flags().GetString("project")
			err := export.Save(args[0], func(w io.Writer) error {
				if ref == "" {
					return export.Classroom(w, s.classroom, s.students, s.arrange(cmd))
				}

				return s.exportProject(w, ref)
			})
			if err != nil {
				return err
			}

			heading.Fprint(cmd.OutOrStdout(), "Exported ")
			fmt.Fprintln(cmd.OutOrStdout(), args[0])
			return nil
		},
	}

	cmd.Flags().StringP("project", "p", "", "Export the given team project")
	cmd.Flags().Bool("no-optimize", false, "Don't orient benches for the best view")
	return cmd
}

func (s *session) exportProject(w io.Writer, ref string) error {
	project, err := s.projects.Current()
	if ref != "." {
		project, err = s.findProject(ref)
	}

	if err != nil {
		return err
	}

	return export.Project(w, project, s.students)
}
