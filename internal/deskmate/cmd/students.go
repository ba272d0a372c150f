package cmd

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/deskmate/pkg/roster"
)

func Students(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "students",
		Short: "Manage the students of the class",
		Long: heredoc.Doc(`students manages the names, heights, and genders of the
			students of the class. deskmate makes up a student for every
			seat which hasn't been filled in, so that the class can be
			tried out before it is set up.`),
	}

	cmd.AddCommand(StudentsList(env))
	cmd.AddCommand(StudentsSet(env))
	cmd.AddCommand(StudentsFind(env))
	return cmd
}

func StudentsList(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the students of the class",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()
			listStudents(cmd, s.students, s.students.IDs())
			return nil
		},
	}
}

func listStudents(cmd *cobra.Command, students roster.Roster, ids []int) {
	table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "#\tFirst Name\tLast Name\tHeight\tGender")

	for _, id := range ids {
		student := students[id]

		height := "-"
		if student.HeightCm != nil {
			height = fmt.Sprintf("%d cm", *student.HeightCm)
		}

		gender := string(student.Gender)
		if gender == "" {
			gender = "-"
		}

		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\n", id, student.FirstName, student.LastName, height, gender)
	}

	table.Flush()
}

func StudentsSet(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set number",
		Short: "Change the details of a student",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`set changes the details of the student with the given
			number. Only the details whose flags are provided change.
			A height of 0 forgets the student's height, and a gender of
			- forgets their gender. A student with every detail cleared
			is made up again, like any seat which was never filled in.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid student number %q", args[0])
			}

			student, found := s.students[id]
			if !found {
				return fmt.Errorf("no student numbered %d, the class has %d", id, len(s.students))
			}

			flags := cmd.Flags()
			if flags.Changed("first") {
				student.FirstName, _ = flags.GetString("first")
				student.FirstName = strings.TrimSpace(student.FirstName)
			}

			if flags.Changed("last") {
				student.LastName, _ = flags.GetString("last")
				student.LastName = strings.TrimSpace(student.LastName)
			}

			if flags.Changed("height") {
				height, _ := flags.GetInt("height")
				switch {
				case height == 0:
					student.HeightCm = nil
				case height < 0:
					return fmt.Errorf("invalid height %d", height)
				default:
					student.HeightCm = &height
				}
			}

			if flags.Changed("gender") {
				gender, _ := flags.GetString("gender")
				if gender == "-" {
					gender = ""
				}

				student.Gender, err = roster.ParseGender(gender)
				if err != nil {
					return err
				}
			}

			s.students = maps.Clone(s.students)
			s.students[id] = student
			s.saveRoster()

			listStudents(cmd, s.students, []int{id})
			return nil
		},
	}

	cmd.Flags().String("first", "", "First name of the student")
	cmd.Flags().String("last", "", "Last name of the student")
	cmd.Flags().Int("height", 0, "Height of the student in centimetres")
	cmd.Flags().String("gender", "", "Gender of the student (M or F)")
	return cmd
}

func StudentsFind(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "find query",
		Short: "Look up students by name",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			s := env.open()

			found := s.students.Find(args[0])
			if len(found) == 0 {
				failure.Fprintf(cmd.OutOrStdout(), "No student matches %q.\n", args[0])
				return nil
			}

			listStudents(cmd, s.students, found)
			return nil
		},
	}
}
