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
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/deskmate/pkg/coverage"
	"laptudirm.com/x/deskmate/pkg/fov"
	"laptudirm.com/x/deskmate/pkg/roster"
	"laptudirm.com/x/deskmate/pkg/schedule"
	"laptudirm.com/x/deskmate/pkg/state"
)

var (
	heading = color.New(color.FgGreen, color.Bold)
	label   = color.New(color.FgBlue)
	focus   = color.New(color.FgYellow)
	faint   = color.New(color.Faint)
	failure = color.New(color.FgRed)
)

// paint colours the name of a student by how well they can see.
func paint(name string, score float64) string {
	r, g, b := fov.Color(score).RGB()

	// 38;2;r;g;b selects a 24-bit foreground colour.
	return color.New(38, 2, color.Attribute(r), color.Attribute(g), color.Attribute(b)).Sprint(name)
}

func percent(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

func renderArrangement(w io.Writer, classroom state.Classroom, students roster.Roster, arrangement fov.Arrangement) {
	round, _ := classroom.Current()
	heading.Fprintf(w, "Round %d of %d\n", round.Index+1, len(classroom.Rounds))

	name := func(id int) string {
		if !arrangement.Scored {
			return students.DisplayName(id)
		}

		score := arrangement.Scores[id]
		return paint(students.DisplayName(id), score) + faint.Sprintf(" (%s)", percent(score))
	}

	for r, row := range arrangement.Rows {
		label.Fprintf(w, "\nRow %d\n", r+1)
		for b, bench := range row.Benches {
			fmt.Fprintf(w, "  %2d. %s & %s\n", b+1, name(bench[0]), name(bench[1]))
		}

		if row.Alone != 0 {
			fmt.Fprintf(w, "  %2d. %s %s\n", len(row.Benches)+1, name(row.Alone), faint.Sprint("(alone)"))
		}
	}

	if !arrangement.Scored {
		return
	}

	var blocked []string
	for _, column := range arrangement.Columns {
		for _, bench := range column.Benches {
			for _, seat := range bench {
				if seat.BlockedBy != 0 {
					blocked = append(blocked, fmt.Sprintf("  %s is blocked by %s (%s)",
						students.DisplayName(seat.Student), students.DisplayName(seat.BlockedBy), percent(seat.Score)))
				}
			}
		}
	}

	if len(blocked) > 0 {
		failure.Fprintln(w, "\nObstructed views")
		fmt.Fprintln(w, strings.Join(blocked, "\n"))
	}

	fmt.Fprintf(w, "\nAverage view: %s  %s %s\n", percent(arrangement.Average()), paint("clear", 1), paint("blocked", 0))
}

func renderRound(w io.Writer, round schedule.Round, students roster.Roster) {
	pairs := make([]string, len(round.Pairs))
	for i, pair := range round.Pairs {
		pairs[i] = students.DisplayName(pair[0]) + " & " + students.DisplayName(pair[1])
	}

	label.Fprintf(w, "Round %d", round.Index+1)
	fmt.Fprintf(w, ": %s", strings.Join(pairs, ", "))
	if round.HasAlone() {
		fmt.Fprintf(w, ", %s alone", students.DisplayName(round.Alone))
	}

	fmt.Fprintln(w)
}

func renderTeamRound(w io.Writer, round schedule.TeamRound, students roster.Roster) {
	label.Fprintf(w, "Round %d\n", round.Index+1)
	for i, team := range round.Teams {
		names := make([]string, len(team))
		for j, id := range team {
			names[j] = students.DisplayName(id)
		}

		fmt.Fprintf(w, "  Team %d: %s\n", i+1, strings.Join(names, ", "))
	}
}

// renderMatrix prints the 1-based round in which every pair of students
// first met, or a dot if they haven't yet.
func renderMatrix(w io.Writer, stats coverage.Stats, n int) {
	fmt.Fprint(w, "    ")
	for b := 1; b <= n; b++ {
		label.Fprintf(w, "%3d", b)
	}
	fmt.Fprintln(w)

	for a := 1; a <= n; a++ {
		label.Fprintf(w, "%3d ", a)
		for b := 1; b <= n; b++ {
			switch round, ok := stats.Met(a, b); {
			case a == b:
				faint.Fprint(w, "  -")
			case ok:
				fmt.Fprintf(w, "%3d", round+1)
			default:
				faint.Fprint(w, "  .")
			}
		}
		fmt.Fprintln(w)
	}

	renderCoverage(w, stats)
}

func renderCoverage(w io.Writer, stats coverage.Stats) {
	fmt.Fprintf(w, "\n%d of %d pairs have met ", stats.Paired, stats.Total)
	focus.Fprintf(w, "(%.1f%%)\n", stats.Percentage)
}
