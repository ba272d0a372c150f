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

// Package export writes the progress of a class to xlsx workbooks, for
// printing or sharing with people who don't use deskmate.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/deskmate/pkg/coverage"
	"laptudirm.com/x/deskmate/pkg/fov"
	"laptudirm.com/x/deskmate/pkg/roster"
	"laptudirm.com/x/deskmate/pkg/state"
)

// Sheet names.
const (
	RoundsSheet   = "Rounds"
	TeamsSheet    = "Teams"
	CoverageSheet = "Coverage"
	SeatingSheet  = "Seating"
)

const metFill = "#C6EFCE"

// workbook is an excelize file along with the styles created in it.
type workbook struct {
	f      *excelize.File
	header int
	fills  map[string]int
}

func newWorkbook(sheets ...string) (*workbook, error) {
	book := &workbook{f: excelize.NewFile(), fills: map[string]int{}}

	for i, sheet := range sheets {
		idx, err := book.f.NewSheet(sheet)
		if err != nil {
			book.f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		if i == 0 {
			book.f.SetActiveSheet(idx)
		}
	}

	// delete the default sheet
	book.f.DeleteSheet("Sheet1")

	var err error
	book.header, err = book.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		book.f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	return book, nil
}

// fill returns a style which fills a cell with the given colour.
func (book *workbook) fill(color string) int {
	if style, found := book.fills[color]; found {
		return style
	}

	style, _ := book.f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	book.fills[color] = style
	return style
}

func (book *workbook) set(sheet string, col, row int, value any) string {
	name := cell(col, row)
	book.f.SetCellValue(sheet, name, value)
	return name
}

func (book *workbook) heading(sheet string, col, row int, value any) {
	name := book.set(sheet, col, row, value)
	book.f.SetCellStyle(sheet, name, name, book.header)
}

func (book *workbook) write(w io.Writer) error {
	defer book.f.Close()

	if err := book.f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

// coverage writes the coverage matrix with the 1-based round in which
// each pair first met, followed by the summary.
func (book *workbook) coverage(stats coverage.Stats, n int, students roster.Roster) {
	book.f.SetColWidth(CoverageSheet, "A", "A", 16)

	for id := 1; id <= n; id++ {
		book.heading(CoverageSheet, 1+id, 1, students.DisplayName(id))
		book.heading(CoverageSheet, 1, 1+id, students.DisplayName(id))
	}

	met := book.fill(metFill)
	for a := 1; a <= n; a++ {
		for b := 1; b <= n; b++ {
			if a == b {
				book.set(CoverageSheet, 1+b, 1+a, "-")
				continue
			}

			if round, ok := stats.Met(a, b); ok {
				name := book.set(CoverageSheet, 1+b, 1+a, round+1)
				book.f.SetCellStyle(CoverageSheet, name, name, met)
			}
		}
	}

	row := n + 3
	book.heading(CoverageSheet, 1, row, "Paired")
	book.set(CoverageSheet, 2, row, stats.Paired)
	book.heading(CoverageSheet, 1, row+1, "Total")
	book.set(CoverageSheet, 2, row+1, stats.Total)
	book.heading(CoverageSheet, 1, row+2, "Percentage")
	book.set(CoverageSheet, 2, row+2, fmt.Sprintf("%.1f%%", stats.Percentage))
}

// Classroom writes a workbook with every revealed round of the classroom,
// its coverage, and the seating of the given arrangement of the round
// being viewed.
func Classroom(w io.Writer, classroom state.Classroom, students roster.Roster, arrangement fov.Arrangement) error {
	book, err := newWorkbook(RoundsSheet, CoverageSheet, SeatingSheet)
	if err != nil {
		return err
	}

	benches := 0
	for _, index := range classroom.Revealed {
		benches = max(benches, len(classroom.Rounds[index].Pairs))
	}

	book.heading(RoundsSheet, 1, 1, "Round")
	for i := 0; i < benches; i++ {
		book.heading(RoundsSheet, 2+i, 1, fmt.Sprintf("Bench %d", i+1))
	}
	book.heading(RoundsSheet, 2+benches, 1, "Alone")

	last, _ := excelize.ColumnNumberToName(2 + benches)
	book.f.SetColWidth(RoundsSheet, "B", last, 22)

	for i, index := range classroom.Revealed {
		round := classroom.Rounds[index]

		book.set(RoundsSheet, 1, 2+i, round.Index+1)
		for j, pair := range round.Pairs {
			book.set(RoundsSheet, 2+j, 2+i, students.DisplayName(pair[0])+" & "+students.DisplayName(pair[1]))
		}

		if round.HasAlone() {
			book.set(RoundsSheet, 2+benches, 2+i, students.DisplayName(round.Alone))
		}
	}

	book.coverage(classroom.Coverage(), classroom.Config.Students, students)
	book.seating(classroom, students, arrangement)

	return book.write(w)
}

// seating writes two columns, one for each seat, per row of the classroom
// and one line per bench, from the front to the back.
func (book *workbook) seating(classroom state.Classroom, students roster.Roster, arrangement fov.Arrangement) {
	round, ok := classroom.Current()
	if !ok {
		book.set(SeatingSheet, 1, 1, "No round has been revealed yet.")
		return
	}

	book.heading(SeatingSheet, 1, 1, fmt.Sprintf("Round %d", round.Index+1))

	seat := func(col, row, id int) {
		name := book.set(SeatingSheet, col, row, students.DisplayName(id))
		if arrangement.Scored {
			style := book.fill(fov.Color(arrangement.Scores[id]).Hex())
			book.f.SetCellStyle(SeatingSheet, name, name, style)
		}
	}

	for r, row := range arrangement.Rows {
		left := 1 + 2*r
		book.heading(SeatingSheet, left, 2, fmt.Sprintf("Row %d", r+1))
		book.f.MergeCell(SeatingSheet, cell(left, 2), cell(left+1, 2))

		first, _ := excelize.ColumnNumberToName(left)
		second, _ := excelize.ColumnNumberToName(left + 1)
		book.f.SetColWidth(SeatingSheet, first, second, 14)

		for b, bench := range row.Benches {
			seat(left, 3+b, bench[0])
			seat(left+1, 3+b, bench[1])
		}

		if row.Alone != 0 {
			seat(left, 3+len(row.Benches), row.Alone)
		}
	}

	if arrangement.Scored {
		line := 4
		for _, row := range arrangement.Rows {
			line = max(line, 4+len(row.Benches)+1)
		}

		book.heading(SeatingSheet, 1, line, "Average view")
		book.set(SeatingSheet, 2, line, fmt.Sprintf("%.0f%%", arrangement.Average()*100))
	}
}

// Project writes a workbook with every revealed team round of the project
// and its coverage.
func Project(w io.Writer, project state.Project, students roster.Roster) error {
	book, err := newWorkbook(TeamsSheet, CoverageSheet)
	if err != nil {
		return err
	}

	teams := 0
	for _, index := range project.Revealed {
		teams = max(teams, len(project.Rounds[index].Teams))
	}

	book.heading(TeamsSheet, 1, 1, "Round")
	for i := 0; i < teams; i++ {
		book.heading(TeamsSheet, 2+i, 1, fmt.Sprintf("Team %d", i+1))
	}

	if teams > 0 {
		last, _ := excelize.ColumnNumberToName(1 + teams)
		book.f.SetColWidth(TeamsSheet, "B", last, 32)
	}

	for i, index := range project.Revealed {
		round := project.Rounds[index]

		book.set(TeamsSheet, 1, 2+i, round.Index+1)
		for j, team := range round.Teams {
			names := make([]string, len(team))
			for k, id := range team {
				names[k] = students.DisplayName(id)
			}

			book.set(TeamsSheet, 2+j, 2+i, strings.Join(names, ", "))
		}
	}

	book.coverage(project.Coverage(), project.Students, students)
	return book.write(w)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
