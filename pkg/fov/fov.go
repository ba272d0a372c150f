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

// Package fov models how well every student can see the board, given the
// heights of the students sitting in front of them.
//
// Rows are looked at front to back. The two seats of a bench form two lanes
// which run through every bench of the row, and a student can only be
// blocked by the students sitting in front of them in the same lane.
package fov

import (
	"math"
	"slices"

	"laptudirm.com/x/deskmate/pkg/layout"
)

// DefaultHeight is the fallback height, in centimetres, used when no height
// of any student is known.
const DefaultHeight = 150

// Falloff is the height deficit, in centimetres, at which a student's view
// is completely blocked.
const Falloff = 20

// Heights maps students to their known heights in centimetres. Students
// with an unknown height are absent from the map.
type Heights map[int]int

// Of returns the height of the given student, or fallback if it is unknown.
func (heights Heights) Of(student, fallback int) int {
	if height, found := heights[student]; found {
		return height
	}

	return fallback
}

// Fallback returns the median of the known heights, or DefaultHeight if no
// heights are known. The median of an even number of heights is the mean of
// the two middle heights, rounded to the nearest centimetre.
func Fallback(heights Heights) int {
	if len(heights) == 0 {
		return DefaultHeight
	}

	known := make([]int, 0, len(heights))
	for _, height := range heights {
		known = append(known, height)
	}
	slices.Sort(known)

	mid := len(known) / 2
	if len(known)%2 == 1 {
		return known[mid]
	}

	return int(math.Round(float64(known[mid-1]+known[mid]) / 2))
}

// Seat is the field of view of a single seated student.
type Seat struct {
	Student int
	Height  int

	// Score is the visibility of the student, from 0 (blocked) to 1 (clear).
	Score float64

	// BlockedBy is the tallest student in front in the same lane, if the
	// student's view is obstructed, or 0.
	BlockedBy int
}

// Column is the field of view of a classroom row, mirroring its benches.
type Column struct {
	Index   int
	Benches [][]Seat
}

// lane is the running maximum height of a seat lane.
type lane struct {
	height  int
	student int
	set     bool
}

// score returns the visibility of a student of the given height sitting
// behind everyone recorded in the lane.
func (l lane) score(height int) float64 {
	if !l.set || height >= l.height {
		return 1
	}

	return math.Max(0, 1-float64(l.height-height)/Falloff)
}

// observe records a student sitting in the lane.
func (l *lane) observe(student, height int) {
	if !l.set || height >= l.height {
		*l = lane{height: height, student: student, set: true}
	}
}

// benches returns the students of a row bench by bench, with a student
// sitting alone taking up a bench of their own at the back.
func benches(row layout.Row) [][]int {
	students := make([][]int, 0, len(row.Benches)+1)
	for _, bench := range row.Benches {
		students = append(students, []int{bench[0], bench[1]})
	}

	if row.Alone != 0 {
		students = append(students, []int{row.Alone})
	}

	return students
}

// Compute scores the field of view of every student in the given rows. The
// front bench of a row is never obstructed. Every other student is compared
// against the tallest student seen so far in their lane, and loses a
// Falloff-th of their visibility for every centimetre they are shorter.
func Compute(rows []layout.Row, heights Heights, fallback int) []Column {
	columns := make([]Column, len(rows))

	for index, row := range rows {
		var lanes []lane

		students := benches(row)
		column := Column{Index: index, Benches: make([][]Seat, len(students))}

		for b, bench := range students {
			seats := make([]Seat, len(bench))
			for s, student := range bench {
				height := heights.Of(student, fallback)
				seats[s] = Seat{Student: student, Height: height, Score: 1}

				if b == 0 || s >= len(lanes) {
					continue
				}

				if l := lanes[s]; l.set && height < l.height {
					seats[s].Score = l.score(height)
					seats[s].BlockedBy = l.student
				}
			}

			// Lanes are only updated after the whole bench is scored.
			for s, seat := range seats {
				if s >= len(lanes) {
					lanes = append(lanes, lane{})
				}
				lanes[s].observe(seat.Student, seat.Height)
			}

			column.Benches[b] = seats
		}

		columns[index] = column
	}

	return columns
}

// ScoreMap flattens the columns into a lookup from student to score.
func ScoreMap(columns []Column) map[int]float64 {
	scores := make(map[int]float64)
	for _, column := range columns {
		for _, bench := range column.Benches {
			for _, seat := range bench {
				scores[seat.Student] = seat.Score
			}
		}
	}

	return scores
}
