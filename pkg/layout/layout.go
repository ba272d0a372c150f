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

// Package layout splits the benches of a classroom into rows, and seats the
// pairs of a round onto those benches.
package layout

import (
	"errors"
	"fmt"

	"laptudirm.com/x/deskmate/pkg/schedule"
)

// BenchCapacity is the number of students which can sit at a single bench.
const BenchCapacity = 2

// Bounds of a valid classroom or project configuration.
const (
	MinStudents = 4
	MaxStudents = 60

	MinRows = 1
	MaxRows = 6

	MinTeamSize = 2
	MaxTeamSize = 6
)

// ErrOutOfBounds is returned for configurations outside the supported bounds.
var ErrOutOfBounds = errors.New("configuration out of bounds")

// Config is the configuration of a classroom.
type Config struct {
	Students      int `yaml:"students"`
	Rows          int `yaml:"rows"`
	BenchCapacity int `yaml:"bench-capacity"`
}

// DefaultConfig is the configuration used when nothing else is known.
var DefaultConfig = Config{
	Students:      28,
	Rows:          3,
	BenchCapacity: BenchCapacity,
}

// Validate checks that the configuration is within the supported bounds.
func (config Config) Validate() error {
	switch {
	case config.Students < MinStudents || config.Students > MaxStudents:
		return fmt.Errorf("%w: students must be in [%d, %d], got %d",
			ErrOutOfBounds, MinStudents, MaxStudents, config.Students)
	case config.Rows < MinRows || config.Rows > MaxRows:
		return fmt.Errorf("%w: rows must be in [%d, %d], got %d",
			ErrOutOfBounds, MinRows, MaxRows, config.Rows)
	case config.BenchCapacity != BenchCapacity:
		return fmt.Errorf("%w: bench capacity is fixed at %d, got %d",
			ErrOutOfBounds, BenchCapacity, config.BenchCapacity)
	}

	return nil
}

// Clamp returns a copy of the configuration with every field forced into
// the supported bounds.
func (config Config) Clamp() Config {
	config.Students = min(max(config.Students, MinStudents), MaxStudents)
	config.Rows = min(max(config.Rows, MinRows), MaxRows)
	config.BenchCapacity = BenchCapacity
	return config
}

// ValidateTeamSize checks that a project's team size is supported.
func ValidateTeamSize(size int) error {
	if size < MinTeamSize || size > MaxTeamSize {
		return fmt.Errorf("%w: team size must be in [%d, %d], got %d",
			ErrOutOfBounds, MinTeamSize, MaxTeamSize, size)
	}

	return nil
}

// DistributeBenches spreads the benches needed for the class as evenly as
// possible across the rows. The first total%rows rows get one extra bench.
func DistributeBenches(config Config) []int {
	capacity := config.BenchCapacity
	if capacity <= 0 {
		capacity = BenchCapacity
	}

	total := (config.Students + capacity - 1) / capacity
	base := total / config.Rows
	remainder := total % config.Rows

	rows := make([]int, config.Rows)
	for i := range rows {
		rows[i] = base
		if i < remainder {
			rows[i]++
		}
	}

	return rows
}

// Bench is the seating of a bench, with the left seat first. Unlike a
// schedule.Pair, the order of a Bench matters.
type Bench [2]int

// Swapped returns the bench with its two students switching seats.
func (bench Bench) Swapped() Bench {
	return Bench{bench[1], bench[0]}
}

// Row is a front-to-back sequence of benches.
type Row struct {
	Benches []Bench

	// Alone is the student sitting alone at the back of the row, or 0.
	Alone int
}

// Students returns every student seated in the row, front to back.
func (row Row) Students() []int {
	students := make([]int, 0, len(row.Benches)*2+1)
	for _, bench := range row.Benches {
		students = append(students, bench[0], bench[1])
	}

	if row.Alone != 0 {
		students = append(students, row.Alone)
	}

	return students
}

// Partition seats the pairs of a round, in order, onto the rows given by
// the bench counts. A student sitting alone is put at the back of the
// last row.
func Partition(round schedule.Round, counts []int) []Row {
	rows := make([]Row, len(counts))

	next := 0
	for i, count := range counts {
		end := min(next+count, len(round.Pairs))
		for _, pair := range round.Pairs[next:end] {
			rows[i].Benches = append(rows[i].Benches, Bench(pair))
		}
		next = end
	}

	if len(rows) > 0 {
		// Pairs which did not fit a row still need a seat.
		last := &rows[len(rows)-1]
		for _, pair := range round.Pairs[next:] {
			last.Benches = append(last.Benches, Bench(pair))
		}

		last.Alone = round.Alone
	}

	return rows
}
