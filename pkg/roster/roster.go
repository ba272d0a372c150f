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

// Package roster keeps track of the students of a class: their names,
// heights, and genders.
package roster

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"laptudirm.com/x/deskmate/pkg/fov"
)

type Gender string

const (
	Unspecified Gender = ""
	Male        Gender = "M"
	Female      Gender = "F"
)

// ParseGender parses a gender given on the command line.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Unspecified, nil
	case "M":
		return Male, nil
	case "F":
		return Female, nil
	default:
		return Unspecified, fmt.Errorf("parse gender: invalid gender %q", s)
	}
}

// Student is the metadata of a single student.
type Student struct {
	LastName  string `yaml:"last-name"`
	FirstName string `yaml:"first-name"`
	HeightCm  *int   `yaml:"height-cm"`
	Gender    Gender `yaml:"gender"`
}

// HasContent reports whether any field of the student has been filled in.
func (student Student) HasContent() bool {
	return student.FirstName != "" || student.LastName != "" ||
		(student.HeightCm != nil && *student.HeightCm != 0) ||
		student.Gender != Unspecified
}

// FullName returns the student's first and last names.
func (student Student) FullName() string {
	return strings.TrimSpace(student.FirstName + " " + student.LastName)
}

// Roster maps student numbers to their metadata.
type Roster map[int]Student

// Sync returns a roster for the students 1..n. Existing students with any
// content are kept, everyone else is synthesized, and students beyond n are
// dropped.
func Sync(roster Roster, n int, rng *rand.Rand) Roster {
	synced := make(Roster, n)
	for id := 1; id <= n; id++ {
		if student, found := roster[id]; found && student.HasContent() {
			synced[id] = student
			continue
		}

		synced[id] = Synthesize(id-1, rng)
	}

	return synced
}

// Heights returns the known heights of the students.
func (roster Roster) Heights() fov.Heights {
	heights := make(fov.Heights)
	for id, student := range roster {
		if student.HeightCm != nil {
			heights[id] = *student.HeightCm
		}
	}

	return heights
}

// DisplayName returns the first name of the student, or their number if
// it is not known.
func (roster Roster) DisplayName(id int) string {
	if student, found := roster[id]; found && student.FirstName != "" {
		return student.FirstName
	}

	return fmt.Sprintf("#%d", id)
}

// IDs returns the student numbers of the roster in ascending order.
func (roster Roster) IDs() []int {
	ids := make([]int, 0, len(roster))
	for id := range roster {
		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids
}

// Find looks up students by a fuzzy match of their full name, best
// matches first.
func (roster Roster) Find(query string) []int {
	ids := roster.IDs()

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = roster[id].FullName()
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	found := make([]int, len(ranks))
	for i, rank := range ranks {
		found[i] = ids[rank.OriginalIndex]
	}

	return found
}
