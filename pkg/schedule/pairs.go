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

package schedule

// Pair is an unordered pair of participants, always stored with the smaller
// id first so that (a, b) and (b, a) compare equal.
type Pair [2]int

// NewPair returns the canonical Pair of the two participants.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{a, b}
}

// Has reports whether the given participant is a member of the pair.
func (pair Pair) Has(id int) bool {
	return pair[0] == id || pair[1] == id
}

// Other returns the partner of the given participant in the pair.
func (pair Pair) Other(id int) int {
	if pair[0] == id {
		return pair[1]
	}

	return pair[0]
}

// Round is a single step of a pair schedule.
type Round struct {
	Index int
	Pairs []Pair

	// Alone is the participant who sits alone in this round, or 0 if the
	// population is even and everyone has a partner.
	Alone int
}

// HasAlone reports whether some participant sits alone in the round.
func (round Round) HasAlone() bool {
	return round.Alone != 0
}

// Groups returns every pair of the round as a group of two.
func (round Round) Groups() [][]int {
	groups := make([][]int, len(round.Pairs))
	for i, pair := range round.Pairs {
		groups[i] = []int{pair[0], pair[1]}
	}

	return groups
}

// Rounds generates the complete pair schedule for n participants using the
// circle method. For odd n, a phantom participant is added and whoever is
// paired with it sits alone for that round. Every unordered pair of
// participants meets in exactly one of the generated rounds.
//
// A population of less than two has nobody to pair up, so no rounds are
// generated for it.
func Rounds(n int) []Round {
	if n < 2 {
		return nil
	}

	c := newCircle(n)
	rounds := make([]Round, 0, c.Rounds())

	for r := 0; r < c.Rounds(); r++ {
		round := Round{Index: r}

		for _, encounter := range c.Encounters() {
			a, b := encounter[0], encounter[1]
			switch {
			case a.Phantom:
				round.Alone = b.ID
			case b.Phantom:
				round.Alone = a.ID
			default:
				round.Pairs = append(round.Pairs, NewPair(a.ID, b.ID))
			}
		}

		rounds = append(rounds, round)
		c.Rotate()
	}

	return rounds
}
