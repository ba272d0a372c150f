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

// Package coverage derives which participants have already met, and in
// which round, from the revealed prefix of a schedule.
package coverage

// NotYet marks a pair of participants which has not met in any of the
// revealed rounds.
const NotYet = -1

// Grouped is a round which can be broken up into groups of participants who
// meet each other. Both pair rounds and team rounds are Grouped.
type Grouped interface {
	Groups() [][]int
}

// Stats is the coverage of the unordered pairs of a population.
type Stats struct {
	// Matrix[a][b] is the index of the round in which a and b first met,
	// or NotYet. The matrix is (n+1)x(n+1) so that it can be indexed by
	// participant id directly; row and column 0 are unused.
	Matrix [][]int

	Paired     int     // number of pairs which have met
	Total      int     // number of possible pairs
	Percentage float64 // 100 * Paired / Total
}

// Compute builds the coverage statistics of n participants over the given
// revealed rounds. The first round in which a pair meets wins, and indices
// which do not refer to a round are ignored.
func Compute[G Grouped](n int, rounds []G, revealed []int) Stats {
	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, n+1)
		for j := range matrix[i] {
			matrix[i][j] = NotYet
		}
	}

	paired := 0
	for _, index := range revealed {
		if index < 0 || index >= len(rounds) {
			continue
		}

		for _, group := range rounds[index].Groups() {
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					a, b := group[i], group[j]
					if a < 1 || a > n || b < 1 || b > n || a == b {
						continue
					}

					if matrix[a][b] == NotYet {
						matrix[a][b] = index
						matrix[b][a] = index
						paired++
					}
				}
			}
		}
	}

	stats := Stats{
		Matrix: matrix,
		Paired: paired,
		Total:  max(n*(n-1)/2, 0),
	}

	if stats.Total > 0 {
		stats.Percentage = float64(stats.Paired) / float64(stats.Total) * 100
	}

	return stats
}

// Met returns the round in which a and b first met, if they have.
func (stats Stats) Met(a, b int) (int, bool) {
	if a < 0 || b < 0 || a >= len(stats.Matrix) || b >= len(stats.Matrix) {
		return NotYet, false
	}

	round := stats.Matrix[a][b]
	return round, round != NotYet
}

// Partners returns the number of distinct participants the given one has
// met so far.
func (stats Stats) Partners(id int) int {
	if id < 0 || id >= len(stats.Matrix) {
		return 0
	}

	count := 0
	for other, round := range stats.Matrix[id] {
		if other != id && round != NotYet {
			count++
		}
	}

	return count
}
