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

package fov

import (
	"slices"

	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/schedule"
)

// SortByHeight orders the pairs by their average height, shortest first, so
// that shorter pairs are seated towards the front. Pairs of equal height
// keep their order. Who is paired with whom never changes.
func SortByHeight(pairs []schedule.Pair, heights Heights, fallback int) []schedule.Pair {
	sorted := slices.Clone(pairs)

	// Comparing the sums is the same as comparing the averages.
	sum := func(pair schedule.Pair) int {
		return heights.Of(pair[0], fallback) + heights.Of(pair[1], fallback)
	}

	slices.SortStableFunc(sorted, func(a, b schedule.Pair) int {
		return sum(a) - sum(b)
	})

	return sorted
}

// Optimize chooses, for every bench, which of its two students sits on
// which side so that the row's total visibility is maximised. Benches are
// oriented greedily front to back; the front bench is tried both ways and
// the better of the two orientations of the whole row is kept. Ties always
// prefer the existing seating. Rows with at most one bench are left alone.
func Optimize(rows []layout.Row, heights Heights, fallback int) []layout.Row {
	optimized := make([]layout.Row, len(rows))

	for i, row := range rows {
		optimized[i] = row
		if len(row.Benches) <= 1 {
			continue
		}

		asIs, asIsTotal := orient(row.Benches, heights, fallback, false)
		swapped, swappedTotal := orient(row.Benches, heights, fallback, true)

		optimized[i].Benches = asIs
		if swappedTotal > asIsTotal {
			optimized[i].Benches = swapped
		}
	}

	return optimized
}

// orient greedily orients the benches of a row, optionally swapping the
// front bench first, and returns the oriented benches and their total score.
func orient(benches []layout.Bench, heights Heights, fallback int, swapFront bool) ([]layout.Bench, float64) {
	var lanes [2]lane

	oriented := make([]layout.Bench, len(benches))
	total := 0.0

	for i, bench := range benches {
		switch {
		case i == 0:
			if swapFront {
				bench = bench.Swapped()
			}
			total += 2 // the front bench is never obstructed

		default:
			a, b := bench, bench.Swapped()
			scoreA := benchScore(a, lanes, heights, fallback)
			scoreB := benchScore(b, lanes, heights, fallback)

			bench = a
			if scoreB > scoreA {
				bench = b
				scoreA = scoreB
			}

			total += scoreA
		}

		for seat, student := range bench {
			lanes[seat].observe(student, heights.Of(student, fallback))
		}

		oriented[i] = bench
	}

	return oriented, total
}

// benchScore is the sum of the lane scores of the bench's two students.
func benchScore(bench layout.Bench, lanes [2]lane, heights Heights, fallback int) float64 {
	return lanes[0].score(heights.Of(bench[0], fallback)) +
		lanes[1].score(heights.Of(bench[1], fallback))
}
