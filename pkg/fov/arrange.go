package fov

import (
	"laptudirm.com/x/deskmate/pkg/layout"
	"laptudirm.com/x/deskmate/pkg/schedule"
)

// Arrangement is the seating of a single round in a classroom.
type Arrangement struct {
	Rows    []layout.Row
	Columns []Column
	Scores  map[int]float64

	// Scored is false when no heights were known, in which case the rows
	// are the plain partition of the round and there are no scores.
	Scored bool
}

// Arrange seats the given round in the classroom. Pairs are sorted by
// height so that shorter pairs sit in front, the benches of every row are
// optionally oriented for the best view, and every student is scored.
// Without any known heights the round is only partitioned into rows.
func Arrange(round schedule.Round, config layout.Config, heights Heights, optimize bool) Arrangement {
	counts := layout.DistributeBenches(config)
	if len(heights) == 0 {
		return Arrangement{Rows: layout.Partition(round, counts)}
	}

	fallback := Fallback(heights)

	round.Pairs = SortByHeight(round.Pairs, heights, fallback)
	rows := layout.Partition(round, counts)
	if optimize {
		rows = Optimize(rows, heights, fallback)
	}

	columns := Compute(rows, heights, fallback)
	return Arrangement{
		Rows:    rows,
		Columns: columns,
		Scores:  ScoreMap(columns),
		Scored:  true,
	}
}

// Average returns the mean score of every seated student, or 1 if nothing
// was scored.
func (arrangement Arrangement) Average() float64 {
	if len(arrangement.Scores) == 0 {
		return 1
	}

	total := 0.0
	for _, score := range arrangement.Scores {
		total += score
	}

	return total / float64(len(arrangement.Scores))
}
