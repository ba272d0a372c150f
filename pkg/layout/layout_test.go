package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/deskmate/pkg/schedule"
)

func TestDistributeBenches(t *testing.T) {
	cases := []struct {
		students, rows int
		want           []int
	}{
		{students: 28, rows: 3, want: []int{5, 5, 4}},
		{students: 27, rows: 3, want: []int{5, 5, 4}},
		{students: 4, rows: 1, want: []int{2}},
		{students: 4, rows: 6, want: []int{1, 1, 0, 0, 0, 0}},
		{students: 60, rows: 6, want: []int{5, 5, 5, 5, 5, 5}},
		{students: 13, rows: 2, want: []int{4, 3}},
	}

	for _, c := range cases {
		got := DistributeBenches(Config{Students: c.students, Rows: c.rows, BenchCapacity: 2})
		assert.Equal(t, c.want, got, "%d students in %d rows", c.students, c.rows)
	}
}

func TestDistributeBenchesProperties(t *testing.T) {
	for students := MinStudents; students <= MaxStudents; students++ {
		for rows := MinRows; rows <= MaxRows; rows++ {
			counts := DistributeBenches(Config{Students: students, Rows: rows, BenchCapacity: 2})
			require.Len(t, counts, rows)

			total := (students + 1) / 2
			sum, lo, hi := 0, counts[0], counts[0]
			for _, count := range counts {
				sum += count
				lo, hi = min(lo, count), max(hi, count)
			}

			assert.Equal(t, total, sum)
			assert.LessOrEqual(t, hi-lo, 1)
			for i := 0; i < total%rows; i++ {
				assert.Equal(t, hi, counts[i])
			}
		}
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig.Validate())

	for _, config := range []Config{
		{Students: 3, Rows: 3, BenchCapacity: 2},
		{Students: 61, Rows: 3, BenchCapacity: 2},
		{Students: 28, Rows: 0, BenchCapacity: 2},
		{Students: 28, Rows: 7, BenchCapacity: 2},
		{Students: 28, Rows: 3, BenchCapacity: 3},
	} {
		assert.ErrorIs(t, config.Validate(), ErrOutOfBounds, "%+v", config)
		assert.NoError(t, config.Clamp().Validate(), "%+v", config)
	}

	assert.NoError(t, ValidateTeamSize(2))
	assert.NoError(t, ValidateTeamSize(6))
	assert.ErrorIs(t, ValidateTeamSize(1), ErrOutOfBounds)
	assert.ErrorIs(t, ValidateTeamSize(7), ErrOutOfBounds)
}

func TestPartition(t *testing.T) {
	round := schedule.Rounds(7)[0]
	counts := DistributeBenches(Config{Students: 7, Rows: 2, BenchCapacity: 2})
	require.Equal(t, []int{2, 2}, counts)

	rows := Partition(round, counts)
	require.Len(t, rows, 2)

	assert.Len(t, rows[0].Benches, 2)
	assert.Len(t, rows[1].Benches, 1)
	assert.Zero(t, rows[0].Alone)
	assert.Equal(t, round.Alone, rows[1].Alone)

	var seated []int
	for _, row := range rows {
		seated = append(seated, row.Students()...)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, seated)
}

func TestPartitionKeepsPairs(t *testing.T) {
	round := schedule.Rounds(10)[3]
	rows := Partition(round, []int{1, 1, 1, 1, 1})

	for i, row := range rows {
		require.Len(t, row.Benches, 1)
		assert.Equal(t, round.Pairs[i], schedule.NewPair(row.Benches[0][0], row.Benches[0][1]))
	}
}

func TestBenchSwapped(t *testing.T) {
	assert.Equal(t, Bench{4, 1}, Bench{1, 4}.Swapped())
}
