package schedule

// Team is a group of participants working together for a round.
type Team []int

// TeamRound is a single step of a team schedule.
type TeamRound struct {
	Index int
	Teams []Team
}

// Groups returns every team of the round.
func (round TeamRound) Groups() [][]int {
	groups := make([][]int, len(round.Teams))
	for i, team := range round.Teams {
		groups[i] = team
	}

	return groups
}

// TeamRounds generates a team schedule for n participants. It reuses the
// rotation of the pair schedule, and partitions each round's ordering of
// the real participants into consecutive teams of teamSize. The last team
// is shorter when n is not a multiple of teamSize.
//
// Unlike Rounds, the team schedule does not guarantee that every pair of
// participants shares a team at some point.
func TeamRounds(n, teamSize int) []TeamRound {
	if n < 2 || teamSize < 2 {
		return nil
	}

	c := newCircle(n)
	rounds := make([]TeamRound, 0, c.Rounds())

	for r := 0; r < c.Rounds(); r++ {
		ordering := make([]int, 0, n)
		for _, slot := range c.Ordering() {
			if !slot.Phantom {
				ordering = append(ordering, slot.ID)
			}
		}

		round := TeamRound{Index: r}
		for i := 0; i < len(ordering); i += teamSize {
			end := min(i+teamSize, len(ordering))
			round.Teams = append(round.Teams, Team(ordering[i:end:end]))
		}

		rounds = append(rounds, round)
		c.Rotate()
	}

	return rounds
}
