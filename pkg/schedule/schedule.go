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

// Package schedule generates round-robin schedules which spread the
// pairings of a class across a whole "tournament" of rounds.
//
// 1 Schedule = {N-1} Rounds (N rounded up to even)
// 1 Round    = {N/2} Pairs, or ceil(N/TeamSize) Teams
package schedule

// Slot is a position in the circle used by the circle method. A slot either
// holds a real participant or is the phantom slot which balances an odd
// population, and which never appears in any generated output.
type Slot struct {
	ID      int
	Phantom bool
}

// circle is the rotating state of the circle method. Participant 1 is fixed
// in place while the rest of the slots rotate by a position every round.
type circle struct {
	fixed Slot
	list  []Slot
}

func newCircle(n int) *circle {
	effective := n + n%2

	c := &circle{
		fixed: Slot{ID: 1},
		list:  make([]Slot, effective-1),
	}

	for i := range c.list {
		id := i + 2
		c.list[i] = Slot{ID: id, Phantom: id > n}
	}

	return c
}

// Rounds returns the number of rounds after which every slot has met
// every other slot exactly once.
func (c *circle) Rounds() int {
	return len(c.list)
}

// Encounters folds the current circle into pairs of slots: the fixed slot
// meets the head of the list, and the rest of the list is folded in half.
func (c *circle) Encounters() [][2]Slot {
	encounters := make([][2]Slot, 0, len(c.list)/2+1)
	encounters = append(encounters, [2]Slot{c.fixed, c.list[0]})

	last := len(c.list) - 1
	for i := 0; i < last/2; i++ {
		encounters = append(encounters, [2]Slot{c.list[1+i], c.list[last-i]})
	}

	return encounters
}

// Ordering returns the full linear ordering of the circle, fixed slot first.
func (c *circle) Ordering() []Slot {
	return append([]Slot{c.fixed}, c.list...)
}

// Rotate moves the last slot of the list to its front.
func (c *circle) Rotate() {
	last := c.list[len(c.list)-1]
	copy(c.list[1:], c.list[:len(c.list)-1])
	c.list[0] = last
}
