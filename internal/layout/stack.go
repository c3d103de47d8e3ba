package layout

import (
	"math"
	"sort"
)

// Alignment positions a child within the cross-axis span a container allots
// to it.
type Alignment uint8

const (
	// AlignLeading pins the child to the leading (left/top) edge.
	AlignLeading Alignment = iota
	// AlignCenter centers the child.
	AlignCenter
	// AlignTrailing pins the child to the trailing (right/bottom) edge.
	AlignTrailing
)

// Offset returns the child's position within an allotted span, rounded to
// the nearest pixel.
func (a Alignment) Offset(allotted, child int) int {
	switch a {
	case AlignCenter:
		return int(math.Round(float64(allotted-child) * 0.5))
	case AlignTrailing:
		return allotted - child
	default:
		return 0
	}
}

// StackChild describes one child's major-axis flexibility for Distribute.
type StackChild struct {
	Ideal int
	Min   int
	Max   int // Unbounded for no maximum
}

// Distribute apportions available major-axis length among children.
//
// Every child starts at its ideal length. Surplus space goes to bounded
// children least-flexible-first (smallest max-ideal slack, ties broken by
// declaration order) until each reaches its maximum; whatever remains is
// split evenly among children with no maximum. A deficit is taken back in
// even rounds from every child still above its minimum.
func Distribute(children []StackChild, available int) []int {
	lengths := make([]int, len(children))
	total := 0
	for i, c := range children {
		lengths[i] = c.Ideal
		total += c.Ideal
	}
	switch {
	case available > total:
		grow(children, lengths, available-total)
	case available < total:
		shrink(children, lengths, total-available)
	}
	return lengths
}

func grow(children []StackChild, lengths []int, extra int) {
	// Bounded children first, least slack first.
	bounded := make([]int, 0, len(children))
	unbounded := make([]int, 0, len(children))
	for i, c := range children {
		if c.Max == Unbounded {
			unbounded = append(unbounded, i)
		} else if c.Max > c.Ideal {
			bounded = append(bounded, i)
		}
	}
	sort.SliceStable(bounded, func(a, b int) bool {
		sa := children[bounded[a]].Max - children[bounded[a]].Ideal
		sb := children[bounded[b]].Max - children[bounded[b]].Ideal
		return sa < sb
	})
	for _, i := range bounded {
		if extra == 0 {
			return
		}
		grant := children[i].Max - lengths[i]
		if grant > extra {
			grant = extra
		}
		lengths[i] += grant
		extra -= grant
	}
	if len(unbounded) == 0 || extra == 0 {
		return
	}
	share := extra / len(unbounded)
	rem := extra % len(unbounded)
	for k, i := range unbounded {
		lengths[i] += share
		if k < rem {
			lengths[i]++
		}
	}
}

func shrink(children []StackChild, lengths []int, deficit int) {
	for deficit > 0 {
		shrinkable := 0
		for i, c := range children {
			if lengths[i] > c.Min {
				shrinkable++
			}
		}
		if shrinkable == 0 {
			return
		}
		share := deficit / shrinkable
		if share == 0 {
			share = 1
		}
		for i, c := range children {
			if deficit == 0 {
				return
			}
			room := lengths[i] - c.Min
			if room <= 0 {
				continue
			}
			take := share
			if take > room {
				take = room
			}
			if take > deficit {
				take = deficit
			}
			lengths[i] -= take
			deficit -= take
		}
	}
}
