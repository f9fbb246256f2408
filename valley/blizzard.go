package valley

import (
	"slices"

	"github.com/katalvlaran/aoc2022/gridgraph"
)

// Blizzards maps an interior tile to the headings of the blizzards on it.
type Blizzards map[gridgraph.Point][]Direction

// Has reports whether any blizzard occupies p.
func (b Blizzards) Has(p gridgraph.Point) bool {
	_, ok := b[p]

	return ok
}

// Count returns the total number of blizzards.
func (b Blizzards) Count() int {
	var n int
	for _, ds := range b {
		n += len(ds)
	}

	return n
}

// Next moves every blizzard one tile along its heading. Blizzards leaving
// the interior re-enter on the opposite side: rows wrap within 1..Height-2,
// columns within 0..Width-1. Headings sharing a tile are kept sorted.
func (b Blizzards) Next(g Ground) Blizzards {
	next := make(Blizzards, len(b))
	top, bottom := 1, g.Height-2
	for p, ds := range b {
		for _, d := range ds {
			q := p
			switch d {
			case Up:
				q.Y = wrapDec(q.Y, top, bottom)
			case Down:
				q.Y = wrapInc(q.Y, top, bottom)
			case Left:
				q.X = wrapDec(q.X, 0, g.Width-1)
			case Right:
				q.X = wrapInc(q.X, 0, g.Width-1)
			}
			next[q] = append(next[q], d)
		}
	}
	for _, ds := range next {
		slices.Sort(ds)
	}

	return next
}

func wrapInc(v, lo, hi int) int {
	if v >= hi {
		return lo
	}

	return v + 1
}

func wrapDec(v, lo, hi int) int {
	if v <= lo {
		return hi
	}

	return v - 1
}

// BlizzardCache memoises blizzard layouts by minute. Minute 0 is the parsed
// layout; later minutes are derived one at a time from their predecessor.
// Layouts repeat every lcm(Width, Height-2) minutes, so the cache never holds
// more than one period. A BlizzardCache is not safe for concurrent use.
type BlizzardCache struct {
	states []Blizzards
}

// NewBlizzardCache returns a cache seeded with the minute-0 layout.
func NewBlizzardCache(initial Blizzards) *BlizzardCache {
	return &BlizzardCache{states: []Blizzards{initial}}
}

// At returns the layout at minute, computing and storing every missing
// minute of the period up to it. minute must not be negative.
func (c *BlizzardCache) At(minute int, g Ground) Blizzards {
	minute %= g.period()
	for len(c.states) <= minute {
		c.states = append(c.states, c.states[len(c.states)-1].Next(g))
	}

	return c.states[minute]
}

// Peek returns the layout at minute if it is already cached. Unlike At it
// does not fold minute into the period.
func (c *BlizzardCache) Peek(minute int) (Blizzards, bool) {
	if minute < 0 || minute >= len(c.states) {
		return nil, false
	}

	return c.states[minute], true
}

// Len returns the number of cached minutes, minute 0 included. It never
// exceeds the period.
func (c *BlizzardCache) Len() int { return len(c.states) }
