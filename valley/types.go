package valley

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/aoc2022/gridgraph"
)

var (
	// ErrEmpty indicates an empty input.
	ErrEmpty = errors.New("valley: empty input")
	// ErrTooNarrow indicates a valley without interior rows or columns.
	ErrTooNarrow = errors.New("valley: valley too narrow")
	// ErrNoEntrance indicates the top wall has no gap.
	ErrNoEntrance = errors.New("valley: entrance not found")
	// ErrNoExit indicates the bottom wall has no gap.
	ErrNoExit = errors.New("valley: exit not found")
)

// Direction is the heading of a blizzard.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection converts '^', 'v', '<' or '>' into a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	case '>':
		return Right, true
	}

	return 0, false
}

// Rune returns the map symbol of d.
func (d Direction) Rune() rune {
	switch d {
	case Up:
		return '^'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '>'
	}
}

// Ground is the static shape of the valley.
type Ground struct {
	// Entrance and Exit are the columns of the gaps in the top and bottom walls.
	Entrance, Exit int
	// Width counts interior columns, Height counts all rows including walls.
	Width, Height int
}

// Start is the entrance tile on row 0.
func (g Ground) Start() gridgraph.Point { return gridgraph.Point{X: g.Entrance, Y: 0} }

// Goal is the exit tile on the last row.
func (g Ground) Goal() gridgraph.Point { return gridgraph.Point{X: g.Exit, Y: g.Height - 1} }

// Neighbors yields the tiles reachable from p in one move, in the order
// up, down, left, right. Wall rows only connect through the entrance and exit.
func (g Ground) Neighbors(p gridgraph.Point) iter.Seq[gridgraph.Point] {
	up, down, sides := true, true, true
	switch p.Y {
	case 0:
		up, sides = false, false
	case g.Height - 1:
		down, sides = false, false
	}
	if p.Y == 1 && p.X != g.Entrance {
		up = false
	}
	if p.Y == g.Height-2 && p.X != g.Exit {
		down = false
	}

	return func(yield func(gridgraph.Point) bool) {
		if up && !yield(p.Add(0, -1)) {
			return
		}
		if down && !yield(p.Add(0, 1)) {
			return
		}
		if !sides {
			return
		}
		if p.X > 0 && !yield(p.Add(-1, 0)) {
			return
		}
		if p.X < g.Width-1 {
			yield(p.Add(1, 0))
		}
	}
}

// period is the number of minutes after which every blizzard is back at
// its starting tile.
func (g Ground) period() int {
	return lcm(g.Width, g.Height-2)
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}

	return a / x * b
}

// State is a step of a route: the expedition stands on Position at Minute.
type State struct {
	Minute   int
	Position gridgraph.Point
}

// String formats s as "minute N at (x,y)".
func (s State) String() string {
	return fmt.Sprintf("minute %d at %v", s.Minute, s.Position)
}
