package hill

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2022/astar"
	"github.com/katalvlaran/aoc2022/gridgraph"
)

var (
	// ErrNoStart indicates the map has no 'S' square.
	ErrNoStart = errors.New("hill: map has no start square")
	// ErrNoEnd indicates the map has no 'E' square.
	ErrNoEnd = errors.New("hill: map has no end square")
	// ErrInvalidSquare indicates a rune that is not a height marker.
	ErrInvalidSquare = errors.New("hill: invalid square")
)

// Hill is a parsed elevation map. Heights are stored 0 ('a') to 25 ('z').
type Hill struct {
	Start, End gridgraph.Point

	grid *gridgraph.GridGraph
	log  *zap.Logger
}

// Option configures a Hill.
type Option func(*Hill)

// WithLogger routes debug output (search progress, rendered maps) to l.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hill) {
		if l != nil {
			h.log = l
		}
	}
}

// Parse reads an elevation map. Surrounding whitespace is ignored.
// If several 'S' or 'E' squares appear, the last one wins.
func Parse(input string, opts ...Option) (*Hill, error) {
	h := &Hill{log: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}

	var (
		rows             [][]int
		hasStart, hasEnd bool
		trimmed          = strings.TrimSpace(input)
	)
	for y, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimRight(line, "\r")
		row := make([]int, 0, len(line))
		for x, r := range []rune(line) {
			switch {
			case r == 'S':
				h.Start, hasStart = gridgraph.Point{X: x, Y: y}, true
				r = 'a'
			case r == 'E':
				h.End, hasEnd = gridgraph.Point{X: x, Y: y}, true
				r = 'z'
			case r < 'a' || r > 'z':
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrInvalidSquare, r, x, y)
			}
			row = append(row, int(r-'a'))
		}
		rows = append(rows, row)
	}

	grid, err := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("hill: %w", err)
	}
	if !hasStart {
		return nil, ErrNoStart
	}
	if !hasEnd {
		return nil, ErrNoEnd
	}
	h.grid = grid

	return h, nil
}

// Width returns the number of columns.
func (h *Hill) Width() int { return h.grid.Width }

// Height returns the number of rows.
func (h *Hill) Height() int { return h.grid.Height }

// Elevation returns the height of p, 0 for 'a' through 25 for 'z'.
func (h *Hill) Elevation(p gridgraph.Point) int { return h.grid.Value(p) }

// ShortestPath searches the cheapest route from Start to End where every
// step climbs at most one level. Descents of any depth are allowed.
func (h *Hill) ShortestPath() (astar.Result[gridgraph.Point, int], error) {
	return h.searchFrom(h.Start)
}

// ShortestPathFromLowest returns the cheapest route from any lowest square to
// End. It searches backwards from End with the mirrored climbing rule and
// stops at the first lowest square popped. The returned path runs from End
// to that square.
//
// The remaining height is a consistent heuristic here: every reverse step
// descends at most one level, so reaching height 0 needs at least that many steps.
func (h *Hill) ShortestPathFromLowest() (astar.Result[gridgraph.Point, int], error) {
	return astar.Search(h.End, h.Start,
		h.successors(func(diff int) bool { return diff >= -1 }),
		func(d astar.Details[gridgraph.Point]) int { return h.grid.Value(d.Current) },
		astar.WithEndingCondition(func(current, _ gridgraph.Point) bool {
			return h.grid.Value(current) == 0
		}),
		astar.WithLogger[gridgraph.Point](h.log.Named("astar")),
	)
}

// ShortestPathFromLowestBruteForce runs ShortestPath from every lowest square
// and returns the minimum cost. Squares with no route are skipped.
// It returns astar.ErrNotFound if no lowest square reaches End.
func (h *Hill) ShortestPathFromLowestBruteForce() (int, error) {
	best, found := 0, false
	for _, p := range h.grid.CellsWithValue(0) {
		res, err := h.searchFrom(p)
		if errors.Is(err, astar.ErrNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if !found || res.Cost < best {
			best, found = res.Cost, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: no lowest square reaches %v", astar.ErrNotFound, h.End)
	}

	return best, nil
}

func (h *Hill) searchFrom(start gridgraph.Point) (astar.Result[gridgraph.Point, int], error) {
	return astar.Search(start, h.End,
		h.successors(func(diff int) bool { return diff <= 1 }),
		func(d astar.Details[gridgraph.Point]) int { return d.Current.Manhattan(d.Target) },
		astar.WithLogger[gridgraph.Point](h.log.Named("astar")),
	)
}

// successors yields the in-bounds neighbours whose height difference
// (to - from) satisfies allowed, each at cost 1.
func (h *Hill) successors(allowed func(diff int) bool) astar.SuccessorFunc[gridgraph.Point, int] {
	return func(current gridgraph.Point) iter.Seq[astar.Successor[gridgraph.Point, int]] {
		if ce := h.log.Check(zap.DebugLevel, "expand"); ce != nil {
			ce.Write(zap.Stringer("current", current), zap.String("map", "\n"+h.Render(current)))
		}

		return func(yield func(astar.Successor[gridgraph.Point, int]) bool) {
			from := h.grid.Value(current)
			for next := range h.grid.Neighbors(current) {
				if !allowed(h.grid.Value(next) - from) {
					continue
				}
				if !yield(astar.NewSuccessor(next, 1)) {
					return
				}
			}
		}
	}
}

// Render draws the map with '#' on current and 'E' on the end square.
// Rows are separated by newlines, without a trailing one.
func (h *Hill) Render(current gridgraph.Point) string {
	var sb strings.Builder
	sb.Grow((h.grid.Width + 1) * h.grid.Height)
	for y := 0; y < h.grid.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < h.grid.Width; x++ {
			p := gridgraph.Point{X: x, Y: y}
			switch p {
			case current:
				sb.WriteByte('#')
			case h.End:
				sb.WriteByte('E')
			default:
				sb.WriteByte(byte('a' + h.grid.Value(p)))
			}
		}
	}

	return sb.String()
}
