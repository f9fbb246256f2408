package gridgraph

import (
	"iter"
	"math"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// From2D is shorthand for NewGridGraph with the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(values, GridOptions{Conn: conn})
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// Value returns the cell value at p. It panics if p is out of bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors lazily yields the in-bounds neighbors of p in offset order
// (N, E, S, W for Conn4; clockwise from N for Conn8).
func (gg *GridGraph) Neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range gg.neighborOffsets {
			q := p.Add(d[0], d[1])
			if !gg.InBounds(q) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{X: idx % gg.Width, Y: idx / gg.Width}
}

// Cells yields every cell with its value in row-major order.
func (gg *GridGraph) Cells() iter.Seq2[Point, int] {
	return func(yield func(Point, int) bool) {
		for y, row := range gg.CellValues {
			for x, v := range row {
				if !yield(Point{X: x, Y: y}, v) {
					return
				}
			}
		}
	}
}

// CellsWithValue returns, in row-major order, every cell holding v.
// Complexity: O(W×H).
func (gg *GridGraph) CellsWithValue(v int) []Point {
	var out []Point
	for p, cv := range gg.Cells() {
		if cv == v {
			out = append(out, p)
		}
	}

	return out
}

// MinValue returns the smallest cell value.
// Complexity: O(W×H).
func (gg *GridGraph) MinValue() int {
	lowest := math.MaxInt
	for _, v := range gg.Cells() {
		lowest = min(lowest, v)
	}

	return lowest
}
