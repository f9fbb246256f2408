package gridgraph_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGridGraph_DeepCopy checks that later edits of the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	grid[0][0] = 99
	assert.Equal(t, 1, gg.Value(gridgraph.Point{}))
	assert.Equal(t, 2, gg.Width)
	assert.Equal(t, 2, gg.Height)
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	for _, p := range []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, gg.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, gg.InBounds(p), "InBounds(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

func TestNeighbors_Conn4Order(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	got := slices.Collect(gg.Neighbors(gridgraph.Point{X: 1, Y: 1}))
	want := []gridgraph.Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Neighbors mismatch (-want +got):\n%s", diff)
	}

	// corners drop out-of-bounds offsets
	got = slices.Collect(gg.Neighbors(gridgraph.Point{}))
	assert.Equal(t, []gridgraph.Point{{1, 0}, {0, 1}}, got)
}

func TestNeighbors_Conn8(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0}, {0, 1}}, gridgraph.Conn8)
	require.NoError(t, err)

	got := slices.Collect(gg.Neighbors(gridgraph.Point{}))
	assert.Equal(t, []gridgraph.Point{{1, 0}, {1, 1}, {0, 1}}, got)
	assert.Len(t, gg.NeighborOffsets(), 8)
}

func TestNeighbors_StopsEarly(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}}, gridgraph.Conn4)
	require.NoError(t, err)

	var n int
	for range gg.Neighbors(gridgraph.Point{X: 1, Y: 0}) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

//----------------------------------------------------------------------------//
// Lookup Tests
//----------------------------------------------------------------------------//

func TestIndexCoordinateRoundTrip(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, gridgraph.Conn4)
	require.NoError(t, err)

	for idx := range gg.Width * gg.Height {
		p := gg.Coordinate(idx)
		assert.Equal(t, idx, gg.Index(p))
		assert.Equal(t, idx, gg.Value(p), "cell value doubles as its index here")
	}
}

func TestCellsWithValueAndMin(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{3, 1, 4},
		{1, 5, 9},
		{2, 6, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Point{{1, 0}, {0, 1}, {2, 2}}, gg.CellsWithValue(1))
	assert.Empty(t, gg.CellsWithValue(7))
	assert.Equal(t, 1, gg.MinValue())
}

func TestPoint(t *testing.T) {
	p := gridgraph.Point{X: 2, Y: 3}
	assert.Equal(t, gridgraph.Point{X: 1, Y: 5}, p.Add(-1, 2))
	assert.Equal(t, 7, p.Manhattan(gridgraph.Point{X: -1, Y: 7}))
	assert.Equal(t, 0, p.Manhattan(p))
	assert.Equal(t, "(2,3)", p.String())
}
