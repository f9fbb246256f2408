package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2022/gridgraph"
)

// ExampleGridGraph_Neighbors walks the orthogonal neighbors of a corner
// and an interior cell.
func ExampleGridGraph_Neighbors() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 1, 2},
		{3, 4, 5},
	}, gridgraph.Conn4)

	for _, p := range []gridgraph.Point{{0, 0}, {1, 1}} {
		fmt.Printf("%v:", p)
		for q := range gg.Neighbors(p) {
			fmt.Printf(" %v=%d", q, gg.Value(q))
		}
		fmt.Println()
	}

	// Output:
	// (0,0): (1,0)=1 (0,1)=3
	// (1,1): (1,0)=1 (2,1)=5 (0,1)=3
}

// ExampleGridGraph_CellsWithValue locates every lowest cell.
func ExampleGridGraph_CellsWithValue() {
	gg, _ := gridgraph.From2D([][]int{
		{0, 1, 0},
		{2, 0, 3},
	}, gridgraph.Conn4)

	fmt.Println(gg.CellsWithValue(gg.MinValue()))

	// Output:
	// [(0,0) (2,0) (1,1)]
}
