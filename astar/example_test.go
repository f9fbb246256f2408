package astar_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/aoc2022/astar"
)

// ExampleSearch_fixedTarget finds the cheapest route to a concrete node with
// a distance heuristic on an implicit number line where stepping +1 costs 1
// and doubling costs 2.
func ExampleSearch_fixedTarget() {
	successors := func(n int) iter.Seq[astar.Successor[int, int]] {
		return astar.Successors(
			astar.NewSuccessor(n+1, 1),
			astar.NewSuccessor(n*2, 2),
		)
	}
	// Nodes past the target can never come back, so any estimate there is
	// admissible; below the target the estimate stays at zero.
	heuristic := func(d astar.Details[int]) int {
		if d.Current >= d.Target {
			return d.Current - d.Target
		}
		return 0
	}

	res, err := astar.Search(1, 10, successors, heuristic, astar.WithNoLogs[int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path, "cost:", res.Cost)
	// Output: path: [1 2 4 5 10] cost: 6
}

// ExampleSearch_endingCondition stops at the first node with a property
// instead of a specific node; the target is only nominal.
func ExampleSearch_endingCondition() {
	successors := func(n int) iter.Seq[astar.Successor[int, int]] {
		return astar.Successors(astar.NewSuccessor(n+3, 1), astar.NewSuccessor(n+5, 1))
	}
	zero := func(astar.Details[int]) int { return 0 }
	divisibleBy7 := func(current, _ int) bool { return current > 0 && current%7 == 0 }

	res, err := astar.Search(0, 0, successors, zero,
		astar.WithEndingCondition(divisibleBy7),
		astar.WithNoLogs[int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reached", res.Path[len(res.Path)-1], "in", res.Steps(), "steps")
	// Output: reached 14 in 4 steps
}
