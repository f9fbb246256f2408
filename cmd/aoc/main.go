// Command aoc solves Advent of Code 2022 puzzles from input files.
//
// Usage:
//
//	aoc run [day...]   solve the given days (default: the latest one)
//	aoc run --all      solve every registered day
//	aoc list           print the registered days
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/aoc2022/hill"
	"github.com/katalvlaran/aoc2022/internal/puzzle"
	"github.com/katalvlaran/aoc2022/valley"
)

func main() {
	root, teardown := newRootCmd(registry())
	err := root.Execute()
	teardown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// registry binds every implemented day to its solver.
func registry() *puzzle.Registry {
	r := puzzle.New()
	r.Register(hill.Day, hill.Solve)
	r.Register(valley.Day, valley.Solve)

	return r
}
