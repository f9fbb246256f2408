// Package aoc2022 collects Advent of Code 2022 solutions built around a
// generic best-first search engine.
//
// Under the hood, everything is organized as small packages:
//
//	astar/      generic A*-family search over lazily generated graphs
//	gridgraph/  immutable integer grids, points and neighbor enumeration
//	hill/       day 12: climbing an elevation map
//	valley/     day 24: crossing a basin swept by moving blizzards
//	cmd/aoc     the CLI that reads inputs and prints the answers
//	examples/   small runnable programs using astar and gridgraph
//
// Quick start:
//
//	go run ./cmd/aoc run --all --input-dir input
//
// The search engine is usable on its own:
//
//	res, err := astar.Search(start, goal, successors, heuristic)
//
// See each package's doc.go for details.
package aoc2022
