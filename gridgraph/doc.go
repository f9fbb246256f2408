// Package gridgraph treats a rectangular 2D grid of integer cells as an
// implicit graph, ready to be handed to a lazy search such as astar.Search.
//
// What:
//
//   - GridGraph wraps an immutable, deep-copied [][]int grid.
//   - Point is a comparable (x, y) coordinate with Manhattan distance.
//   - Neighbors yields in-bounds neighbors lazily, in a fixed order.
//   - CellsWithValue and MinValue locate cells by value.
//
// Complexity:
//
//   - NewGridGraph:   O(W×H) time and memory.
//   - Neighbors:      O(d) per call (d = number of neighbors, 4 or 8).
//   - CellsWithValue: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
