// Package hill finds routes across an elevation map where each square is
// marked with a height from 'a' (lowest) to 'z' (highest).
//
// What:
//
//   - Parse reads the map; 'S' is the start at height 'a', 'E' the end at height 'z'.
//   - ShortestPath climbs from S to E, never more than one level per step.
//   - ShortestPathFromLowest finds the cheapest route from any lowest square
//     with a single reverse search seeded at E.
//   - ShortestPathFromLowestBruteForce runs one forward search per lowest
//     square and keeps the minimum.
//
// Every step costs 1. Routes are searched with astar.Search over the implicit
// grid graph; nothing is materialised.
//
// Errors:
//
//   - ErrInvalidSquare: a rune other than 'a'-'z', 'S' or 'E'.
//   - ErrNoStart / ErrNoEnd: the map lacks 'S' or 'E'.
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular: malformed map.
//   - astar.ErrNotFound: no route exists.
package hill
