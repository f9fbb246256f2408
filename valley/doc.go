// Package valley routes an expedition through a walled basin swept by
// blizzards that move one tile per minute and wrap around at the walls.
//
// The search space is time-expanded: a node is a (minute, position) State, and
// the successors of a state are the four moves plus waiting, kept only if no
// blizzard occupies the tile at the next minute. Blizzard layouts are computed
// on demand and memoised in a BlizzardCache owned by the Valley; the search
// engine never sees it.
//
// Coordinates: X runs over the interior columns (the left wall column is
// stripped), Y over every row including the two wall rows. The entrance sits
// on row 0 and the exit on the last row.
//
// Errors:
//
//   - ErrEmpty: no input.
//   - ErrTooNarrow: fewer than three rows or no interior column.
//   - ErrNoEntrance / ErrNoExit: no gap in the top / bottom wall.
//   - astar.ErrNotFound: the exit cannot be reached.
package valley
