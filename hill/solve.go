package hill

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2022/internal/puzzle"
)

// Day is the puzzle day solved by this package.
const Day = 12

// Solve answers both parts: the cost from S to E, and the cost from the
// best lowest square to E.
func Solve(input string, log *zap.Logger) (puzzle.Answer, error) {
	h, err := Parse(input, WithLogger(log))
	if err != nil {
		return puzzle.Answer{}, err
	}

	forward, err := h.ShortestPath()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("hill: part 1: %w", err)
	}
	reverse, err := h.ShortestPathFromLowest()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("hill: part 2: %w", err)
	}

	if log != nil {
		log.Debug("hill solved",
			zap.Int("width", h.Width()),
			zap.Int("height", h.Height()),
			zap.Int("shortest", forward.Cost),
			zap.Int("shortest_from_lowest", reverse.Cost),
			zap.Int("expanded", forward.Expanded+reverse.Expanded))
	}

	return puzzle.Answer{
		Part1: strconv.Itoa(forward.Cost),
		Part2: strconv.Itoa(reverse.Cost),
	}, nil
}
