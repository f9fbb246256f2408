package valley

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2022/internal/puzzle"
)

// Day is the puzzle day solved by this package.
const Day = 24

// Solve answers both parts: the minutes to reach the exit, and the minutes
// for the exit, entrance, exit round trip.
func Solve(input string, log *zap.Logger) (puzzle.Answer, error) {
	v, err := Parse(input, WithLogger(log))
	if err != nil {
		return puzzle.Answer{}, err
	}

	single, err := v.ShortestPath()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("valley: part 1: %w", err)
	}
	trip, err := v.ShortestRoundTrip()
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("valley: part 2: %w", err)
	}

	if log != nil {
		log.Debug("valley solved",
			zap.Int("width", v.Width),
			zap.Int("height", v.Height),
			zap.Int("blizzards", v.Blizzards(0).Count()),
			zap.Int("minutes", len(single)-1),
			zap.Int("round_trip", len(trip)-1),
			zap.Int("cached_minutes", v.Cache().Len()))
	}

	return puzzle.Answer{
		Part1: strconv.Itoa(len(single) - 1),
		Part2: strconv.Itoa(len(trip) - 1),
	}, nil
}
