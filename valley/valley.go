package valley

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2022/astar"
	"github.com/katalvlaran/aoc2022/gridgraph"
)

// Valley is a parsed basin together with the blizzard memo its searches share.
type Valley struct {
	Ground

	cache *BlizzardCache
	log   *zap.Logger
}

// Option configures a Valley.
type Option func(*Valley)

// WithLogger routes debug output (search progress, minute-by-minute replays)
// to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(v *Valley) {
		if l != nil {
			v.log = l
		}
	}
}

// Parse reads a valley map. Surrounding whitespace is ignored. Interior
// runes other than '^', 'v', '<' and '>' count as clear ground.
func Parse(input string, opts ...Option) (*Valley, error) {
	v := &Valley{log: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmpty
	}
	lines := strings.Split(trimmed, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	width := utf8.RuneCountInString(lines[0]) - 2
	if len(lines) < 3 || width < 1 {
		return nil, fmt.Errorf("%w: %d rows, %d interior columns", ErrTooNarrow, len(lines), max(width, 0))
	}

	entrance := gapColumn(lines[0], width)
	if entrance < 0 {
		return nil, ErrNoEntrance
	}
	exit := gapColumn(lines[len(lines)-1], width)
	if exit < 0 {
		return nil, ErrNoExit
	}

	blizzards := make(Blizzards)
	for y := 1; y < len(lines)-1; y++ {
		for i, r := range []rune(lines[y]) {
			x := i - 1
			if x < 0 || x >= width {
				continue
			}
			if d, ok := ParseDirection(r); ok {
				p := gridgraph.Point{X: x, Y: y}
				blizzards[p] = append(blizzards[p], d)
			}
		}
	}

	v.Ground = Ground{Entrance: entrance, Exit: exit, Width: width, Height: len(lines)}
	v.cache = NewBlizzardCache(blizzards)

	return v, nil
}

// gapColumn returns the interior column of the first '.' in a wall row,
// or -1 if there is none.
func gapColumn(line string, width int) int {
	for i, r := range []rune(line) {
		if r == '.' && i >= 1 && i <= width {
			return i - 1
		}
	}

	return -1
}

// Blizzards returns the layout at minute, extending the memo as needed.
func (v *Valley) Blizzards(minute int) Blizzards {
	return v.cache.At(minute, v.Ground)
}

// Cache exposes the memo shared by every search on v.
func (v *Valley) Cache() *BlizzardCache { return v.cache }

// ShortestPath returns the fastest route from the entrance to the exit,
// starting at minute 0. The number of minutes is len(path)-1.
func (v *Valley) ShortestPath() ([]State, error) {
	path, err := v.leg(State{Position: v.Start()}, v.Goal())
	if err != nil {
		return nil, err
	}
	if ce := v.log.Check(zap.DebugLevel, "route"); ce != nil {
		ce.Write(zap.Int("minutes", len(path)-1), zap.String("replay", "\n"+v.Replay(path)))
	}

	return path, nil
}

// ShortestRoundTrip goes to the exit, back to the entrance and to the exit
// again, each leg as fast as possible given where the previous one ended.
// Legs are joined without repeating the state they share.
func (v *Valley) ShortestRoundTrip() ([]State, error) {
	cur := State{Position: v.Start()}
	path := []State{cur}
	for i, target := range []gridgraph.Point{v.Goal(), v.Start(), v.Goal()} {
		leg, err := v.leg(cur, target)
		if err != nil {
			return nil, fmt.Errorf("valley: leg %d: %w", i+1, err)
		}
		v.log.Debug("leg done",
			zap.Int("leg", i+1),
			zap.Int("minutes", len(leg)-1),
			zap.Int("arrival", leg[len(leg)-1].Minute))
		path = append(path, leg[1:]...)
		cur = path[len(path)-1]
	}

	return path, nil
}

// phaseState is the search node of a leg. Blizzards repeat every period
// minutes, so standing on a tile at a given phase is the same situation
// whatever the absolute minute; the earliest arrival dominates and the node
// space is bounded by period × tiles.
type phaseState struct {
	phase    int
	position gridgraph.Point
}

// leg searches from 'from' until the expedition stands on target. Every step
// lasts one minute, so the i-th node of the found path is reached at
// from.Minute+i.
func (v *Valley) leg(from State, target gridgraph.Point) ([]State, error) {
	period := v.period()
	start := phaseState{phase: from.Minute % period, position: from.Position}

	res, err := astar.Search(start, phaseState{position: target},
		v.successors(period),
		func(d astar.Details[phaseState]) int { return d.Current.position.Manhattan(d.Target.position) },
		astar.WithEndingCondition(func(current, goal phaseState) bool {
			return current.position == goal.position
		}),
		astar.WithLogger[phaseState](v.log.Named("astar")),
	)
	if err != nil {
		return nil, err
	}

	path := make([]State, len(res.Path))
	for i, n := range res.Path {
		path[i] = State{Minute: from.Minute + i, Position: n.position}
	}

	return path, nil
}

// successors yields the moves and the wait that avoid every blizzard at the
// next phase.
func (v *Valley) successors(period int) astar.SuccessorFunc[phaseState, int] {
	return func(current phaseState) iter.Seq[astar.Successor[phaseState, int]] {
		return func(yield func(astar.Successor[phaseState, int]) bool) {
			phase := (current.phase + 1) % period
			blizzards := v.cache.At(phase, v.Ground)
			try := func(p gridgraph.Point) bool {
				if blizzards.Has(p) {
					return true
				}

				return yield(astar.NewSuccessor(phaseState{phase: phase, position: p}, 1))
			}
			for p := range v.Neighbors(current.position) {
				if !try(p) {
					return
				}
			}
			try(current.position)
		}
	}
}

// Render draws the valley at minute with the expedition as 'E' on position.
// A tile holding several blizzards shows their count.
func (v *Valley) Render(minute int, position gridgraph.Point) string {
	blizzards := v.cache.At(minute, v.Ground)
	var sb strings.Builder
	sb.Grow((v.Width + 3) * v.Height)
	for y := 0; y < v.Height; y++ {
		sb.WriteByte('#')
		for x := 0; x < v.Width; x++ {
			p := gridgraph.Point{X: x, Y: y}
			switch {
			case p == position:
				sb.WriteByte('E')
			case y == 0:
				sb.WriteByte(wallTile(x == v.Entrance))
			case y == v.Height-1:
				sb.WriteByte(wallTile(x == v.Exit))
			default:
				switch ds := blizzards[p]; len(ds) {
				case 0:
					sb.WriteByte('.')
				case 1:
					sb.WriteRune(ds[0].Rune())
				default:
					sb.WriteString(strconv.Itoa(len(ds))[:1])
				}
			}
		}
		sb.WriteString("#\n")
	}

	return sb.String()
}

func wallTile(gap bool) byte {
	if gap {
		return '.'
	}

	return '#'
}

// String renders minute 0 with the expedition at the entrance.
func (v *Valley) String() string {
	return v.Render(0, v.Start())
}

// Replay renders every state of path, each headed by the move that led to it.
func (v *Valley) Replay(path []State) string {
	if len(path) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Initial state:\n")
	sb.WriteString(v.Render(path[0].Minute, path[0].Position))
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		fmt.Fprintf(&sb, "\nMinute %d, %s:\n", cur.Minute, describeMove(prev.Position, cur.Position))
		sb.WriteString(v.Render(cur.Minute, cur.Position))
	}

	return sb.String()
}

func describeMove(from, to gridgraph.Point) string {
	switch {
	case to == from:
		return "wait"
	case to.X < from.X:
		return "move left"
	case to.X > from.X:
		return "move right"
	case to.Y < from.Y:
		return "move up"
	default:
		return "move down"
	}
}
