// Node, successor, heuristic and option types consumed by Search, plus its
// sentinel errors.

package astar

import (
	"errors"
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Sentinel errors returned by Search.
var (
	// ErrNotFound indicates that the frontier was exhausted before any popped
	// node satisfied the ending condition.
	ErrNotFound = errors.New("astar: no node satisfying the ending condition is reachable")

	// ErrNilSuccessors indicates that Search was called without a successor function.
	ErrNilSuccessors = errors.New("astar: successor function is nil")

	// ErrNilHeuristic indicates that Search was called without a heuristic function.
	ErrNilHeuristic = errors.New("astar: heuristic function is nil")
)

// Cost is the set of numeric types usable as edge costs, g-scores and
// heuristic estimates. Costs handed to Search must never be negative.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Successor pairs a reachable node with the cost of the edge leading into it.
type Successor[N comparable, C Cost] struct {
	Node N
	Cost C
}

// NewSuccessor builds a Successor.
func NewSuccessor[N comparable, C Cost](node N, cost C) Successor[N, C] {
	return Successor[N, C]{Node: node, Cost: cost}
}

// SuccessorFunc produces the successors of current. The sequence is consumed
// once per expansion and may be generated lazily.
type SuccessorFunc[N comparable, C Cost] func(current N) iter.Seq[Successor[N, C]]

// Successors adapts an eagerly built list to the lazy sequence a
// SuccessorFunc returns.
func Successors[N comparable, C Cost](list ...Successor[N, C]) iter.Seq[Successor[N, C]] {
	return slices.Values(list)
}

// Details is the read-only view handed to a HeuristicFunc: the node being
// evaluated and the nominal target of the search.
type Details[N comparable] struct {
	Current N
	Target  N
}

// HeuristicFunc estimates the remaining cost from d.Current to a node that
// ends the search. It is not required to be admissible; when it overestimates,
// the returned path is valid but not necessarily the cheapest.
type HeuristicFunc[N comparable, C Cost] func(d Details[N]) C

// EndingCondition reports whether a popped node ends the search.
type EndingCondition[N comparable] func(current, target N) bool

// Options configures Search. None of the options affect which paths are
// considered; they only decide what counts as done and what gets logged.
type Options[N comparable] struct {
	// EndingCondition decides whether a popped node is accepted.
	// Default: current == target.
	EndingCondition EndingCondition[N]

	// Logger receives debug-level diagnostics. Default: zap.L().
	Logger *zap.Logger
}

// Option represents a functional option for configuring Search.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with equality termination and the global logger.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		EndingCondition: func(current, target N) bool { return current == target },
		Logger:          zap.L(),
	}
}

// WithEndingCondition replaces the default equality test with fn.
// A nil fn keeps the default.
func WithEndingCondition[N comparable](fn EndingCondition[N]) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.EndingCondition = fn
		}
	}
}

// WithNoLogs silences all diagnostics of the search.
func WithNoLogs[N comparable]() Option[N] {
	return func(o *Options[N]) {
		o.Logger = zap.NewNop()
	}
}

// WithLogger routes diagnostics to l. A nil l keeps the current logger.
func WithLogger[N comparable](l *zap.Logger) Option[N] {
	return func(o *Options[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a successful search.
//   - Path: nodes from start to the accepted node, both included.
//   - Cost: sum of the edge costs along Path.
//   - Expanded: number of nodes popped from the frontier, re-expansions included.
type Result[N comparable, C Cost] struct {
	Path     []N
	Cost     C
	Expanded int
}

// Steps returns the number of edges on the path.
func (r Result[N, C]) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
