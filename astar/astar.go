// Package astar implements a generic best-first (A*-family) search over
// implicitly defined graphs.
//
// The graph is never materialised: the caller supplies a SuccessorFunc that
// lazily yields the neighbours of a node together with their step costs, a
// HeuristicFunc estimating the remaining cost, and optionally an
// EndingCondition deciding which popped node counts as the goal.
//
// Notes on implementation choices:
//
//   - The frontier is ordered by f = g + h; equal keys are served in insertion
//     order (an improved entry counts as freshly inserted).
//   - A ledger entry is replaced only by a strictly lower g-score; that is the
//     sole reason a node is queued again.
//   - There is no closed set. A node whose g-score improves after it was popped
//     is queued and expanded again, which keeps the search correct under
//     non-admissible heuristics.
//   - There is no cancellation. Unbounded graphs or misleading heuristics can
//     make Search run for a long time; bound the state space in the callbacks.
package astar

import (
	"fmt"

	"go.uber.org/zap"
)

// Search finds a path from start to a node accepted by the ending condition
// (by default, a node equal to target).
//
// Returns:
//
//   - Result with the path (start first) and its cost on success.
//   - ErrNotFound if the frontier runs dry first.
//   - ErrNilSuccessors / ErrNilHeuristic if a callback is missing.
//
// With an admissible, consistent heuristic the path is a cheapest one. With
// any other heuristic it is a valid path whose cost is the sum of its edges.
// Panics raised by the callbacks are not recovered.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for consistent heuristics, where V and E count the
//     explored nodes and generated successors; re-expansions add to this otherwise.
//   - Space: O(V) for the ledger and frontier.
func Search[N comparable, C Cost](
	start, target N,
	successors SuccessorFunc[N, C],
	heuristic HeuristicFunc[N, C],
	opts ...Option[N],
) (Result[N, C], error) {
	// 1) Validate callbacks
	if successors == nil {
		return Result[N, C]{}, ErrNilSuccessors
	}
	if heuristic == nil {
		return Result[N, C]{}, ErrNilHeuristic
	}

	// 2) Build options
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// 3) Run
	r := &runner[N, C]{
		target:     target,
		successors: successors,
		heuristic:  heuristic,
		done:       cfg.EndingCondition,
		log:        cfg.Logger,
		open:       newFrontier[N, C](),
		ledger:     newLedger[N, C](),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state of a single Search call.
type runner[N comparable, C Cost] struct {
	target     N
	successors SuccessorFunc[N, C]
	heuristic  HeuristicFunc[N, C]
	done       EndingCondition[N]
	log        *zap.Logger

	open     *frontier[N, C]
	ledger   *ledger[N, C]
	expanded int
}

// init seeds the ledger and the frontier with start.
func (r *runner[N, C]) init(start N) {
	r.ledger.seed(start)
	r.open.insertOrImprove(start, r.heuristic(Details[N]{Current: start, Target: r.target}))
}

// process is the pop/test/expand loop.
func (r *runner[N, C]) process() (Result[N, C], error) {
	for {
		current, f, ok := r.open.popMinimum()
		if !ok {
			r.log.Debug("search exhausted",
				zap.Int("expanded", r.expanded),
				zap.Int("known", r.ledger.Len()))

			return Result[N, C]{Expanded: r.expanded}, fmt.Errorf("%w: frontier exhausted after %d expansions",
				ErrNotFound, r.expanded)
		}
		r.expanded++
		g, _ := r.ledger.g(current)

		if ce := r.log.Check(zap.DebugLevel, "pop"); ce != nil {
			ce.Write(
				zap.Any("node", current),
				zap.Any("g", g),
				zap.Any("f", f),
				zap.Int("open", r.open.Len()))
		}

		if r.done(current, r.target) {
			path, cost := r.ledger.pathTo(current)
			r.log.Debug("search finished",
				zap.Any("cost", cost),
				zap.Int("steps", len(path)-1),
				zap.Int("expanded", r.expanded),
				zap.Int("known", r.ledger.Len()))

			return Result[N, C]{Path: path, Cost: cost, Expanded: r.expanded}, nil
		}

		r.relax(current, g)
	}
}

// relax offers every successor of current to the ledger and queues the ones
// whose g-score strictly improved.
func (r *runner[N, C]) relax(current N, g C) {
	for s := range r.successors(current) {
		candidate := g + s.Cost
		if !r.ledger.tryRelax(s.Node, current, s.Cost, candidate) {
			continue
		}
		h := r.heuristic(Details[N]{Current: s.Node, Target: r.target})
		r.open.insertOrImprove(s.Node, candidate+h)
	}
}
