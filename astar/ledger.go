package astar

// ledgerEntry is the best known g-score of a node, the predecessor that
// achieved it and the cost of the edge from that predecessor.
// The start node is the only entry without a predecessor.
type ledgerEntry[N comparable, C Cost] struct {
	g       C
	step    C
	prev    N
	hasPrev bool
}

// ledger maps every node ever relaxed to its ledgerEntry. It lives for one
// Search call and is the dominant memory cost on large implicit graphs.
type ledger[N comparable, C Cost] struct {
	entries map[N]ledgerEntry[N, C]
}

func newLedger[N comparable, C Cost]() *ledger[N, C] {
	return &ledger[N, C]{entries: make(map[N]ledgerEntry[N, C])}
}

// seed records start with g = 0 and no predecessor.
func (l *ledger[N, C]) seed(start N) {
	l.entries[start] = ledgerEntry[N, C]{}
}

// g returns the best known g-score of node.
func (l *ledger[N, C]) g(node N) (C, bool) {
	e, ok := l.entries[node]

	return e.g, ok
}

// Len returns the number of distinct nodes in the ledger.
func (l *ledger[N, C]) Len() int { return len(l.entries) }

// tryRelax records node as reached from prev over an edge of cost step with
// total g, iff node is unseen or g is strictly lower than the stored score.
// Existing entries are otherwise left untouched.
func (l *ledger[N, C]) tryRelax(node, prev N, step, g C) bool {
	if e, seen := l.entries[node]; seen && g >= e.g {
		return false
	}
	l.entries[node] = ledgerEntry[N, C]{g: g, step: step, prev: prev, hasPrev: true}

	return true
}

// pathTo walks predecessor links back from node to the entry without a
// predecessor and returns the chain start-first together with the sum of its
// edge costs. Only strictly lower g-scores ever replace an entry, so the chain
// cannot loop.
//
// The sum equals g(node) unless a predecessor on the chain improved after node
// was recorded and has not been expanded since; that only happens under an
// inconsistent heuristic, and the sum is then the true cost of the chain.
func (l *ledger[N, C]) pathTo(node N) ([]N, C) {
	var cost C
	path := []N{node}
	for cur := node; ; {
		e, ok := l.entries[cur]
		if !ok || !e.hasPrev {
			break
		}
		cost += e.step
		path = append(path, e.prev)
		cur = e.prev
	}
	// reverse to get start → node
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost
}
