package astar

// Test bridge exposing the unexported frontier and ledger to astar_test.
// It is compiled only with the package tests.

// Frontier wraps frontier for white-box tests.
type Frontier[N comparable, C Cost] struct{ fr *frontier[N, C] }

// NewFrontier_TestOnly returns an empty frontier.
func NewFrontier_TestOnly[N comparable, C Cost]() Frontier[N, C] {
	return Frontier[N, C]{fr: newFrontier[N, C]()}
}

// InsertOrImprove forwards to frontier.insertOrImprove.
func (f Frontier[N, C]) InsertOrImprove(node N, key C) bool { return f.fr.insertOrImprove(node, key) }

// PopMinimum forwards to frontier.popMinimum.
func (f Frontier[N, C]) PopMinimum() (N, C, bool) { return f.fr.popMinimum() }

// Len forwards to frontier.Len.
func (f Frontier[N, C]) Len() int { return f.fr.Len() }

// Ledger wraps ledger for white-box tests.
type Ledger[N comparable, C Cost] struct{ l *ledger[N, C] }

// NewLedger_TestOnly returns a ledger seeded with start.
func NewLedger_TestOnly[N comparable, C Cost](start N) Ledger[N, C] {
	l := newLedger[N, C]()
	l.seed(start)

	return Ledger[N, C]{l: l}
}

// TryRelax forwards to ledger.tryRelax.
func (l Ledger[N, C]) TryRelax(node, prev N, step, g C) bool {
	return l.l.tryRelax(node, prev, step, g)
}

// G forwards to ledger.g.
func (l Ledger[N, C]) G(node N) (C, bool) { return l.l.g(node) }

// PathTo forwards to ledger.pathTo.
func (l Ledger[N, C]) PathTo(node N) ([]N, C) { return l.l.pathTo(node) }
