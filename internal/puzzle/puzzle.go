// Package puzzle holds the day registry shared by the solvers and the aoc CLI.
package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// ErrUnknownDay is returned by Lookup for a day without a registered solver.
var ErrUnknownDay = errors.New("puzzle: unknown day")

// Answer carries the printable results of both parts of a day.
type Answer struct {
	Part1, Part2 string
}

// Solver computes the Answer of one day from its raw input.
type Solver func(input string, log *zap.Logger) (Answer, error)

// Registry maps day numbers to solvers. It is not safe for concurrent
// registration; lookups after setup may run concurrently.
type Registry struct {
	solvers map[int]Solver
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register binds solver to day, replacing any previous binding.
func (r *Registry) Register(day int, solver Solver) {
	r.solvers[day] = solver
}

// Lookup returns the solver bound to day.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}
