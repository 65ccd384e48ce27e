// Package tabu - sentinel errors, the Search run context, and tabu memory.
package tabu

import (
	"errors"
	"math"
)

var (
	// ErrBadIterations is returned when the per-call iteration budget is negative.
	ErrBadIterations = errors.New("tabu: iteration budget must be non-negative")

	// ErrBadTenure is returned when the tabu tenure is below 1.
	ErrBadTenure = errors.New("tabu: tenure must be at least 1")
)

// Search is the per-run Tabu Search context.
//
// It is deliberately narrow: iteration budget, tenure, and the run-scoped
// best-cost marker backing the aspiration criterion. The marker starts at
// "infinite", only ever decreases, and dies with the Search value - two runs
// never share aspiration state.
//
// Not safe for concurrent use; the solver is single-threaded by design.
type Search struct {
	iterations int
	tenure     int
	best       int64 // lowest cost observed by this run, aspiration threshold
}

// New builds a Search context.
//
// iterations is the budget per Refine call; 0 makes Refine a no-op (the
// caller's "Tabu Search disabled" path). tenure bounds the per-call FIFO of
// forbidden swaps.
//
// Errors: ErrBadIterations, ErrBadTenure.
func New(iterations, tenure int) (*Search, error) {
	if iterations < 0 {
		return nil, ErrBadIterations
	}
	if tenure < 1 {
		return nil, ErrBadTenure
	}

	return &Search{
		iterations: iterations,
		tenure:     tenure,
		best:       math.MaxInt64,
	}, nil
}

// BestCost reports the run-scoped best-cost marker. MaxInt64 until the first
// Refine call observes a cost.
func (s *Search) BestCost() int64 { return s.best }

// tabuList is a bounded FIFO of unordered swap pairs. Pairs are stored
// normalized (i < j), which makes the symmetric (j, i) lookup implicit.
type tabuList struct {
	tenure int
	pairs  [][2]int
}

func newTabuList(tenure int) *tabuList {
	return &tabuList{tenure: tenure, pairs: make([][2]int, 0, tenure+1)}
}

// push records a swap move, evicting the oldest entry once the list exceeds
// its tenure. len(l.pairs) ≤ tenure holds after every push.
func (l *tabuList) push(i, j int) {
	if j < i {
		i, j = j, i
	}
	l.pairs = append(l.pairs, [2]int{i, j})
	if len(l.pairs) > l.tenure {
		l.pairs = l.pairs[1:]
	}
}

// contains reports whether the swap (i, j) - in either orientation - is
// currently forbidden. O(tenure) linear scan; tenures are small by nature.
func (l *tabuList) contains(i, j int) bool {
	if j < i {
		i, j = j, i
	}

	var p [2]int
	for _, p = range l.pairs {
		if p[0] == i && p[1] == j {
			return true
		}
	}

	return false
}
