// Package tabu - the 2-opt refinement loop.
//
// Design:
//   - Best-move policy: every iteration adopts the cheapest eligible
//     neighbor, improving or not; the best permutation seen along the walk
//     is what Refine returns. Accepting non-improving moves is the standard
//     TS escape from local optima.
//   - Eligibility: a swap is eligible when it is not tabu, or when its cost
//     beats the run-scoped best marker (aspiration override).
//   - Scoring swaps in place (swap, evaluate, swap back) keeps the
//     neighborhood scan allocation-free.
//
// Contracts:
//   - perm is a valid bijection and cost == qap.Cost(p, perm) on entry.
//   - Refine mutates perm in place and never leaves it worse than it came.
//
// Complexity: O(iterations · n³) time, O(n + tenure) space.
package tabu

import (
	"math"

	"github.com/Prajwal-k-tech/siliconspire/qap"
)

// Refine runs the 2-opt tabu walk from perm, rewrites perm with the best
// permutation found, and returns that permutation's cost.
//
// The walk stops after the iteration budget, or early when no eligible move
// exists (every swap tabu and none below the aspiration threshold).
func (s *Search) Refine(p *qap.Problem, perm []int, cost int64) int64 {
	n := p.N()
	if s.iterations == 0 || n < 2 {
		// Still fold the incoming cost into the run marker: the caller has
		// observed it, and later calls aspire against it.
		if cost < s.best {
			s.best = cost
		}
		return cost
	}

	var (
		cur      = make([]int, n)
		bestPerm = make([]int, n)
		bestCost = cost
		list     = newTabuList(s.tenure)
		iter     int
	)
	copy(cur, perm)
	copy(bestPerm, perm)
	if bestCost < s.best {
		s.best = bestCost
	}

	for iter = 0; iter < s.iterations; iter++ {
		i, j, moveCost, ok := bestMove(p, cur, list, s.best)
		if !ok {
			break // no eligible move in the whole neighborhood
		}

		// Adopt the move unconditionally (best-move policy).
		cur[i], cur[j] = cur[j], cur[i]

		if moveCost < bestCost {
			bestCost = moveCost
			copy(bestPerm, cur)
			if bestCost < s.best {
				s.best = bestCost
			}
		}

		list.push(i, j)
	}

	copy(perm, bestPerm)

	return bestCost
}

// bestMove scans the full C(n,2) swap neighborhood of cur and returns the
// cheapest eligible move. A tabu move is eligible only when its cost is
// strictly below aspiration. ok is false when no move is eligible.
//
// Ties resolve to the first pair in (i, j) scan order, keeping the walk
// deterministic.
//
// Complexity: C(n,2) candidate swaps, each scored with a full O(n²)
// evaluation; kept naive on purpose (see package doc).
func bestMove(p *qap.Problem, cur []int, list *tabuList, aspiration int64) (mi, mj int, cost int64, ok bool) {
	var (
		n = p.N()
		c int64
	)
	cost = math.MaxInt64

	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			cur[i], cur[j] = cur[j], cur[i]
			c = qap.Cost(p, cur)
			cur[i], cur[j] = cur[j], cur[i]

			if list.contains(i, j) && c >= aspiration {
				continue // tabu and not aspirated
			}
			if c < cost {
				mi, mj, cost, ok = i, j, c, true
			}
		}
	}

	return mi, mj, cost, ok
}
