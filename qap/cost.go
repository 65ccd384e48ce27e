// Package qap - the cost evaluator.
//
// Cost is the single scoring function shared by every search component
// (pack evaluation, tabu neighborhoods, brute-force cross-checks in tests).
// It is deliberately minimal: pure, deterministic, allocation-free.
//
// Contract:
//   - perm must be a bijection on {0,…,n−1}; behavior on anything else is
//     undefined (not validated - the LVP decoder is the sole producer and
//     guarantees well-formedness; use Problem.ValidatePermutation at
//     adapter boundaries).
//
// Complexity: O(n²) time, O(1) space.
package qap

// Cost returns Σᵢⱼ F[i][j]·D[perm[i]][perm[j]] as an int64.
// For non-negative matrices the result is non-negative; accumulation is
// 64-bit wide so instances with n in the hundreds and large entries do not
// overflow.
func Cost(p *Problem, perm []int) int64 {
	var (
		n    = p.n
		cost int64
		i, j int
		base int // row offset into the linearized flow matrix
		loc  int // perm[i], hoisted out of the inner loop
	)

	for i = 0; i < n; i++ {
		base = i * n
		loc = perm[i] * n
		for j = 0; j < n; j++ {
			cost += p.flow[base+j] * p.dist[loc+perm[j]]
		}
	}

	return cost
}
