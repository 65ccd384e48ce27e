// Package gwo - largest-value-priority (LVP) decoding.
//
// LVP turns any finite position vector into a permutation: sort the
// coordinates by value descending and assign rank r (0-indexed, in that
// order) to the coordinate's original index. Ties break toward the lower
// original index - an explicit rule, so decoding is a pure deterministic
// function of the vector and runs reproduce bit-for-bit.
//
// The bijection holds for every input regardless of value distribution;
// continuous noise always lands on a valid discrete assignment.
package gwo

import "sort"

// Decode returns the LVP permutation of position.
//
// Complexity: O(n log n) time, O(n) space.
func Decode(position []float64) []int {
	var (
		n    = len(position)
		idx  = make([]int, n)
		perm = make([]int, n)
	)
	decodeInto(position, idx, perm)

	return perm
}

// decodeInto is the allocation-free core of Decode: idx is an n-length
// scratch slice, perm the n-length destination. The pack update calls this
// once per wolf per iteration, so both buffers are reused across calls.
func decodeInto(position []float64, idx, perm []int) {
	n := len(position)

	var i int
	for i = 0; i < n; i++ {
		idx[i] = i
	}

	// Value descending; equal values resolve to the lower original index.
	sort.Slice(idx, func(a, b int) bool {
		va, vb := position[idx[a]], position[idx[b]]
		if va != vb {
			return va > vb
		}

		return idx[a] < idx[b]
	})

	// idx[r] is the original index holding rank r.
	var r int
	for r = 0; r < n; r++ {
		perm[idx[r]] = r
	}
}
