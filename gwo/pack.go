// Package gwo - the GWO position update.
//
// Per coordinate, a wolf is pulled toward each leader L by
//
//	A = 2·a·r1 − a        (r1 fresh uniform in (−1, 1))
//	C = 2·r2              (r2 fresh uniform in (−1, 1))
//	D_L = |C·L[i] − w[i]|
//	X_L = L[i] − A·D_L
//
// and the new coordinate is the mean of the three leader estimates, clamped
// back into [−1, 1]. The control scalar a shrinks linearly from 2 to 0 over
// the run: large a lets |A| exceed 1 and wolves overshoot their leaders
// (exploration), a near 0 contracts the pack onto them (exploitation).
//
// Draw order is fixed - per wolf, per coordinate, two draws each for alpha,
// beta, delta in that order - so a seed pins the whole trajectory.
package gwo

import (
	"math"
	"math/rand"
)

// updatePosition moves w toward the three leaders under control scalar a.
// Positions only; the caller re-decodes and re-scores afterwards.
//
// Complexity: O(n) time, O(1) space.
func updatePosition(w, alpha, beta, delta *Wolf, a float64, rng *rand.Rand) {
	var (
		i       int
		x, y, z float64
	)
	for i = range w.Position {
		x = leaderEstimate(alpha.Position[i], w.Position[i], a, rng)
		y = leaderEstimate(beta.Position[i], w.Position[i], a, rng)
		z = leaderEstimate(delta.Position[i], w.Position[i], a, rng)
		w.Position[i] = clamp((x + y + z) / 3.0)
	}
}

// leaderEstimate computes X_L for one coordinate, consuming exactly two
// draws from rng.
func leaderEstimate(lead, pos, a float64, rng *rand.Rand) float64 {
	var (
		r1 = unit(rng)
		r2 = unit(rng)
		A  = 2*a*r1 - a
		C  = 2 * r2
	)

	return lead - A*math.Abs(C*lead-pos)
}

// jitterInPlace perturbs every coordinate with uniform noise in
// [−amp, +amp], then re-clamps. Called after the GWO update (and at init)
// when jitter is enabled; its purpose is to keep decoded permutations
// diverse once the continuous positions cluster around the leaders.
func jitterInPlace(position []float64, amp float64, rng *rand.Rand) {
	var i int
	for i = range position {
		position[i] = clamp(position[i] + unit(rng)*amp)
	}
}

// clamp restricts v to [−1, 1].
func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}

	return v
}
