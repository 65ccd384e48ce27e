// Package gwo - the hybrid orchestrator.
//
// Solve owns the Problem (read-only) and the pack (read-write) for the
// run's lifetime, and drives the state machine
//
//	INIT → ITERATE(k), k ∈ [0, MaxIterations) → DONE
//
// per iteration: move every wolf toward the leaders, decode and score,
// re-rank, promote strictly better candidates into the leader slots, and on
// every TSEvery-th iteration hand the alpha to Tabu Search and publish the
// refined alpha back into pack slot 0 explicitly.
//
// Leader rule, applied independently per slot: leader[k] is replaced by
// pack[k] iff pack[k].Fitness < leader[k].Fitness. Alpha is therefore
// monotone non-increasing across iterations. Beta and delta are compared
// against the pack's 2nd and 3rd rank only - never against each other - so
// after a reshuffle a slot can briefly hold a worse cost than an earlier
// occupant of the slot above. That asymmetry is the contract, not a bug;
// changing it changes the search trajectory.
package gwo

import (
	"sort"

	"github.com/Prajwal-k-tech/siliconspire/qap"
	"github.com/Prajwal-k-tech/siliconspire/tabu"
)

// Solve runs the full GWO + Tabu Search hybrid and returns the best
// assignment found.
//
// Errors: ErrNilProblem or an Options sentinel; nothing else. A validated
// run always completes (no early stopping, no timeouts).
//
// Complexity: O(MaxIterations · (PackSize·n² + TSIterations·n⁴ / TSEvery))
// in the worst case; memory O(PackSize·n).
func Solve(p *qap.Problem, opts Options) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	var (
		n   = p.N()
		rng = rngFromSeed(opts.Seed)
		idx = make([]int, n) // shared decode scratch
	)

	// Per-run Tabu Search context; the aspiration marker lives and dies
	// with this run. Parameters were validated above, so New cannot fail.
	ts, err := tabu.New(opts.TSIterations, opts.TabuTenure)
	if err != nil {
		return Result{}, err
	}

	// INIT: random pack, decode + score, rank, seat the leaders.
	wolves := make([]Wolf, opts.PackSize)
	var w, i int
	for w = range wolves {
		wolves[w] = Wolf{
			Position:    make([]float64, n),
			Permutation: make([]int, n),
		}
		for i = 0; i < n; i++ {
			wolves[w].Position[i] = unit(rng)
		}
		if opts.Jitter > 0 {
			jitterInPlace(wolves[w].Position, opts.Jitter, rng)
		}
		decodeInto(wolves[w].Position, idx, wolves[w].Permutation)
		wolves[w].Fitness = qap.Cost(p, wolves[w].Permutation)
	}
	rankPack(wolves)

	alpha := wolves[0].clone()
	beta := wolves[1].clone()
	delta := wolves[2].clone()

	report := func(iteration int) {
		if opts.Progress != nil {
			opts.Progress(iteration, alpha.Fitness)
		}
	}
	report(0)

	// ITERATE(k).
	var (
		k        int
		a        float64
		improved bool
	)
	for k = 0; k < opts.MaxIterations; k++ {
		// Exploration radius: linear 2 → 0 over the budget.
		a = 2.0 - 2.0*float64(k)/float64(opts.MaxIterations)

		for w = range wolves {
			updatePosition(&wolves[w], &alpha, &beta, &delta, a, rng)
			if opts.Jitter > 0 {
				jitterInPlace(wolves[w].Position, opts.Jitter, rng)
			}
			decodeInto(wolves[w].Position, idx, wolves[w].Permutation)
			wolves[w].Fitness = qap.Cost(p, wolves[w].Permutation)
		}
		rankPack(wolves)

		// Per-slot leader promotion (strict improvement only).
		improved = false
		if wolves[0].Fitness < alpha.Fitness {
			alpha.copyFrom(&wolves[0])
			improved = true
		}
		if wolves[1].Fitness < beta.Fitness {
			beta.copyFrom(&wolves[1])
		}
		if wolves[2].Fitness < delta.Fitness {
			delta.copyFrom(&wolves[2])
		}

		// Intensification: refine the alpha in place, then publish it back
		// into slot 0 as an explicit replacement (no aliasing with the pack).
		if opts.TSIterations > 0 && (k+1)%opts.TSEvery == 0 {
			alpha.Fitness = ts.Refine(p, alpha.Permutation, alpha.Fitness)
		}
		wolves[0].copyFrom(&alpha)

		if (k+1)%10 == 0 || improved {
			report(k + 1)
		}
	}

	// DONE.
	res := Result{
		Permutation: make([]int, n),
		Cost:        alpha.Fitness,
		Iterations:  opts.MaxIterations,
	}
	copy(res.Permutation, alpha.Permutation)

	return res, nil
}

// rankPack orders wolves by fitness ascending. Stable so equal-fitness
// candidates keep their relative order and runs stay reproducible.
func rankPack(wolves []Wolf) {
	sort.SliceStable(wolves, func(a, b int) bool {
		return wolves[a].Fitness < wolves[b].Fitness
	})
}
