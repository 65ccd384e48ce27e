// Package gwo - sentinel errors, the Wolf candidate, Options and Result.
//
// Design:
//   - Strict sentinel errors only; Options.Validate returns them, the CLI
//     maps them onto usage failures.
//   - Options follows the DefaultOptions + Validate pattern; a zero Options
//     is invalid on purpose (PackSize 0 < 3).
package gwo

import "errors"

var (
	// ErrNilProblem is returned when Solve receives a nil problem.
	ErrNilProblem = errors.New("gwo: nil problem")

	// ErrPackTooSmall is returned when the pack cannot seat three leaders.
	ErrPackTooSmall = errors.New("gwo: pack size must be at least 3")

	// ErrBadIterations is returned when the iteration budget is below 1.
	ErrBadIterations = errors.New("gwo: max iterations must be at least 1")

	// ErrBadTSIterations is returned when the Tabu Search budget is negative.
	ErrBadTSIterations = errors.New("gwo: tabu search iterations must be non-negative")

	// ErrBadTenure is returned when the tabu tenure is below 1.
	ErrBadTenure = errors.New("gwo: tabu tenure must be at least 1")

	// ErrBadTSEvery is returned when the Tabu Search period is below 1.
	ErrBadTSEvery = errors.New("gwo: tabu search period must be at least 1")

	// ErrBadJitter is returned when the jitter amplitude is negative (or NaN).
	ErrBadJitter = errors.New("gwo: jitter must be non-negative")
)

// Wolf is one candidate solution: a continuous position, its decoded
// assignment, and the assignment's cost. Permutation is always the LVP
// decoding of Position after a pack update; a Tabu-refined leader is the one
// sanctioned exception (its permutation has moved past its position).
type Wolf struct {
	Position    []float64 // length n, components in [-1, 1]
	Permutation []int     // bijection on {0,…,n−1}
	Fitness     int64
}

// clone returns a deep copy of w.
func (w *Wolf) clone() Wolf {
	c := Wolf{
		Position:    make([]float64, len(w.Position)),
		Permutation: make([]int, len(w.Permutation)),
		Fitness:     w.Fitness,
	}
	copy(c.Position, w.Position)
	copy(c.Permutation, w.Permutation)

	return c
}

// copyFrom overwrites w with src. Both wolves must already hold slices of
// the same length (every wolf in a run shares one n).
func (w *Wolf) copyFrom(src *Wolf) {
	copy(w.Position, src.Position)
	copy(w.Permutation, src.Permutation)
	w.Fitness = src.Fitness
}

// Options configures one hybrid run.
type Options struct {
	// PackSize is the number of wolves; at least 3 (the leader slots).
	PackSize int

	// MaxIterations is the GWO iteration budget; the loop is strictly
	// iteration-bounded, there is no stagnation-based early stop.
	MaxIterations int

	// TSIterations is the Tabu Search budget per refinement call.
	// 0 disables Tabu Search entirely (pure GWO).
	TSIterations int

	// TabuTenure bounds the tabu FIFO inside each refinement call.
	TabuTenure int

	// TSEvery applies Tabu Search on every TSEvery-th iteration.
	TSEvery int

	// Jitter, when positive, adds uniform noise in [−Jitter, +Jitter] to
	// every coordinate after each position update (and at init), injecting
	// extra discrete diversity once positions cluster.
	Jitter float64

	// Seed selects the random stream; 0 picks the fixed default stream.
	Seed int64

	// Progress, when non-nil, observes the run: it fires once with
	// iteration 0 after initialization, then with k (1-based) whenever
	// k%10 == 0 or the alpha improved during iteration k. best is the
	// alpha's fitness at that point.
	Progress func(iteration int, best int64)
}

// DefaultOptions returns the canonical run parameters.
func DefaultOptions() Options {
	return Options{
		PackSize:      30,
		MaxIterations: 100,
		TSIterations:  50,
		TabuTenure:    10,
		TSEvery:       1,
		Jitter:        0,
		Seed:          0,
	}
}

// Validate checks parameter ranges. Deterministic, side-effect free.
func (o Options) Validate() error {
	if o.PackSize < 3 {
		return ErrPackTooSmall
	}
	if o.MaxIterations < 1 {
		return ErrBadIterations
	}
	if o.TSIterations < 0 {
		return ErrBadTSIterations
	}
	if o.TabuTenure < 1 {
		return ErrBadTenure
	}
	if o.TSEvery < 1 {
		return ErrBadTSEvery
	}
	if !(o.Jitter >= 0) { // also rejects NaN
		return ErrBadJitter
	}

	return nil
}

// Result is the outcome of one hybrid run.
type Result struct {
	// Permutation maps facility index to location index.
	Permutation []int

	// Cost is the permutation's flow-weighted distance.
	Cost int64

	// Iterations is the number of GWO iterations executed (always the
	// configured budget; recorded for reporting symmetry).
	Iterations int
}
