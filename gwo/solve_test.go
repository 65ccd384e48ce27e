// Package gwo_test - orchestrator behavior: validation, determinism, leader
// monotonicity, and end-to-end convergence on the ground-truth instance.
package gwo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Prajwal-k-tech/siliconspire/gwo"
	"github.com/Prajwal-k-tech/siliconspire/qap"
)

func spire(t *testing.T) *qap.Problem {
	t.Helper()
	p, err := qap.New(
		[][]int64{
			{0, 10, 15, 20},
			{10, 0, 35, 25},
			{15, 35, 0, 30},
			{20, 25, 30, 0},
		},
		[][]int64{
			{0, 90, 120, 80},
			{90, 0, 40, 50},
			{120, 40, 0, 70},
			{80, 50, 70, 0},
		},
	)
	require.NoError(t, err)
	return p
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*gwo.Options)
		want   error
	}{
		{"defaults pass", func(o *gwo.Options) {}, nil},
		{"pack of two", func(o *gwo.Options) { o.PackSize = 2 }, gwo.ErrPackTooSmall},
		{"zero iterations", func(o *gwo.Options) { o.MaxIterations = 0 }, gwo.ErrBadIterations},
		{"negative ts budget", func(o *gwo.Options) { o.TSIterations = -1 }, gwo.ErrBadTSIterations},
		{"zero tenure", func(o *gwo.Options) { o.TabuTenure = 0 }, gwo.ErrBadTenure},
		{"zero period", func(o *gwo.Options) { o.TSEvery = 0 }, gwo.ErrBadTSEvery},
		{"negative jitter", func(o *gwo.Options) { o.Jitter = -0.5 }, gwo.ErrBadJitter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := gwo.DefaultOptions()
			tc.mutate(&o)
			if tc.want == nil {
				require.NoError(t, o.Validate())
				return
			}
			require.ErrorIs(t, o.Validate(), tc.want)
		})
	}
}

func TestSolve_NilProblem(t *testing.T) {
	_, err := gwo.Solve(nil, gwo.DefaultOptions())
	require.ErrorIs(t, err, gwo.ErrNilProblem)
}

func TestSolve_RejectsBadOptions(t *testing.T) {
	o := gwo.DefaultOptions()
	o.PackSize = 2
	_, err := gwo.Solve(spire(t), o)
	require.ErrorIs(t, err, gwo.ErrPackTooSmall)
}

// TestSolve_ConvergesOnSpire: with default parameters the hybrid must find
// the exhaustively verified optimum of the 4×4 scenario.
func TestSolve_ConvergesOnSpire(t *testing.T) {
	p := spire(t)

	res, err := gwo.Solve(p, gwo.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, int64(17600), res.Cost)
	require.NoError(t, p.ValidatePermutation(res.Permutation))
	require.Equal(t, res.Cost, qap.Cost(p, res.Permutation))
	require.Equal(t, 100, res.Iterations)
}

// TestSolve_AlphaMonotonic: every reported best cost is ≤ the previous one,
// starting from the initial report (iteration 0).
func TestSolve_AlphaMonotonic(t *testing.T) {
	var (
		iterations []int
		costs      []int64
	)

	o := gwo.DefaultOptions()
	o.Seed = 7
	o.Progress = func(iteration int, best int64) {
		iterations = append(iterations, iteration)
		costs = append(costs, best)
	}

	res, err := gwo.Solve(spire(t), o)
	require.NoError(t, err)

	require.NotEmpty(t, iterations)
	require.Equal(t, 0, iterations[0], "initial report comes first")

	var i int
	for i = 1; i < len(costs); i++ {
		require.LessOrEqual(t, costs[i], costs[i-1],
			"alpha worsened between reports %d and %d", iterations[i-1], iterations[i])
	}

	// MaxIterations is a multiple of 10, so the final iteration reports.
	require.Equal(t, 100, iterations[len(iterations)-1])
	require.Equal(t, res.Cost, costs[len(costs)-1])
}

// TestSolve_Deterministic: same seed and options ⇒ identical run, with and
// without jitter.
func TestSolve_Deterministic(t *testing.T) {
	p := spire(t)

	for _, jitter := range []float64{0, 0.05} {
		o := gwo.DefaultOptions()
		o.Seed = 42
		o.Jitter = jitter

		r1, err := gwo.Solve(p, o)
		require.NoError(t, err)
		r2, err := gwo.Solve(p, o)
		require.NoError(t, err)

		require.Equal(t, r1.Cost, r2.Cost)
		require.Equal(t, r1.Permutation, r2.Permutation)
	}
}

// TestSolve_PureGWO: a zero Tabu Search budget disables intensification but
// still produces a valid, deterministic result from pack evaluation alone.
func TestSolve_PureGWO(t *testing.T) {
	p := spire(t)

	o := gwo.DefaultOptions()
	o.TSIterations = 0
	o.Seed = 5

	r1, err := gwo.Solve(p, o)
	require.NoError(t, err)
	require.NoError(t, p.ValidatePermutation(r1.Permutation))
	require.Equal(t, r1.Cost, qap.Cost(p, r1.Permutation))

	r2, err := gwo.Solve(p, o)
	require.NoError(t, err)
	require.Equal(t, r1.Cost, r2.Cost)
	require.Equal(t, r1.Permutation, r2.Permutation)
}

func TestSolve_SingleFacility(t *testing.T) {
	p, err := qap.New([][]int64{{0}}, [][]int64{{0}})
	require.NoError(t, err)

	o := gwo.DefaultOptions()
	o.MaxIterations = 3

	res, err := gwo.Solve(p, o)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Permutation)
	require.Equal(t, int64(0), res.Cost)
}
