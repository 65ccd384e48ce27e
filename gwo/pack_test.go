// In-package tests for the position-update helpers: bounds must hold under
// extreme control scalars and jitter amplitudes.
package gwo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	require.Equal(t, -1.0, clamp(-2.5))
	require.Equal(t, 1.0, clamp(7.0))
	require.Equal(t, 0.25, clamp(0.25))
}

func TestUpdatePosition_StaysInBounds(t *testing.T) {
	rng := rngFromSeed(13)

	mk := func(vals ...float64) Wolf {
		return Wolf{Position: vals}
	}
	w := mk(0.9, -0.9, 0.1, 0.0)
	alpha := mk(1, 1, -1, 0.5)
	beta := mk(-1, 1, 1, -0.5)
	delta := mk(1, -1, -1, 0.0)

	// a = 2 is the widest exploration radius the loop ever uses.
	var step int
	for step = 0; step < 50; step++ {
		updatePosition(&w, &alpha, &beta, &delta, 2.0, rng)
		for _, v := range w.Position {
			require.GreaterOrEqual(t, v, -1.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestJitterInPlace_StaysInBounds(t *testing.T) {
	rng := rngFromSeed(17)
	pos := []float64{1, -1, 0.999, -0.999, 0}

	var step int
	for step = 0; step < 20; step++ {
		jitterInPlace(pos, 5.0, rng) // amplitude far beyond the box
		for _, v := range pos {
			require.GreaterOrEqual(t, v, -1.0)
			require.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestRngFromSeed_ZeroMapsToDefaultStream(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	var i int
	for i = 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}
