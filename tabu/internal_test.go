// In-package tests for the tabu memory and move selection: tenure bounding,
// symmetric lookups, and the aspiration override need access to tabuList and
// bestMove directly.
package tabu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

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

func TestTabuList_TenureBound(t *testing.T) {
	l := newTabuList(3)

	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}
	for _, p := range pairs {
		l.push(p[0], p[1])
		require.LessOrEqual(t, len(l.pairs), 3)
	}

	// Oldest two entries were evicted; the last three remain.
	require.False(t, l.contains(0, 1))
	require.False(t, l.contains(0, 2))
	require.True(t, l.contains(1, 2))
	require.True(t, l.contains(1, 3))
	require.True(t, l.contains(2, 3))
}

func TestTabuList_SymmetricLookup(t *testing.T) {
	l := newTabuList(5)
	l.push(3, 1) // stored normalized as (1,3)
	require.True(t, l.contains(1, 3))
	require.True(t, l.contains(3, 1))
	require.False(t, l.contains(1, 2))
}

// TestBestMove_Aspiration pins the override rule on the 4×4 scenario, whose
// 2-opt neighborhood of the identity is known by hand: the only swap below
// the identity cost 18100 is (1,2) at 17600; the best of the rest is (1,3)
// at 18600.
func TestBestMove_Aspiration(t *testing.T) {
	p := spire(t)
	cur := []int{0, 1, 2, 3}

	list := newTabuList(10)
	list.push(1, 2)

	// Marker above 17600: the tabu swap aspirates and must win.
	i, j, cost, ok := bestMove(p, cur, list, 18100)
	require.True(t, ok)
	require.Equal(t, [2]int{1, 2}, [2]int{i, j})
	require.Equal(t, int64(17600), cost)

	// Marker below 17600: no override, the best non-tabu swap wins.
	i, j, cost, ok = bestMove(p, cur, list, 17000)
	require.True(t, ok)
	require.Equal(t, [2]int{1, 3}, [2]int{i, j})
	require.Equal(t, int64(18600), cost)
}

func TestBestMove_NoEligibleMove(t *testing.T) {
	p := spire(t)
	cur := []int{0, 2, 1, 3} // the global optimum: nothing beats its cost

	// Forbid the entire neighborhood with a marker nothing can beat.
	list := newTabuList(10)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = i + 1; j < 4; j++ {
			list.push(i, j)
		}
	}

	_, _, _, ok := bestMove(p, cur, list, math.MinInt64)
	require.False(t, ok)
}

func TestNew_MarkerStartsInfinite(t *testing.T) {
	s, err := New(10, 5)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), s.BestCost())
}
