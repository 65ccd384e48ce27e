// Package qap - sentinel errors and the immutable Problem type.
//
// Design:
//   - Strict sentinel errors only; adapters may wrap them with file context
//     via fmt.Errorf("...: %w", ...), the core never does.
//   - Problem stores both matrices linearized (row-major, m[i*n+j]) so the
//     evaluator's hot loop reads a dense 1D buffer with no bounds gymnastics.
//   - Matrices are copied on construction; a Problem cannot alias caller data.
package qap

import "errors"

var (
	// ErrBadSize is returned when an instance declares a size below 1.
	ErrBadSize = errors.New("qap: instance size must be at least 1")

	// ErrNonSquare is returned when a matrix row count and column count disagree.
	ErrNonSquare = errors.New("qap: matrix is not square")

	// ErrDimensionMismatch is returned when the distance and flow matrices
	// (or a permutation) do not share the instance size.
	ErrDimensionMismatch = errors.New("qap: matrix dimensions disagree")

	// ErrTruncated is returned when instance data ends before both matrices
	// are fully populated.
	ErrTruncated = errors.New("qap: truncated instance data")

	// ErrBadToken is returned when a matrix entry is not a valid integer.
	ErrBadToken = errors.New("qap: malformed integer token")

	// ErrTrailingData is returned when instance data continues past the
	// second matrix.
	ErrTrailingData = errors.New("qap: trailing data after matrices")

	// ErrBadPermutation is returned by ValidatePermutation when the slice is
	// not a bijection on {0,…,n−1}.
	ErrBadPermutation = errors.New("qap: permutation is not a bijection")
)

// Problem is one immutable QAP instance.
// Construct via New or Load; the zero value is unusable.
type Problem struct {
	n    int
	dist []int64 // row-major n×n, dist[x*n+y] = distance(location x, location y)
	flow []int64 // row-major n×n, flow[i*n+j] = flow(facility i, facility j)
}

// New builds a Problem from two n×n matrices, copying both.
//
// Contracts:
//   - len(dist) == len(flow) == n ≥ 1, every row of length n.
//
// Errors: ErrBadSize, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity: O(n²) time and space (the defensive copy).
func New(dist, flow [][]int64) (*Problem, error) {
	n := len(dist)
	if n < 1 {
		return nil, ErrBadSize
	}
	if len(flow) != n {
		return nil, ErrDimensionMismatch
	}

	p := &Problem{
		n:    n,
		dist: make([]int64, n*n),
		flow: make([]int64, n*n),
	}

	var i int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n || len(flow[i]) != n {
			return nil, ErrNonSquare
		}
		copy(p.dist[i*n:(i+1)*n], dist[i])
		copy(p.flow[i*n:(i+1)*n], flow[i])
	}

	return p, nil
}

// N reports the instance size (number of facilities == number of locations).
func (p *Problem) N() int { return p.n }

// Dist returns the distance between locations x and y.
// Indices are the caller's responsibility (hot-path accessor, no checks).
func (p *Problem) Dist(x, y int) int64 { return p.dist[x*p.n+y] }

// Flow returns the flow between facilities i and j.
// Indices are the caller's responsibility (hot-path accessor, no checks).
func (p *Problem) Flow(i, j int) int64 { return p.flow[i*p.n+j] }

// ValidatePermutation checks that perm is a bijection on {0,…,n−1} for this
// instance. The evaluator itself does not validate (the decoder is the sole
// producer of permutations in the solver); this helper exists for adapters
// and tests.
//
// Errors: ErrDimensionMismatch, ErrBadPermutation.
//
// Complexity: O(n) time, O(n) space.
func (p *Problem) ValidatePermutation(perm []int) error {
	if len(perm) != p.n {
		return ErrDimensionMismatch
	}

	seen := make([]bool, p.n)
	var v int
	for _, v = range perm {
		if v < 0 || v >= p.n || seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}

	return nil
}
