// Package qap - plain-text instance loading.
//
// Wire format (whitespace-separated integers, no comments):
//
//	n
//	<n rows of n integers: distance matrix D>
//	<n rows of n integers: flow matrix F>
//
// Row breaks are cosmetic; the reader consumes a flat token stream and
// enforces the exact count n + 2n². Anything short, non-integer, or left
// over is a strict sentinel error - a malformed instance never produces a
// partially populated Problem.
package qap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads a QAP instance from the file at path.
//
// Errors: the underlying open error wrapped with context, or any Parse
// sentinel (ErrBadSize, ErrTruncated, ErrBadToken, ErrTrailingData).
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qap: open instance: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a QAP instance from r.
//
// Complexity: O(n²) time and space.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// next yields the following integer token; io exhaustion maps to
	// ErrTruncated, a non-integer token to ErrBadToken.
	next := func() (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("qap: read instance: %w", err)
			}
			return 0, ErrTruncated
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, ErrBadToken
		}
		return v, nil
	}

	// Header: instance size.
	head, err := next()
	if err != nil {
		return nil, err
	}
	if head < 1 {
		return nil, ErrBadSize
	}
	n := int(head)

	p := &Problem{
		n:    n,
		dist: make([]int64, n*n),
		flow: make([]int64, n*n),
	}

	// Both matrices, distance first, flat row-major order.
	var (
		buf = [2][]int64{p.dist, p.flow}
		m   []int64
		k   int
		v   int64
	)
	for _, m = range buf {
		for k = 0; k < n*n; k++ {
			if v, err = next(); err != nil {
				return nil, err
			}
			m[k] = v
		}
	}

	// The stream must end exactly here.
	if sc.Scan() {
		return nil, ErrTrailingData
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("qap: read instance: %w", err)
	}

	return p, nil
}
