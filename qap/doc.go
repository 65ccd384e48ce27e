// Package qap models Quadratic Assignment Problem instances.
//
// It provides three things and nothing else:
//
//   - Problem — an immutable instance: size n, an n×n distance matrix D
//     (D[x][y] = distance between locations x and y) and an n×n flow
//     matrix F (F[i][j] = flow between facilities i and j).
//
//   - Load / Parse — the plain-text instance reader: a single integer n
//     followed by n rows of D and n rows of F, whitespace-separated.
//     Malformed or truncated data is a fatal load error (strict sentinels).
//
//   - Cost — the pure evaluator Σᵢⱼ F[i][j]·D[π(i)][π(j)] for a permutation
//     π of {0,…,n−1}. O(n²), no side effects, int64 accumulation so large
//     instances cannot overflow.
//
// Higher layers (gwo, tabu) treat Problem as read-only shared state.
package qap
