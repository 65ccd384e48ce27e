// Package siliconspire solves the Quadratic Assignment Problem (QAP):
// assign n facilities to n locations so that the total flow-weighted
// distance Σᵢⱼ F[i][j]·D[π(i)][π(j)] is minimized.
//
// The solver is a hybrid metaheuristic: a Grey Wolf Optimizer explores a
// continuous position space whose vectors decode into permutations
// (largest-value-priority ranking), and a 2-opt Tabu Search periodically
// intensifies the best candidate found so far.
//
// Everything is organized under three library packages plus one binary:
//
//	qap/  — immutable Problem (flow/distance matrices), instance loader,
//	        and the pure O(n²) cost evaluator
//	gwo/  — wolf pack, LVP decoder, GWO position update, and the hybrid
//	        orchestrator (the canonical entry point: gwo.Solve)
//	tabu/ — 2-opt local search with bounded tabu memory and an
//	        aspiration override, scoped to a single run
//
//	cmd/qapsolver/ — command-line front end (flags, instance loading,
//	        progress and final-assignment reporting)
//
// Determinism: all randomness flows through one seeded generator handed to
// the orchestrator; the same seed and options reproduce the same run.
package siliconspire
