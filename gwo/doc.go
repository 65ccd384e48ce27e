// Package gwo implements the Grey Wolf Optimizer side of the hybrid QAP
// solver, and the orchestrator that couples it with Tabu Search.
//
// GWO is a population metaheuristic: a pack of candidate "wolves" moves
// through a continuous position space guided by its three best members
// (alpha, beta, delta). Each wolf's position vector, one coordinate per
// facility with components in [-1, 1], decodes into a discrete assignment by
// largest-value-priority ranking - the coordinate with the highest value
// takes rank 0, and so on. Any continuous vector therefore yields a valid
// permutation, which is what lets a continuous-space search drive a discrete
// problem.
//
// Solve runs the full hybrid loop: update every wolf toward the three
// leaders (with a linearly shrinking search radius), decode and score the
// pack, promote strictly better candidates into the leader slots, and
// periodically hand the alpha to a 2-opt Tabu Search (package tabu) for
// intensification.
//
// Determinism: one seeded *rand.Rand drives the whole run; seed 0 selects a
// fixed default stream. Same seed and options reproduce the run exactly.
package gwo
