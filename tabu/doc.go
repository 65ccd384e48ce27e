// Package tabu implements 2-opt Tabu Search over QAP permutations.
//
// One Search value is created per optimization run and reused for every
// refinement call within it. Across those calls it carries exactly one piece
// of state: the lowest cost ever observed by the run, used by the aspiration
// criterion (a recently-forbidden swap may still be taken when it beats that
// marker). The short-term tabu memory itself - a bounded FIFO of swap pairs -
// is local to each Refine call.
//
// The neighborhood is every unordered pair (i, j): swap the locations
// assigned to facilities i and j. Each neighbor is scored with a full cost
// evaluation, so one Refine iteration costs O(n³). That model is intentional;
// there is no delta-cost shortcut.
package tabu
