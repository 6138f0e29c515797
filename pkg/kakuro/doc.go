// Package kakuro solves Kakuro puzzles by modeling them as generic
// constraint satisfaction problems (CSPs) and searching for a complete
// assignment with backtracking augmented by optional consistency techniques.
//
// # Architecture Overview
//
// The package separates the generic constraint model from the puzzle layer:
//
//	Store (puzzle-agnostic):
//	  - Variables identified by grid position (Cell)
//	  - Domains of candidate digits (Domain, a bitset over 1..9)
//	  - Constraints: an ordered scope plus a Predicate
//	  - Derived constraint graph (adjacency between co-constrained cells)
//
//	Board compiler:
//	  - Parses a rectangular Board of void, fillable, and clue cells
//	  - Emits one variable per fillable cell and one SumDistinct
//	    constraint per horizontal/vertical run under a clue
//
//	Solver:
//	  - Depth-first backtracking over the Store
//	  - Composable Options: forward checking, AC-3 preprocessing,
//	    minimum-remaining-values ordering, conflict-directed backjumping
//	  - Per-solve instrumentation (assignment count, elapsed time)
//
// # How a Solve Works
//
// The caller compiles a board once, then solves with a chosen configuration:
//
//	solver := kakuro.NewSolver(board)
//	if err := solver.Compile(); err != nil { ... }
//	solution, err := solver.Solve(ctx, kakuro.Options{ForwardChecking: true})
//
// A solve either returns a complete Cell-to-digit Assignment or ErrNoSolution;
// it never returns a partial assignment. Metrics() reports the constraint
// graph size and the counters of the most recent solve.
//
// # Domain Mutation Discipline
//
// Domains are owned by the Store and shared by every recursive call of a
// single solve. Forward checking removes values through an explicit pruned
// record and restores exactly those values when the branch unwinds, so
// sibling branches always observe the same domains. AC-3 preprocessing is
// the one exception: it prunes destructively before search begins and its
// effects persist for the remainder of the solver's lifetime.
//
// Thread safety: a Solver and its Store must not be shared by concurrent
// solves. Each solve owns the domains exclusively for its duration.
package kakuro
