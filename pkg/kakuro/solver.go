// Package kakuro provides constraint satisfaction infrastructure.
// This file implements the Solver: depth-first backtracking search over a
// compiled Store, parameterized by composable Options.
package kakuro

import (
	"context"
	"errors"
	"time"
)

// Solver errors.
var (
	// ErrNoSolution reports that the search space was exhausted without
	// finding a complete satisfying assignment.
	ErrNoSolution = errors.New("no solution exists")

	// ErrNotCompiled reports that Solve was called before Compile.
	ErrNotCompiled = errors.New("board has not been compiled")

	// ErrAlreadyCompiled reports a second Compile call on the same solver.
	// Callers create one solver per board.
	ErrAlreadyCompiled = errors.New("board already compiled")
)

// Recognized option names for OptionsFromNames.
const (
	OptionForwardChecking = "ForwardChecking"
	OptionArcConsistency  = "ArcConsistency"
	OptionMRVOrdering     = "MRVOrdering"
	OptionBackjumping     = "Backjumping"
)

// Options selects the search techniques for one Solve call.
//
// ForwardChecking, ArcConsistency, and MRVOrdering compose freely.
// Backjumping does NOT compose: when set, it takes exclusive control of
// the search loop for that call and the other three options are ignored
// even when also requested. This mirrors the behavior of the control loop
// this solver derives from and is deliberate; see Solve.
type Options struct {
	// ForwardChecking prunes the domains of unassigned neighbors
	// immediately after each tentative assignment, restoring them
	// exactly when the branch unwinds.
	ForwardChecking bool

	// ArcConsistency runs AC-3 preprocessing once before search begins.
	// The pruning is destructive and persists for the remainder of the
	// solver's lifetime. Over constraints with more than two scope
	// members the pairwise check is an approximation, so this enforces a
	// binary-reduced consistency, not generalized arc consistency.
	ArcConsistency bool

	// MRVOrdering selects the unassigned variable with the smallest
	// current domain, breaking ties by enumeration order.
	MRVOrdering bool

	// Backjumping replaces chronological backtracking with
	// conflict-directed backjumping. Exclusive: all other options are
	// ignored for the call when this is set.
	Backjumping bool
}

// OptionsFromNames builds Options from the named boolean option set used
// by external callers. Unrecognized names are ignored, not rejected.
func OptionsFromNames(names ...string) Options {
	var opts Options
	for _, name := range names {
		switch name {
		case OptionForwardChecking:
			opts.ForwardChecking = true
		case OptionArcConsistency:
			opts.ArcConsistency = true
		case OptionMRVOrdering:
			opts.MRVOrdering = true
		case OptionBackjumping:
			opts.Backjumping = true
		}
	}
	return opts
}

// Solver solves one Kakuro board. The zero value is not usable; create
// solvers with NewSolver and compile once before solving.
//
// Thread safety: a Solver is not safe for concurrent use. Two solves must
// never share one Solver concurrently; each Solve owns the store's domains
// exclusively for its duration.
type Solver struct {
	board    Board
	store    *Store
	compiled bool
	stats    Metrics
}

// NewSolver creates a solver for the given board. Callers create one
// solver per board.
func NewSolver(board Board) *Solver {
	return &Solver{board: board}
}

// Compile parses the board and populates the constraint store. It must be
// called exactly once before Solve; a second call returns
// ErrAlreadyCompiled.
func (s *Solver) Compile() error {
	if s.compiled {
		return ErrAlreadyCompiled
	}
	store, err := Compile(s.board)
	if err != nil {
		return err
	}
	s.store = store
	s.compiled = true
	s.stats.Nodes, s.stats.Edges = store.GraphSize()
	return nil
}

// Store returns the compiled constraint store, or nil before Compile.
// The store is exposed for inspection; mutating it mid-solve corrupts the
// search.
func (s *Solver) Store() *Store {
	return s.store
}

// Metrics returns the constraint graph size and the counters of the most
// recent solve.
func (s *Solver) Metrics() Metrics {
	return s.stats
}

// Solve searches for a complete assignment under the given options. It
// returns the full Cell-to-digit assignment on success and ErrNoSolution
// when the search space is exhausted; it never returns a partial
// assignment. The assignment counter and elapsed time are reset at entry
// and reported via Metrics.
//
// Each call constructs a fresh empty assignment; no state leaks between
// solves apart from destructive AC-3 pruning, which persists on the
// store.
//
// When opts.Backjumping is set the conflict-directed loop takes exclusive
// control and the remaining options are ignored (see Options).
//
// The context is checked between search nodes; a canceled context aborts
// the solve with ctx.Err(). The engine has no internal timeout.
func (s *Solver) Solve(ctx context.Context, opts Options) (Assignment, error) {
	if !s.compiled {
		return nil, ErrNotCompiled
	}

	s.stats.Assignments = 0
	start := time.Now()
	defer func() {
		s.stats.Elapsed = time.Since(start)
	}()

	if opts.Backjumping {
		return s.solveBackjumping(ctx)
	}

	if opts.ArcConsistency {
		if !s.enforceArcConsistency() {
			return nil, ErrNoSolution
		}
	}

	result, err := s.backtrack(ctx, make(Assignment), opts)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNoSolution
	}
	return result, nil
}

// backtrack is the chronological depth-first search. It returns a
// complete assignment, or (nil, nil) when this branch is exhausted.
func (s *Solver) backtrack(ctx context.Context, a Assignment, opts Options) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(a) == s.store.VariableCount() {
		return a.Clone(), nil
	}

	v, ok := s.nextVariable(a, opts.MRVOrdering)
	if !ok {
		return nil, nil
	}

	for _, value := range s.store.Domain(v).Values() {
		a[v] = value
		s.stats.Assignments++

		var pruned []removal
		if opts.ForwardChecking {
			pruned = s.forwardCheck(a, v)
		}

		if s.store.IsValid(a) {
			result, err := s.backtrack(ctx, a, opts)
			if err != nil {
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}

		delete(a, v)
		if opts.ForwardChecking {
			s.restore(pruned)
		}
	}
	return nil, nil
}

// nextVariable selects the next unassigned variable: the first in
// enumeration order by default, or the one with the smallest current
// domain under MRV, ties broken by enumeration order.
func (s *Solver) nextVariable(a Assignment, mrv bool) (Cell, bool) {
	var best Cell
	found := false
	bestSize := 0
	for _, c := range s.store.Variables() {
		if _, assigned := a[c]; assigned {
			continue
		}
		if !mrv {
			return c, true
		}
		size := s.store.Domain(c).Count()
		if !found || size < bestSize {
			best, bestSize, found = c, size, true
		}
	}
	return best, found
}

// removal records one pruned (cell, value) pair for exact restoration.
type removal struct {
	cell  Cell
	value int
}

// forwardCheck prunes the domains of v's unassigned neighbors after the
// tentative assignment already present in a. A candidate is removed when
// provisionally extending the assignment with it makes some fully covered
// constraint false. The returned record lists every removal so restore can
// reinstate the exact domains when the branch unwinds.
func (s *Solver) forwardCheck(a Assignment, v Cell) []removal {
	var pruned []removal
	for _, n := range s.store.Neighbors(v) {
		if _, assigned := a[n]; assigned {
			continue
		}
		for _, candidate := range s.store.Domain(n).Values() {
			a[n] = candidate
			consistent := s.store.IsValid(a)
			delete(a, n)
			if !consistent {
				pruned = append(pruned, removal{cell: n, value: candidate})
			}
		}
	}
	for _, p := range pruned {
		s.store.removeValue(p.cell, p.value)
	}
	return pruned
}

// restore reinstates every value recorded by forwardCheck, value for
// value. The save/restore pair must be exact or sibling branches observe
// corrupted domains.
func (s *Solver) restore(pruned []removal) {
	for _, p := range pruned {
		s.store.restoreValue(p.cell, p.value)
	}
}
