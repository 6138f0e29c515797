// Package kakuro provides constraint satisfaction infrastructure.
// This file implements conflict-directed backjumping, the exclusive search
// loop selected by Options.Backjumping.
package kakuro

import "context"

// backjumpState carries the conflict sets and assignment recency for one
// top-level backjumping solve. Conflict sets are populated lazily as
// variables exhaust their domains; their lifetime is a single Solve call.
type backjumpState struct {
	// conflicts maps each variable to the set of variables blamed for
	// exhausting it.
	conflicts map[Cell]map[Cell]struct{}

	// seq records the recency of each currently assigned variable.
	// Higher sequence numbers are more recent.
	seq map[Cell]int

	// clock is the monotonically increasing assignment sequence.
	clock int
}

// solveBackjumping runs the conflict-directed search loop. Variable
// selection is always first-unassigned by enumeration order and no
// forward checking or arc consistency runs, even when requested together
// with Backjumping; see Options.
func (s *Solver) solveBackjumping(ctx context.Context) (Assignment, error) {
	st := &backjumpState{
		conflicts: make(map[Cell]map[Cell]struct{}, s.store.VariableCount()),
		seq:       make(map[Cell]int, s.store.VariableCount()),
	}
	for _, c := range s.store.Variables() {
		st.conflicts[c] = make(map[Cell]struct{})
	}

	result, _, _, err := s.backjump(ctx, make(Assignment), st)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNoSolution
	}
	return result, nil
}

// backjump recursively extends the assignment by one variable per frame,
// so the live assignment always mirrors the stack of active frames.
//
// When a variable exhausts its domain, its assigned neighbors are blamed
// into its conflict set and the most recently assigned member of that set
// becomes the backjump target. The target is returned up the recursion:
// every frame between the exhausted variable and the target vacates its
// own assignment and returns immediately, and search resumes with the
// target's next value in the frame that assigned it. The target also
// inherits the exhausted variable's remaining conflicts, so an interior
// dead end keeps implicating the earlier assignments that produced it.
// A dead end with no assigned conflict member is a plain failure; at the
// top level that becomes ErrNoSolution.
func (s *Solver) backjump(ctx context.Context, a Assignment, st *backjumpState) (Assignment, Cell, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, Cell{}, false, err
	}
	if len(a) == s.store.VariableCount() {
		return a.Clone(), Cell{}, false, nil
	}

	v, _ := s.nextVariable(a, false)

	for _, value := range s.store.Domain(v).Values() {
		a[v] = value
		st.clock++
		st.seq[v] = st.clock
		s.stats.Assignments++

		if s.store.IsValid(a) {
			result, target, jumped, err := s.backjump(ctx, a, st)
			if err != nil {
				return nil, Cell{}, false, err
			}
			if result != nil {
				return result, Cell{}, false, nil
			}
			if jumped && target != v {
				// The failure implicates an earlier variable. Vacate
				// this frame and keep unwinding until the target's
				// own frame resumes.
				delete(a, v)
				delete(st.seq, v)
				return nil, target, true, nil
			}
			// Either the jump landed on v or the branch failed with
			// no target; try v's next value.
		}

		delete(a, v)
		delete(st.seq, v)
	}

	// v exhausted: blame every currently assigned neighbor.
	for _, n := range s.store.Neighbors(v) {
		if _, assigned := a[n]; assigned {
			st.conflicts[v][n] = struct{}{}
		}
	}

	target, ok := latestAssigned(st.conflicts[v], st.seq)
	if !ok {
		return nil, Cell{}, false, nil
	}
	for c := range st.conflicts[v] {
		if c != target {
			st.conflicts[target][c] = struct{}{}
		}
	}
	return nil, target, true, nil
}

// latestAssigned returns the most recently assigned variable in the
// conflict set, or false when no member is currently assigned. Only
// assigned variables ever qualify as backjump targets.
func latestAssigned(conflicts map[Cell]struct{}, seq map[Cell]int) (Cell, bool) {
	var best Cell
	bestSeq := -1
	for c := range conflicts {
		if n, assigned := seq[c]; assigned && n > bestSeq {
			best, bestSeq = c, n
		}
	}
	return best, bestSeq >= 0
}
