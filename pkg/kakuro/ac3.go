// Package kakuro provides constraint satisfaction infrastructure.
// This file implements AC-3 preprocessing over the derived constraint
// graph.
package kakuro

// arc is one ordered variable pair (xi, xj) queued for revision.
type arc struct {
	xi, xj Cell
}

// enforceArcConsistency runs AC-3 once over the constraint graph before
// search begins and reports false if any domain becomes empty, meaning no
// solution is reachable. Pruning is destructive: removed values are not
// restored.
//
// Revision uses the generic constraint test with only xi and xj bound, so
// for constraints whose scope has more than two members the check ignores
// the other scope members. The result is a binary-reduced consistency,
// weaker than generalized arc consistency; values supported only through
// larger scopes are deliberately kept.
func (s *Solver) enforceArcConsistency() bool {
	queue := make([]arc, 0, 4*s.store.VariableCount())
	for _, xi := range s.store.Variables() {
		for _, xj := range s.store.Neighbors(xi) {
			queue = append(queue, arc{xi: xi, xj: xj})
		}
	}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if !s.revise(next.xi, next.xj) {
			continue
		}
		if s.store.Domain(next.xi).IsEmpty() {
			return false
		}
		for _, xk := range s.store.Neighbors(next.xi) {
			if xk != next.xj {
				queue = append(queue, arc{xi: xk, xj: next.xi})
			}
		}
	}
	return true
}

// revise removes from xi's domain every value with no supporting value in
// xj's domain and reports whether the domain changed.
func (s *Solver) revise(xi, xj Cell) bool {
	revised := false
	probe := make(Assignment, 2)
	for _, x := range s.store.Domain(xi).Values() {
		supported := false
		for _, y := range s.store.Domain(xj).Values() {
			probe[xi] = x
			probe[xj] = y
			if s.store.IsValid(probe) {
				supported = true
				break
			}
		}
		if !supported {
			s.store.removeValue(xi, x)
			revised = true
		}
	}
	return revised
}
