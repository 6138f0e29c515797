// Package kakuro provides constraint satisfaction infrastructure.
// This file implements the Store, the generic variable/domain/constraint
// model with its derived constraint graph. The Store has no puzzle
// knowledge; the board compiler populates it and the solver searches it.
package kakuro

import "fmt"

// Store holds the variables, current domains, constraints, and derived
// constraint graph of one CSP instance.
//
// Variables are enumerated in registration order, which is the fixed
// enumeration order the solver uses for variable selection and tie
// breaking. Two variables are neighbors in the constraint graph iff they
// co-occur in some constraint's scope; the graph is undirected, has no
// self-loops, and duplicate edges collapse to one.
//
// Thread safety: a Store is not safe for concurrent use. Each solve owns
// its Store's domains exclusively for the duration of the call.
type Store struct {
	// order holds variables in registration order (the enumeration order).
	order []Cell

	// domains holds the current domain of each registered variable.
	// Domains shrink during search and are restored exactly on backtrack.
	domains map[Cell]Domain

	// constraints holds all registered constraints in registration order.
	constraints []Constraint

	// adjacency holds each variable's neighbors in first-seen order.
	adjacency map[Cell][]Cell
}

// NewStore creates an empty constraint store.
func NewStore() *Store {
	return &Store{
		domains:   make(map[Cell]Domain),
		adjacency: make(map[Cell][]Cell),
	}
}

// AddVariable registers a variable with its candidate set. Re-adding an
// existing variable is a no-op: a cell typically belongs to both a
// horizontal and a vertical run and is registered once per run.
func (s *Store) AddVariable(c Cell, d Domain) {
	if _, ok := s.domains[c]; ok {
		return
	}
	s.order = append(s.order, c)
	s.domains[c] = d
}

// AddConstraint appends a constraint over the given scope and updates the
// adjacency relation for every unordered pair within the scope. All scope
// members must already be registered; violating that is a programming
// contract error and panics.
func (s *Store) AddConstraint(scope []Cell, pred Predicate) {
	for _, c := range scope {
		if _, ok := s.domains[c]; !ok {
			panic(fmt.Sprintf("kakuro: constraint scope references unregistered variable %v", c))
		}
	}
	ordered := make([]Cell, len(scope))
	copy(ordered, scope)
	s.constraints = append(s.constraints, Constraint{Scope: ordered, Pred: pred})

	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			s.link(ordered[i], ordered[j])
			s.link(ordered[j], ordered[i])
		}
	}
}

// link records b as a neighbor of a, collapsing duplicates.
func (s *Store) link(a, b Cell) {
	if a == b {
		return
	}
	for _, existing := range s.adjacency[a] {
		if existing == b {
			return
		}
	}
	s.adjacency[a] = append(s.adjacency[a], b)
}

// IsValid reports whether the assignment violates any constraint. It
// returns false iff some constraint has every scope member present in the
// assignment and the predicate evaluates false on those values.
//
// Constraints whose scope is only partially assigned hold vacuously, so
// partial assignments are never rejected by this check alone. Pruning of
// partial assignments is the job of forward checking and arc consistency,
// not of IsValid.
func (s *Store) IsValid(a Assignment) bool {
	values := make([]int, 0, 8)
	for _, c := range s.constraints {
		values = values[:0]
		covered := true
		for _, cell := range c.Scope {
			v, ok := a[cell]
			if !ok {
				covered = false
				break
			}
			values = append(values, v)
		}
		if covered && !c.Pred.Holds(values) {
			return false
		}
	}
	return true
}

// Neighbors returns the variables adjacent to c in the constraint graph,
// in first-seen order. The result is empty for a variable that appears in
// no multi-variable constraint. Asking for the neighbors of an
// unregistered variable is a programming contract error and panics.
func (s *Store) Neighbors(c Cell) []Cell {
	if _, ok := s.domains[c]; !ok {
		panic(fmt.Sprintf("kakuro: neighbors of unregistered variable %v", c))
	}
	return s.adjacency[c]
}

// Domain returns the current domain of a registered variable. Asking for
// an unregistered variable is a programming contract error and panics.
func (s *Store) Domain(c Cell) Domain {
	d, ok := s.domains[c]
	if !ok {
		panic(fmt.Sprintf("kakuro: domain of unregistered variable %v", c))
	}
	return d
}

// Variables returns all registered variables in enumeration order.
// The returned slice must not be modified.
func (s *Store) Variables() []Cell {
	return s.order
}

// VariableCount returns the number of registered variables.
func (s *Store) VariableCount() int {
	return len(s.order)
}

// Constraints returns all registered constraints in registration order.
// The returned slice must not be modified.
func (s *Store) Constraints() []Constraint {
	return s.constraints
}

// GraphSize reports the node count and the undirected edge count of the
// constraint graph. The edge count is half the sum of adjacency set sizes.
func (s *Store) GraphSize() (nodes, edges int) {
	nodes = len(s.order)
	total := 0
	for _, neighbors := range s.adjacency {
		total += len(neighbors)
	}
	return nodes, total / 2
}

// removeValue prunes one value from a variable's current domain.
// Callers must pair every removal with a later restoreValue on the same
// (cell, value) pair, except for AC-3 preprocessing which prunes
// destructively before search begins.
func (s *Store) removeValue(c Cell, v int) {
	s.domains[c] = s.domains[c].Remove(v)
}

// restoreValue reinstates one previously pruned value.
func (s *Store) restoreValue(c Cell, v int) {
	s.domains[c] = s.domains[c].Add(v)
}
