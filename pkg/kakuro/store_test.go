package kakuro

import "testing"

func TestAddVariableIdempotent(t *testing.T) {
	st := NewStore()
	c := Cell{Row: 1, Col: 2}

	st.AddVariable(c, NewDomain(9))
	st.AddVariable(c, NewDomainFromValues(9, []int{1}))

	if st.VariableCount() != 1 {
		t.Fatalf("Expected 1 variable after re-add, got %d", st.VariableCount())
	}
	if st.Domain(c).Count() != 9 {
		t.Errorf("Re-adding a variable must not replace its domain, got %v", st.Domain(c))
	}
}

func TestIsValidVacuousTruth(t *testing.T) {
	st := NewStore()
	a, b := Cell{0, 0}, Cell{0, 1}
	st.AddVariable(a, NewDomain(9))
	st.AddVariable(b, NewDomain(9))
	st.AddConstraint([]Cell{a, b}, SumDistinct{Target: 3})

	t.Run("empty assignment is valid", func(t *testing.T) {
		if !st.IsValid(Assignment{}) {
			t.Error("IsValid on the empty assignment must be true")
		}
	})

	t.Run("partially covered scope is valid regardless of values", func(t *testing.T) {
		if !st.IsValid(Assignment{a: 9}) {
			t.Error("Partial assignments must never be rejected by IsValid")
		}
	})

	t.Run("fully covered scope is checked", func(t *testing.T) {
		if st.IsValid(Assignment{a: 1, b: 3}) {
			t.Error("Expected violation: sum is 4, target 3")
		}
		if !st.IsValid(Assignment{a: 1, b: 2}) {
			t.Error("Expected satisfying assignment to be valid")
		}
	})
}

func TestNeighborsSymmetricAndDeduplicated(t *testing.T) {
	st := NewStore()
	a, b, c := Cell{0, 0}, Cell{0, 1}, Cell{1, 0}
	for _, cell := range []Cell{a, b, c} {
		st.AddVariable(cell, NewDomain(9))
	}
	st.AddConstraint([]Cell{a, b}, SumDistinct{Target: 3})
	// Shares the (a, b) pair: the duplicate edge must collapse to one.
	st.AddConstraint([]Cell{a, b, c}, SumDistinct{Target: 6})

	contains := func(cells []Cell, want Cell) bool {
		for _, got := range cells {
			if got == want {
				return true
			}
		}
		return false
	}

	if !contains(st.Neighbors(a), b) || !contains(st.Neighbors(b), a) {
		t.Error("Constraint graph must be symmetric")
	}
	if len(st.Neighbors(a)) != 2 {
		t.Errorf("Expected 2 neighbors of a after deduplication, got %v", st.Neighbors(a))
	}
	if contains(st.Neighbors(a), a) {
		t.Error("Constraint graph must have no self-loops")
	}

	nodes, edges := st.GraphSize()
	if nodes != 3 || edges != 3 {
		t.Errorf("GraphSize() = (%d, %d), want (3, 3)", nodes, edges)
	}
}

func TestNeighborsOfIsolatedVariable(t *testing.T) {
	st := NewStore()
	a := Cell{0, 0}
	st.AddVariable(a, NewDomain(9))
	st.AddConstraint([]Cell{a}, SumDistinct{Target: 5})

	if got := st.Neighbors(a); len(got) != 0 {
		t.Errorf("Single-variable constraint must yield no neighbors, got %v", got)
	}
}

func TestUnregisteredVariableContractViolations(t *testing.T) {
	st := NewStore()

	t.Run("Neighbors panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for neighbors of unregistered variable")
			}
		}()
		st.Neighbors(Cell{9, 9})
	})

	t.Run("Domain panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for domain of unregistered variable")
			}
		}()
		st.Domain(Cell{9, 9})
	})

	t.Run("AddConstraint panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic for constraint over unregistered variable")
			}
		}()
		st.AddConstraint([]Cell{{9, 9}}, SumDistinct{Target: 5})
	})
}
