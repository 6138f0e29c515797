// Package kakuro provides constraint satisfaction infrastructure.
// This file defines the Predicate evaluation contract and the SumDistinct
// predicate used for Kakuro runs.
package kakuro

import "fmt"

// Predicate is the evaluation contract a constraint's rule must satisfy.
// Holds receives the values of the constraint's scope in scope order and
// reports whether the rule is satisfied. The Store stays generic over any
// Predicate, while this puzzle family only ever needs SumDistinct.
//
// Predicates must be pure: no retained references, no mutation of the
// input slice.
type Predicate interface {
	// Holds reports whether the ordered scope values satisfy the rule.
	Holds(values []int) bool

	// Type returns a string identifying the predicate variant.
	Type() string

	// String returns a human-readable representation.
	String() string
}

// SumDistinct is the single predicate shape Kakuro needs: the scope's
// values must be pairwise distinct and sum to Target.
type SumDistinct struct {
	Target int
}

// Holds implements Predicate.
func (p SumDistinct) Holds(values []int) bool {
	sum := 0
	var seen uint64
	for _, v := range values {
		sum += v
		if v >= 1 && v <= 64 {
			bit := uint64(1) << uint(v-1)
			if seen&bit != 0 {
				return false
			}
			seen |= bit
		}
	}
	return sum == p.Target
}

// Type implements Predicate.
func (p SumDistinct) Type() string { return "SumDistinct" }

// String implements Predicate.
func (p SumDistinct) String() string {
	return fmt.Sprintf("SumDistinct(target=%d)", p.Target)
}

// Constraint couples an ordered scope of cells with the predicate their
// values must satisfy. Scope order is the discovery order during parsing.
// A constraint holds vacuously while any scope member is unassigned; see
// Store.IsValid.
type Constraint struct {
	Scope []Cell
	Pred  Predicate
}

// String returns a human-readable representation.
func (c Constraint) String() string {
	return fmt.Sprintf("%s over %v", c.Pred, c.Scope)
}
