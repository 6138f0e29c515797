// Package kakuro provides constraint satisfaction infrastructure.
// This file defines the Cell variable identity and the Assignment mapping
// built up during search.
package kakuro

import "fmt"

// Cell identifies one fillable puzzle cell by its grid position.
// Cells are immutable and comparable, so they serve directly as variable
// identities and map keys throughout the solver.
type Cell struct {
	Row, Col int
}

// String returns a human-readable representation like "(2,5)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Assignment maps a subset of variables to chosen digits. It is built and
// torn down during search; it is partial during recursion and complete only
// at a solution. Solve always returns either a complete assignment or an
// error, never a partial one.
type Assignment map[Cell]int

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for c, v := range a {
		out[c] = v
	}
	return out
}
