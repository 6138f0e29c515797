// Package kakuro provides constraint satisfaction infrastructure.
// This file defines the per-solve instrumentation exposed to callers.
package kakuro

import (
	"fmt"
	"time"
)

// Metrics reports the constraint graph size and the counters of the most
// recent solve. Assignments counts every tentative assignment, whether or
// not it was ultimately kept. Both Assignments and Elapsed are reset at
// the start of each Solve call, so repeated solves never cross-contaminate
// counts.
type Metrics struct {
	// Nodes is the number of variables in the constraint graph.
	Nodes int

	// Edges is the number of undirected edges in the constraint graph.
	Edges int

	// Assignments is the number of tentative assignments made by the
	// last solve.
	Assignments int

	// Elapsed is the wall-clock duration of the last solve.
	Elapsed time.Duration
}

// String returns a human-readable summary. Formatting for display is
// otherwise the caller's concern.
func (m Metrics) String() string {
	return fmt.Sprintf("Constraint Graph: %d nodes, %d edges; %d assignments in %v",
		m.Nodes, m.Edges, m.Assignments, m.Elapsed)
}
