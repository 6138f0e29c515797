// Package kakuro provides constraint satisfaction infrastructure.
// This file implements the board compiler, which parses a Kakuro grid
// into variables and sum/distinctness constraints in a Store.
package kakuro

import (
	"fmt"
	"strconv"
	"strings"
)

// FillCell marks a board cell awaiting a digit 1..MaxDigit.
const FillCell = "?"

// Board is a rectangular Kakuro grid. Each cell is one of:
//
//   - "" (or any string without a slash that is not FillCell): a void,
//     non-playable cell,
//   - FillCell ("?"): a fillable cell,
//   - a clue of the form "<vertical-sum>/<horizontal-sum>", where either
//     half may be empty. "/10" means horizontal sum 10 only; "7/" means
//     vertical sum 7 only.
type Board [][]string

// Compile parses the board row-major and returns a populated Store.
//
// For every clue cell: if the cell immediately to its right is fillable
// and the clue's horizontal half is present, the maximal contiguous run of
// fillable cells to the right becomes one SumDistinct constraint; likewise
// downward for the vertical half. Member cells are registered with the
// full domain 1..MaxDigit, idempotently, since a cell usually belongs to
// one horizontal and one vertical run.
//
// A clue half that is empty contributes no group on that side, and a clue
// with no adjacent fillable run is skipped rather than treated as an
// error. Compile fails only on a non-rectangular board or on a clue half
// that is present but not an integer.
func Compile(b Board) (*Store, error) {
	rows := len(b)
	if rows == 0 {
		return NewStore(), nil
	}
	cols := len(b[0])
	for r, row := range b {
		if len(row) != cols {
			return nil, fmt.Errorf("kakuro: board is not rectangular: row %d has %d cells, want %d", r, len(row), cols)
		}
	}

	store := NewStore()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			vPart, hPart, isClue := strings.Cut(b[r][c], "/")
			if !isClue {
				continue
			}
			if hPart != "" && c+1 < cols && b[r][c+1] == FillCell {
				target, err := strconv.Atoi(hPart)
				if err != nil {
					return nil, fmt.Errorf("kakuro: clue at (%d,%d): horizontal sum %q: %w", r, c, hPart, err)
				}
				addRun(store, collectRun(b, r, c+1, 0, 1), target)
			}
			if vPart != "" && r+1 < rows && b[r+1][c] == FillCell {
				target, err := strconv.Atoi(vPart)
				if err != nil {
					return nil, fmt.Errorf("kakuro: clue at (%d,%d): vertical sum %q: %w", r, c, vPart, err)
				}
				addRun(store, collectRun(b, r+1, c, 1, 0), target)
			}
		}
	}
	return store, nil
}

// collectRun walks from (r,c) in direction (dr,dc) collecting the maximal
// contiguous run of fillable cells.
func collectRun(b Board, r, c, dr, dc int) []Cell {
	var run []Cell
	for r >= 0 && r < len(b) && c >= 0 && c < len(b[r]) && b[r][c] == FillCell {
		run = append(run, Cell{Row: r, Col: c})
		r += dr
		c += dc
	}
	return run
}

// addRun registers the run's cells and one SumDistinct constraint over
// them. A run of length 1 still yields a single-variable constraint.
func addRun(store *Store, run []Cell, target int) {
	for _, cell := range run {
		store.AddVariable(cell, NewDomain(MaxDigit))
	}
	store.AddConstraint(run, SumDistinct{Target: target})
}
