// Package main is a minimal walkthrough of the kakuro solver API:
// compile a board, solve it with forward checking, and print the result.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gitrdm/kakulogic/pkg/kakuro"
)

func main() {
	board := kakuro.Board{
		{"", "7/", "13/", "16/", "", ""},
		{"/10", "?", "?", "?", "29/", ""},
		{"/28", "?", "?", "?", "?", "6/"},
		{"/4", "?", "?", "4/12", "?", "?"},
		{"", "/11", "?", "?", "?", "?"},
		{"", "", "/10", "?", "?", "?"},
	}

	solver := kakuro.NewSolver(board)
	if err := solver.Compile(); err != nil {
		fmt.Fprintln(os.Stderr, "compile:", err)
		os.Exit(1)
	}

	solution, err := solver.Solve(context.Background(), kakuro.Options{ForwardChecking: true})
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(1)
	}

	fmt.Println(solver.Metrics())
	for r, row := range board {
		for c := range row {
			if v, ok := solution[kakuro.Cell{Row: r, Col: c}]; ok {
				fmt.Printf(" %d", v)
			} else {
				fmt.Print(" .")
			}
		}
		fmt.Println()
	}
}
