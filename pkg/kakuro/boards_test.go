package kakuro

// Shared test fixtures: the known 7x7 sample layout with a unique solution
// and a known over-constrained 6x6 layout with none.

// sample7x7 has 16 fillable cells in 12 connected runs and exactly one
// satisfying assignment, recorded in sample7x7Solution.
func sample7x7() Board {
	return Board{
		{"", "", "16/", "7/", "", "", ""},
		{"", "5/14", "?", "?", "27/", "", ""},
		{"/14", "?", "?", "?", "?", "11/", ""},
		{"/4", "?", "?", "3/16", "?", "?", ""},
		{"", "/17", "?", "?", "?", "?", ""},
		{"", "", "/4", "?", "?", "", ""},
		{"", "", "", "", "", "", ""},
	}
}

// sample7x7Solution is the unique solution of sample7x7, checkable by hand
// against every run: 8+6=14, 2+4+1+7=14, 3+1=4, 9+7=16, 3+2+8+4=17,
// 1+3=4 horizontally; 8+4+1+3=16, 6+1=7, 2+3=5, 7+9+8+3=27, 7+4=11,
// 2+1=3 vertically.
func sample7x7Solution() Assignment {
	return Assignment{
		{1, 2}: 8, {1, 3}: 6,
		{2, 1}: 2, {2, 2}: 4, {2, 3}: 1, {2, 4}: 7,
		{3, 1}: 3, {3, 2}: 1, {3, 4}: 9, {3, 5}: 7,
		{4, 2}: 3, {4, 3}: 2, {4, 4}: 8, {4, 5}: 4,
		{5, 3}: 1, {5, 4}: 3,
	}
}

// overconstrained6x6 has 24 fillable cells and no solution: the first row
// demands five distinct digits summing to 5, below the 1+2+3+4+5 minimum.
func overconstrained6x6() Board {
	return Board{
		{"", "15/", "13/", "5/", "22/", "4/"},
		{"/5", "?", "?", "?", "?", "?"},
		{"/8", "?", "?", "?", "?", "?"},
		{"/4", "?", "?", "5/1", "?", "?"},
		{"/17", "?", "?", "?", "?", "?"},
		{"/29", "?", "?", "?", "?", "?"},
	}
}

// allOptionCombinations enumerates every configuration of the four
// toggleable techniques.
func allOptionCombinations() []Options {
	combos := make([]Options, 0, 16)
	for i := 0; i < 16; i++ {
		combos = append(combos, Options{
			ForwardChecking: i&1 != 0,
			ArcConsistency:  i&2 != 0,
			MRVOrdering:     i&4 != 0,
			Backjumping:     i&8 != 0,
		})
	}
	return combos
}

// optionsLabel names a combination for subtest output.
func optionsLabel(o Options) string {
	label := "Baseline"
	if o.Backjumping {
		label = "Backjumping"
	}
	if o.ForwardChecking {
		label += "+FC"
	}
	if o.ArcConsistency {
		label += "+AC3"
	}
	if o.MRVOrdering {
		label += "+MRV"
	}
	return label
}
