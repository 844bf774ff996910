package queens

// knownTotals[n] is the number of distinct n-queens solutions (OEIS
// A000170) for the board sizes tabled here; 92 for the classic 8x8.
var knownTotals = []int{1, 1, 0, 0, 2, 10, 4, 40, 92, 352, 724, 2680, 14200}

// KnownSolutionTotal reports the true solution count for an n-by-n board,
// or false when n is beyond the table. "All solutions" runs on untabled
// sizes have no success target and simply exhaust their budget.
func KnownSolutionTotal(n int) (int, bool) {
	if n < 0 || n >= len(knownTotals) {
		return 0, false
	}
	return knownTotals[n], true
}
