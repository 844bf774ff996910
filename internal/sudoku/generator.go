package sudoku

import (
	"math/rand"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
)

// fullSolution produces a shuffled valid grid from the cyclic base
// pattern by permuting row/column bands, the lines inside each band, and
// the digit labels. Every grid built this way satisfies all 27 units.
func fullSolution(rng *rand.Rand) domain.Grid {
	rows := shuffledLines(rng)
	cols := shuffledLines(rng)
	digits := rng.Perm(domain.GridSize)

	var g domain.Grid
	for i, r := range rows {
		for j, c := range cols {
			g[i][j] = digits[pattern(r, c)] + 1
		}
	}
	return g
}

// shuffledLines shuffles the three bands and the three lines inside each
// band. Whole-band and in-band permutations preserve validity.
func shuffledLines(rng *rand.Rand) [domain.GridSize]int {
	var lines [domain.GridSize]int
	i := 0
	for _, band := range rng.Perm(domain.BoxSize) {
		for _, offset := range rng.Perm(domain.BoxSize) {
			lines[i] = band*domain.BoxSize + offset
			i++
		}
	}
	return lines
}

func pattern(r, c int) int {
	return (domain.BoxSize*(r%domain.BoxSize) + r/domain.BoxSize + c) % domain.GridSize
}
