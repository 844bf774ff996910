package sudoku

import (
	"math/rand"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
)

// Puzzle is a reference grid with a subset of cells erased. Given cells
// are immutable during search; erased cells are zero in Cells.
type Puzzle struct {
	Cells  domain.Grid
	Givens domain.CellMask
	Holes  int
}

// Generate builds a random solved grid and erases a clamped number of
// cells at positions drawn uniformly without replacement.
func Generate(holes int, rng *rand.Rand) *Puzzle {
	holes = domain.ClampHoles(holes)
	p := &Puzzle{Cells: fullSolution(rng), Holes: holes}
	for r := range p.Givens {
		for c := range p.Givens[r] {
			p.Givens[r][c] = true
		}
	}
	for _, idx := range rng.Perm(domain.GridSize * domain.GridSize)[:holes] {
		r, c := idx/domain.GridSize, idx%domain.GridSize
		p.Givens[r][c] = false
		p.Cells[r][c] = 0
	}
	return p
}

// FromGrid builds a puzzle from a supplied grid; zero cells are holes.
// The givens must not conflict with each other.
func FromGrid(g domain.Grid) (*Puzzle, error) {
	p := &Puzzle{Cells: g}
	for r := range g {
		for c := range g[r] {
			switch {
			case g[r][c] == 0:
				p.Holes++
			case g[r][c] >= 1 && g[r][c] <= domain.GridSize:
				p.Givens[r][c] = true
			default:
				return nil, domain.ErrInvalidPuzzleFormat
			}
		}
	}
	if !consistentGivens(p) {
		return nil, domain.ErrConflictingGivens
	}
	return p, nil
}

// GivenCount reports how many cells survive as givens.
func (p *Puzzle) GivenCount() int {
	n := 0
	for r := range p.Givens {
		for c := range p.Givens[r] {
			if p.Givens[r][c] {
				n++
			}
		}
	}
	return n
}

func consistentGivens(p *Puzzle) bool {
	var rows, cols, boxes [domain.GridSize][domain.GridSize + 1]int
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if !p.Givens[r][c] {
				continue
			}
			v := p.Cells[r][c]
			rows[r][v]++
			cols[c][v]++
			boxes[boxIndex(r, c)][v]++
			if rows[r][v] > 1 || cols[c][v] > 1 || boxes[boxIndex(r, c)][v] > 1 {
				return false
			}
		}
	}
	return true
}
