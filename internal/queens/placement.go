package queens

import (
	"math/rand"

	"github.com/MovGP0/ThermodynimcComputing/pkg/annealing"
)

// Placement holds one queen per column: index = column, value = row.
// Starting from a permutation and perturbing only by transpositions keeps
// the one-queen-per-column invariant for the whole run. It implements
// annealing.Problem.
type Placement struct {
	rows []int
}

// NewPlacement assigns a uniformly random permutation of rows to columns.
func NewPlacement(n int, rng *rand.Rand) *Placement {
	return &Placement{rows: rng.Perm(n)}
}

// Size is the board dimension N.
func (p *Placement) Size() int { return len(p.rows) }

// Rows returns a copy of the row assignment.
func (p *Placement) Rows() []int {
	return append([]int(nil), p.rows...)
}

// swapMove transposes the rows of two columns.
type swapMove struct {
	a, b int
}

func (p *Placement) Propose(rng *rand.Rand) annealing.Move {
	n := len(p.rows)
	if n < 2 {
		return nil
	}
	a := rng.Intn(n)
	b := rng.Intn(n)
	for b == a {
		b = rng.Intn(n)
	}
	return swapMove{a: a, b: b}
}

func (p *Placement) Apply(m annealing.Move) int {
	mv := m.(swapMove)
	before := p.pairConflicts(mv.a, mv.b)
	p.rows[mv.a], p.rows[mv.b] = p.rows[mv.b], p.rows[mv.a]
	return p.pairConflicts(mv.a, mv.b) - before
}

func (p *Placement) Undo(m annealing.Move) {
	mv := m.(swapMove)
	p.rows[mv.a], p.rows[mv.b] = p.rows[mv.b], p.rows[mv.a]
}

// FullEnergy counts row and diagonal collisions over all pairs.
func (p *Placement) FullEnergy() int {
	n := 0
	for i := 0; i < len(p.rows); i++ {
		for j := i + 1; j < len(p.rows); j++ {
			if attacks(p.rows, i, j) {
				n++
			}
		}
	}
	return n
}

func (p *Placement) Clone() annealing.Problem {
	return &Placement{rows: p.Rows()}
}

// pairConflicts counts the conflicts involving columns a or b, which is
// everything a transposition of the two can change. The (a,b) pair itself
// is counted exactly once.
func (p *Placement) pairConflicts(a, b int) int {
	n := 0
	for k := range p.rows {
		if k != a && attacks(p.rows, a, k) {
			n++
		}
		if k != b && k != a && attacks(p.rows, b, k) {
			n++
		}
	}
	return n
}

func attacks(rows []int, i, j int) bool {
	if rows[i] == rows[j] {
		return true
	}
	dr := rows[i] - rows[j]
	if dr < 0 {
		dr = -dr
	}
	dc := i - j
	if dc < 0 {
		dc = -dc
	}
	return dr == dc
}

// AttackMask marks every column whose queen attacks another.
func AttackMask(rows []int) []bool {
	mask := make([]bool, len(rows))
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if attacks(rows, i, j) {
				mask[i] = true
				mask[j] = true
			}
		}
	}
	return mask
}
