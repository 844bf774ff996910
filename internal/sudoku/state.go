package sudoku

import (
	"math/rand"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
	"github.com/MovGP0/ThermodynimcComputing/pkg/annealing"
)

// State is a full board whose free cells are rearranged by the sampler.
// It implements annealing.Problem.
type State struct {
	board   domain.Grid
	givens  domain.CellMask
	rowFree [domain.GridSize][]int
}

// NewState fills every free cell with one of its row's missing digits, so
// each row holds the digits 1..9 exactly once from the start. Search then
// only has to repair column and box conflicts.
func NewState(p *Puzzle, rng *rand.Rand) *State {
	s := &State{board: p.Cells, givens: p.Givens}
	for r := 0; r < domain.GridSize; r++ {
		var present [domain.GridSize + 1]bool
		for c := 0; c < domain.GridSize; c++ {
			if p.Givens[r][c] {
				present[p.Cells[r][c]] = true
			}
		}
		var missing []int
		for v := 1; v <= domain.GridSize; v++ {
			if !present[v] {
				missing = append(missing, v)
			}
		}
		rng.Shuffle(len(missing), func(i, j int) {
			missing[i], missing[j] = missing[j], missing[i]
		})
		k := 0
		for c := 0; c < domain.GridSize; c++ {
			if p.Givens[r][c] {
				continue
			}
			s.board[r][c] = missing[k]
			k++
			s.rowFree[r] = append(s.rowFree[r], c)
		}
	}
	return s
}

// Board returns the current grid by value.
func (s *State) Board() domain.Grid { return s.board }

// GivensMask returns the immutable-cell mask by value.
func (s *State) GivensMask() domain.CellMask { return s.givens }

// swapMove exchanges the values of two free cells in one row.
type swapMove struct {
	row, colA, colB int
}

// Propose picks a row uniformly, then two distinct free cells in it.
// Rows with fewer than two free cells yield no move for this step.
func (s *State) Propose(rng *rand.Rand) annealing.Move {
	row := rng.Intn(domain.GridSize)
	free := s.rowFree[row]
	if len(free) < 2 {
		return nil
	}
	i := rng.Intn(len(free))
	j := rng.Intn(len(free))
	for j == i {
		j = rng.Intn(len(free))
	}
	return swapMove{row: row, colA: free[i], colB: free[j]}
}

func (s *State) Apply(m annealing.Move) int {
	mv := m.(swapMove)
	before := s.localConflicts(mv)
	s.swap(mv)
	return s.localConflicts(mv) - before
}

func (s *State) Undo(m annealing.Move) {
	s.swap(m.(swapMove))
}

// FullEnergy recounts duplicates in every row, column and box. Rows stay
// conflict-free under in-row swaps but are counted anyway: this is the
// oracle the incremental path is checked against.
func (s *State) FullEnergy() int {
	e := 0
	for i := 0; i < domain.GridSize; i++ {
		e += s.rowConflicts(i) + s.columnConflicts(i) + s.boxConflicts(i)
	}
	return e
}

func (s *State) Clone() annealing.Problem {
	clone := &State{board: s.board, givens: s.givens}
	for r := range s.rowFree {
		clone.rowFree[r] = append([]int(nil), s.rowFree[r]...)
	}
	return clone
}

func (s *State) swap(mv swapMove) {
	r := mv.row
	s.board[r][mv.colA], s.board[r][mv.colB] = s.board[r][mv.colB], s.board[r][mv.colA]
}

// localConflicts counts violations in the units an in-row swap can touch:
// the two columns and the one or two boxes of the swapped cells. The
// shared row's digit multiset is unchanged, so the row is skipped.
func (s *State) localConflicts(mv swapMove) int {
	n := s.columnConflicts(mv.colA) + s.columnConflicts(mv.colB)
	boxA := boxIndex(mv.row, mv.colA)
	boxB := boxIndex(mv.row, mv.colB)
	n += s.boxConflicts(boxA)
	if boxB != boxA {
		n += s.boxConflicts(boxB)
	}
	return n
}

func (s *State) rowConflicts(r int) int {
	var counts [domain.GridSize + 1]int
	for c := 0; c < domain.GridSize; c++ {
		counts[s.board[r][c]]++
	}
	return excess(counts)
}

func (s *State) columnConflicts(c int) int {
	var counts [domain.GridSize + 1]int
	for r := 0; r < domain.GridSize; r++ {
		counts[s.board[r][c]]++
	}
	return excess(counts)
}

func (s *State) boxConflicts(b int) int {
	r0 := (b / domain.BoxSize) * domain.BoxSize
	c0 := (b % domain.BoxSize) * domain.BoxSize
	var counts [domain.GridSize + 1]int
	for r := r0; r < r0+domain.BoxSize; r++ {
		for c := c0; c < c0+domain.BoxSize; c++ {
			counts[s.board[r][c]]++
		}
	}
	return excess(counts)
}

// excess sums the surplus occurrences per value: a digit appearing k>1
// times in a unit contributes k-1.
func excess(counts [domain.GridSize + 1]int) int {
	n := 0
	for v := 1; v <= domain.GridSize; v++ {
		if counts[v] > 1 {
			n += counts[v] - 1
		}
	}
	return n
}

func boxIndex(r, c int) int {
	return (r/domain.BoxSize)*domain.BoxSize + c/domain.BoxSize
}
