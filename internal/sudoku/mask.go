package sudoku

import "github.com/MovGP0/ThermodynimcComputing/internal/domain"

// ConflictMask marks every cell that shares its value with another cell
// in the same column or box. Rows are omitted: the sampler keeps row
// multisets complete, so the interesting residue lives in columns/boxes.
func ConflictMask(board domain.Grid) domain.CellMask {
	var mask domain.CellMask
	for c := 0; c < domain.GridSize; c++ {
		for r1 := 0; r1 < domain.GridSize; r1++ {
			for r2 := r1 + 1; r2 < domain.GridSize; r2++ {
				if board[r1][c] == board[r2][c] {
					mask[r1][c] = true
					mask[r2][c] = true
				}
			}
		}
	}
	for b := 0; b < domain.GridSize; b++ {
		cells := boxCells(b)
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				a, z := cells[i], cells[j]
				if board[a[0]][a[1]] == board[z[0]][z[1]] {
					mask[a[0]][a[1]] = true
					mask[z[0]][z[1]] = true
				}
			}
		}
	}
	return mask
}

func boxCells(b int) [][2]int {
	r0 := (b / domain.BoxSize) * domain.BoxSize
	c0 := (b % domain.BoxSize) * domain.BoxSize
	cells := make([][2]int, 0, domain.GridSize)
	for r := r0; r < r0+domain.BoxSize; r++ {
		for c := c0; c < c0+domain.BoxSize; c++ {
			cells = append(cells, [2]int{r, c})
		}
	}
	return cells
}
