package domain

// Renderer draws final states for the user. The core hands it plain data
// and has no say in layout or color.
type Renderer interface {
	Givens(cells Grid, givens CellMask)
	Sudoku(board Grid, givens, conflicts CellMask)
	Queens(rows []int, attacked []bool)
}

// SolutionWriter persists final states outside the terminal.
type SolutionWriter interface {
	WriteSudoku(filename string, board Grid) error
	WriteQueens(filename string, placements [][]int) error
}
