// Package render draws final boards on the terminal. It consumes plain
// data from the runners and owns all layout and color decisions.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
)

var (
	styleGiven    = lipgloss.NewStyle().Bold(true)
	styleFree     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	styleConflict = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
	styleQueen    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F"))
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

// ConsoleRenderer implements domain.Renderer on an io.Writer.
type ConsoleRenderer struct {
	out io.Writer
}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

// Givens prints the puzzle before solving; holes show as dots.
func (r *ConsoleRenderer) Givens(cells domain.Grid, givens domain.CellMask) {
	r.grid(func(row, col int) string {
		if !givens[row][col] {
			return styleMuted.Render(".")
		}
		return styleGiven.Render(fmt.Sprintf("%d", cells[row][col]))
	})
}

// Sudoku prints the final board: givens bold, sampled cells colored, and
// cells still in conflict highlighted.
func (r *ConsoleRenderer) Sudoku(board domain.Grid, givens, conflicts domain.CellMask) {
	r.grid(func(row, col int) string {
		cell := fmt.Sprintf("%d", board[row][col])
		switch {
		case conflicts[row][col]:
			return styleConflict.Render(cell)
		case givens[row][col]:
			return styleGiven.Render(cell)
		default:
			return styleFree.Render(cell)
		}
	})
}

// Queens prints the board with queens as Q, attacked queens highlighted.
func (r *ConsoleRenderer) Queens(rows []int, attacked []bool) {
	n := len(rows)
	for row := 0; row < n; row++ {
		cells := make([]string, n)
		for col := 0; col < n; col++ {
			switch {
			case rows[col] != row:
				cells[col] = styleMuted.Render(".")
			case attacked[col]:
				cells[col] = styleConflict.Render("Q")
			default:
				cells[col] = styleQueen.Render("Q")
			}
		}
		fmt.Fprintln(r.out, strings.Join(cells, " "))
	}
	fmt.Fprintln(r.out)
}

func (r *ConsoleRenderer) grid(cell func(row, col int) string) {
	sep := styleMuted.Render("+-------+-------+-------+")
	fmt.Fprintln(r.out, sep)
	for row := 0; row < domain.GridSize; row++ {
		var sb strings.Builder
		for col := 0; col < domain.GridSize; col++ {
			if col%domain.BoxSize == 0 {
				sb.WriteString(styleMuted.Render("|"))
				sb.WriteString(" ")
			}
			sb.WriteString(cell(row, col))
			sb.WriteString(" ")
		}
		sb.WriteString(styleMuted.Render("|"))
		fmt.Fprintln(r.out, sb.String())
		if row%domain.BoxSize == domain.BoxSize-1 {
			fmt.Fprintln(r.out, sep)
		}
	}
}
