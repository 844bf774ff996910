package infrastructure

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
	"github.com/MovGP0/ThermodynimcComputing/internal/sudoku"
)

// PuzzleReader loads a supplied sudoku puzzle instead of generating one.
// The format is a single 81-character line in row-major order; '0' and
// '.' mark holes. Whitespace and blank lines are ignored.
type PuzzleReader struct {
	logger *zap.Logger
}

func NewPuzzleReader(logger *zap.Logger) *PuzzleReader {
	return &PuzzleReader{logger: logger}
}

func (p *PuzzleReader) ReadPuzzle(path string) (*sudoku.Puzzle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		puzzle, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		p.logger.Info("puzzle loaded",
			zap.String("path", path),
			zap.Int("givens", puzzle.GivenCount()))
		return puzzle, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, domain.ErrInvalidPuzzleFormat
}

func parseLine(line string) (*sudoku.Puzzle, error) {
	cells := domain.GridSize * domain.GridSize
	if len(line) != cells {
		return nil, domain.ErrInvalidPuzzleFormat
	}
	var g domain.Grid
	for i, ch := range []byte(line) {
		r, c := i/domain.GridSize, i%domain.GridSize
		switch {
		case ch == '.' || ch == '0':
			g[r][c] = 0
		case ch >= '1' && ch <= '9':
			g[r][c] = int(ch - '0')
		default:
			return nil, domain.ErrInvalidPuzzleFormat
		}
	}
	return sudoku.FromGrid(g)
}
