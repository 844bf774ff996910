package infrastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
)

// TXTSolutionWriter dumps final states to plain text files.
type TXTSolutionWriter struct {
	logger *zap.Logger
}

func NewTXTSolutionWriter(logger *zap.Logger) *TXTSolutionWriter {
	return &TXTSolutionWriter{logger: logger}
}

// WriteSudoku writes the board as nine lines of nine digits.
func (w *TXTSolutionWriter) WriteSudoku(filename string, board domain.Grid) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for _, row := range board {
		var sb strings.Builder
		for _, v := range row {
			sb.WriteByte(byte('0' + v))
		}
		fmt.Fprintln(writer, sb.String())
	}
	w.logger.Info("sudoku board written", zap.String("file", filename))
	return nil
}

// WriteQueens writes one placement per line as space-separated row
// indexes, column order left to right.
func (w *TXTSolutionWriter) WriteQueens(filename string, placements [][]int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for _, rows := range placements {
		parts := make([]string, len(rows))
		for i, r := range rows {
			parts[i] = strconv.Itoa(r)
		}
		fmt.Fprintln(writer, strings.Join(parts, " "))
	}
	w.logger.Info("queens placements written",
		zap.String("file", filename),
		zap.Int("count", len(placements)))
	return nil
}
