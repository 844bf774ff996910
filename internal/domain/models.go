package domain

import "errors"

// Grid geometry. The sampler is written for classic 9x9 sudoku.
const (
	GridSize = 9
	BoxSize  = 3
)

// Hole-count bounds for generated puzzles.
const (
	MinHoles = 16
	MaxHoles = 64
)

// Grid is a sudoku board; zero marks an empty cell in puzzle input.
type Grid [GridSize][GridSize]int

// CellMask is a per-cell boolean overlay (givens, conflicts).
type CellMask [GridSize][GridSize]bool

// Config is the parameter surface shared by both samplers. Values come
// from an optional YAML file and are overridden by CLI flags.
type Config struct {
	Holes        int     `yaml:"holes"`
	BoardSize    int     `yaml:"board_size"`
	Solutions    int     `yaml:"solutions"`
	AllSolutions bool    `yaml:"all_solutions"`
	MaxSteps     int     `yaml:"max_steps"`
	StartTemp    float64 `yaml:"start_temp"`
	CoolingRate  float64 `yaml:"cooling_rate"`
	FloorTemp    float64 `yaml:"floor_temp"`
	Seed         int64   `yaml:"seed"`
	LogLevel     string  `yaml:"log_level"`
	LogFile      string  `yaml:"log_file"`
	PuzzleFile   string  `yaml:"puzzle_file"`
	OutFile      string  `yaml:"out_file"`
}

// DefaultSudokuConfig mirrors the CLI defaults of the sudoku sampler.
func DefaultSudokuConfig() *Config {
	return &Config{
		Holes:       48,
		MaxSteps:    250000,
		StartTemp:   2.4,
		CoolingRate: 0.9995,
		LogLevel:    "info",
	}
}

// DefaultQueensConfig mirrors the CLI defaults of the queens sampler.
func DefaultQueensConfig() *Config {
	return &Config{
		BoardSize:   8,
		Solutions:   5,
		MaxSteps:    100000,
		StartTemp:   2.4,
		CoolingRate: 0.995,
		LogLevel:    "info",
	}
}

// ClampHoles forces a requested hole count into the supported range.
func ClampHoles(n int) int {
	if n < MinHoles {
		return MinHoles
	}
	if n > MaxHoles {
		return MaxHoles
	}
	return n
}

var (
	ErrInvalidPuzzleFormat = errors.New("invalid puzzle format")
	ErrConflictingGivens   = errors.New("puzzle givens conflict with each other")
)
