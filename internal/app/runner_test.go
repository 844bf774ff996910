package app

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
	"github.com/MovGP0/ThermodynimcComputing/internal/queens"
	"github.com/MovGP0/ThermodynimcComputing/pkg/annealing"
)

func TestSudokuRunnerIsDeterministic(t *testing.T) {
	cfg := domain.DefaultSudokuConfig()
	cfg.Holes = 30
	cfg.MaxSteps = 20000

	run := func() *SudokuReport {
		rng := rand.New(rand.NewSource(123))
		report, err := NewSudokuRunner(zap.NewNop(), cfg).Run(nil, rng)
		require.NoError(t, err)
		return report
	}

	first := run()
	second := run()

	assert.Equal(t, first.Board, second.Board)
	assert.Equal(t, first.Puzzle.Givens, second.Puzzle.Givens)
	assert.Equal(t, first.Result.Steps, second.Result.Steps)
	assert.Equal(t, first.Result.BestEnergy, second.Result.BestEnergy)
}

func TestSudokuRunnerClampsHoles(t *testing.T) {
	cfg := domain.DefaultSudokuConfig()
	cfg.Holes = 3
	cfg.MaxSteps = 1000

	rng := rand.New(rand.NewSource(1))
	report, err := NewSudokuRunner(zap.NewNop(), cfg).Run(nil, rng)
	require.NoError(t, err)

	assert.Equal(t, domain.MinHoles, report.Puzzle.Holes)
}

func TestSudokuRunnerReportsBudgetExhaustion(t *testing.T) {
	cfg := domain.DefaultSudokuConfig()
	cfg.Holes = 64
	cfg.MaxSteps = 100

	rng := rand.New(rand.NewSource(5))
	report, err := NewSudokuRunner(zap.NewNop(), cfg).Run(nil, rng)
	require.NoError(t, err)

	assert.False(t, report.Solved())
	assert.Equal(t, annealing.StopMaxSteps, report.Result.Reason)
	assert.Greater(t, report.Result.BestEnergy, 0)
}

func TestQueensRunnerFindsOneSolution(t *testing.T) {
	cfg := domain.DefaultQueensConfig()
	cfg.Solutions = 1
	cfg.MaxSteps = 20000

	rng := rand.New(rand.NewSource(7))
	report, err := NewQueensRunner(zap.NewNop(), cfg).Run(rng)
	require.NoError(t, err)

	require.Len(t, report.Placements, 1)
	assert.True(t, report.Collect.Reached)
	assert.Equal(t, annealing.StopTarget, report.Collect.Reason)
	rows := report.Placements[0]
	require.Len(t, rows, 8)
	for _, attacked := range queens.AttackMask(rows) {
		assert.False(t, attacked)
	}

	occupied := make(map[int]bool)
	for _, r := range rows {
		occupied[r] = true
	}
	assert.Len(t, occupied, 8, "all columns hold distinct rows")
}

func TestQueensRunnerIsDeterministic(t *testing.T) {
	cfg := domain.DefaultQueensConfig()
	cfg.Solutions = 3
	cfg.MaxSteps = 20000

	run := func() *QueensReport {
		rng := rand.New(rand.NewSource(99))
		report, err := NewQueensRunner(zap.NewNop(), cfg).Run(rng)
		require.NoError(t, err)
		return report
	}

	first := run()
	second := run()

	assert.Equal(t, first.Placements, second.Placements)
	assert.Equal(t, first.Collect.Restarts, second.Collect.Restarts)
	assert.Equal(t, first.Collect.TotalSteps, second.Collect.TotalSteps)
}

func TestQueensRunnerTargetResolution(t *testing.T) {
	cases := []struct {
		name      string
		boardSize int
		solutions int
		all       bool
		want      int
	}{
		{"default five", 8, 5, false, 5},
		{"clamped to true total", 8, 500, false, 92},
		{"at least one", 8, 0, false, 1},
		{"all solutions tabled", 8, 5, true, 92},
		{"all solutions small board", 6, 5, true, 4},
		{"all solutions untabled", 16, 5, true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := domain.DefaultQueensConfig()
			cfg.BoardSize = tc.boardSize
			cfg.Solutions = tc.solutions
			cfg.AllSolutions = tc.all

			r := NewQueensRunner(zap.NewNop(), cfg)
			assert.Equal(t, tc.want, r.targetCount(tc.boardSize))
		})
	}
}
