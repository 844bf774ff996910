package app

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
	"github.com/MovGP0/ThermodynimcComputing/internal/queens"
	"github.com/MovGP0/ThermodynimcComputing/internal/sudoku"
	"github.com/MovGP0/ThermodynimcComputing/pkg/annealing"
)

// restartBudgetPerTarget and restartBudgetBase size the restart budget of
// a collection run as target*12 + 5.
const (
	restartBudgetPerTarget = 12
	restartBudgetBase      = 5
)

// unboundedRestartBudget caps "all solutions" runs on board sizes whose
// true solution count is not tabled.
const unboundedRestartBudget = 1000

// SudokuRunner orchestrates a single sudoku annealing run.
type SudokuRunner struct {
	logger   *zap.Logger
	config   *domain.Config
	annealer *annealing.Annealer
}

func NewSudokuRunner(logger *zap.Logger, config *domain.Config) *SudokuRunner {
	return &SudokuRunner{
		logger:   logger,
		config:   config,
		annealer: annealing.NewAnnealer(logger),
	}
}

// SudokuReport carries everything a renderer or writer needs, as plain
// data with no formatting policy attached.
type SudokuReport struct {
	Puzzle    *sudoku.Puzzle
	Board     domain.Grid
	Conflicts domain.CellMask
	Result    annealing.RunResult
	Duration  time.Duration
}

// Solved reports whether the sampler reached a fully valid board.
func (r *SudokuReport) Solved() bool { return r.Result.Solved() }

// Run anneals the supplied puzzle, or a freshly generated one when puzzle
// is nil. The rng owns all randomness: identical seed and parameters
// reproduce the run bit for bit.
func (r *SudokuRunner) Run(puzzle *sudoku.Puzzle, rng *rand.Rand) (*SudokuReport, error) {
	if puzzle == nil {
		puzzle = sudoku.Generate(r.config.Holes, rng)
	}
	state := sudoku.NewState(puzzle, rng)

	r.logger.Info("starting sudoku run",
		zap.Int("holes", puzzle.Holes),
		zap.Int("givens", puzzle.GivenCount()),
		zap.Int("max_steps", r.config.MaxSteps),
		zap.Float64("start_temp", r.config.StartTemp))

	start := time.Now()
	res, err := r.annealer.Run(state, r.schedule(), rng)
	if err != nil {
		return nil, err
	}

	best := res.Best.(*sudoku.State)
	report := &SudokuReport{
		Puzzle:    puzzle,
		Board:     best.Board(),
		Conflicts: sudoku.ConflictMask(best.Board()),
		Result:    res,
		Duration:  time.Since(start),
	}
	r.logger.Info("sudoku run finished",
		zap.Int("steps", res.Steps),
		zap.Int("best_energy", res.BestEnergy),
		zap.Stringer("reason", res.Reason),
		zap.Float64("trace_mean", res.Trace.Mean),
		zap.Float64("trace_stddev", res.Trace.StdDev),
		zap.Duration("duration", report.Duration))
	return report, nil
}

func (r *SudokuRunner) schedule() annealing.Schedule {
	return annealing.Schedule{
		StartTemp:   r.config.StartTemp,
		CoolingRate: r.config.CoolingRate,
		MaxSteps:    r.config.MaxSteps,
		FloorTemp:   r.config.FloorTemp,
	}
}

// QueensRunner orchestrates a multi-restart queens collection run.
type QueensRunner struct {
	logger   *zap.Logger
	config   *domain.Config
	annealer *annealing.Annealer
}

func NewQueensRunner(logger *zap.Logger, config *domain.Config) *QueensRunner {
	return &QueensRunner{
		logger:   logger,
		config:   config,
		annealer: annealing.NewAnnealer(logger),
	}
}

// QueensReport carries the distinct placements in acceptance order plus
// collection diagnostics.
type QueensReport struct {
	BoardSize  int
	Target     int
	Placements [][]int
	Collect    annealing.CollectResult
	Duration   time.Duration
}

// Run collects distinct zero-energy placements until the target or the
// restart budget is reached.
func (r *QueensRunner) Run(rng *rand.Rand) (*QueensReport, error) {
	n := r.config.BoardSize
	target := r.targetCount(n)
	budget := unboundedRestartBudget
	if target > 0 {
		budget = target*restartBudgetPerTarget + restartBudgetBase
	}

	r.logger.Info("starting queens run",
		zap.Int("board_size", n),
		zap.Int("target", target),
		zap.Int("restart_budget", budget),
		zap.Int("max_steps", r.config.MaxSteps))

	collector := queens.NewCollector(target)
	newProblem := func(rng *rand.Rand) annealing.Problem {
		return queens.NewPlacement(n, rng)
	}

	start := time.Now()
	res, err := r.annealer.Collect(newProblem, r.schedule(), collector, budget, rng)
	if err != nil {
		return nil, err
	}

	report := &QueensReport{
		BoardSize:  n,
		Target:     target,
		Placements: collector.Placements(),
		Collect:    res,
		Duration:   time.Since(start),
	}
	r.logger.Info("queens run finished",
		zap.Int("collected", collector.Count()),
		zap.Int("restarts", res.Restarts),
		zap.Int("total_steps", res.TotalSteps),
		zap.Bool("target_reached", res.Reached),
		zap.Duration("duration", report.Duration))
	return report, nil
}

// targetCount resolves the goal mode: an explicit count clamped against
// the true total where known, or the full tabled total in all-solutions
// mode. Zero means unbounded.
func (r *QueensRunner) targetCount(n int) int {
	total, known := queens.KnownSolutionTotal(n)
	if r.config.AllSolutions {
		if known {
			return total
		}
		return 0
	}
	s := r.config.Solutions
	if s < 1 {
		s = 1
	}
	if known && s > total {
		s = total
	}
	return s
}

func (r *QueensRunner) schedule() annealing.Schedule {
	return annealing.Schedule{
		StartTemp:   r.config.StartTemp,
		CoolingRate: r.config.CoolingRate,
		MaxSteps:    r.config.MaxSteps,
		FloorTemp:   r.config.FloorTemp,
	}
}
