package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MovGP0/ThermodynimcComputing/internal/app"
	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
	"github.com/MovGP0/ThermodynimcComputing/internal/infrastructure"
	"github.com/MovGP0/ThermodynimcComputing/internal/queens"
	"github.com/MovGP0/ThermodynimcComputing/internal/render"
	"github.com/MovGP0/ThermodynimcComputing/internal/sudoku"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sampler",
		Short:        "Thermodynamic sampling emulation for Sudoku and N-Queens",
		Long:         `A simulated-annealing sampler that completes partially erased sudoku grids and collects distinct non-attacking queen placements.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSudokuCommand(), newQueensCommand())
	return root
}

func newSudokuCommand() *cobra.Command {
	cfg := domain.DefaultSudokuConfig()
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Complete a partially erased sudoku grid by annealing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSudoku(cmd, cfg)
		},
	}
	flags := cmd.Flags()
	flags.String("config", "", "Path to YAML config file")
	flags.Int("holes", cfg.Holes, "Number of removed cells (clamped to [16,64])")
	flags.Int("max-steps", cfg.MaxSteps, "Maximum annealing swaps")
	flags.Float64("start-temp", cfg.StartTemp, "Starting temperature for the sampler")
	flags.Float64("cooling-rate", cfg.CoolingRate, "Cooling multiplier per swap")
	flags.Float64("floor-temp", cfg.FloorTemp, "Stop once temperature decays below this (0 = no floor)")
	flags.Int64("seed", 0, "RNG seed for deterministic runs (0 = time-based)")
	flags.String("puzzle", "", "Read an 81-character puzzle file instead of generating one")
	flags.String("out", "", "Write the final board to this file")
	flags.String("log-level", cfg.LogLevel, "Log level")
	flags.String("log-file", "", "Log file (default stderr)")
	return cmd
}

func newQueensCommand() *cobra.Command {
	cfg := domain.DefaultQueensConfig()
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Collect distinct non-attacking queen placements by annealing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueens(cmd, cfg)
		},
	}
	flags := cmd.Flags()
	flags.String("config", "", "Path to YAML config file")
	flags.Int("board-size", cfg.BoardSize, "Board dimension N")
	flags.Int("solutions", cfg.Solutions, "Distinct solutions to collect")
	flags.Bool("all-solutions", false, "Collect every distinct solution (92 for N=8)")
	flags.Int("max-steps", cfg.MaxSteps, "Max swaps per restart")
	flags.Float64("start-temp", cfg.StartTemp, "Starting temperature for the sampler")
	flags.Float64("cooling-rate", cfg.CoolingRate, "Cooling multiplier per swap")
	flags.Float64("floor-temp", cfg.FloorTemp, "Stop a restart once temperature decays below this (0 = no floor)")
	flags.Int64("seed", 0, "RNG seed for deterministic runs (0 = time-based)")
	flags.String("out", "", "Write collected placements to this file")
	flags.String("log-level", cfg.LogLevel, "Log level")
	flags.String("log-file", "", "Log file (default stderr)")
	return cmd
}

func runSudoku(cmd *cobra.Command, cfg *domain.Config) error {
	logger, rng, err := setup(cmd, cfg, applySudokuFlags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var puzzle *sudoku.Puzzle
	if cfg.PuzzleFile != "" {
		puzzle, err = infrastructure.NewPuzzleReader(logger).ReadPuzzle(cfg.PuzzleFile)
		if err != nil {
			return err
		}
	} else {
		puzzle = sudoku.Generate(cfg.Holes, rng)
	}

	out := cmd.OutOrStdout()
	var renderer domain.Renderer = render.NewConsoleRenderer(out)
	fmt.Fprintf(out, "Sudoku puzzle (holes=%d, givens=%d)\n", puzzle.Holes, puzzle.GivenCount())
	renderer.Givens(puzzle.Cells, puzzle.Givens)

	report, err := app.NewSudokuRunner(logger, cfg).Run(puzzle, rng)
	if err != nil {
		return err
	}

	renderer.Sudoku(report.Board, report.Puzzle.Givens, report.Conflicts)
	if report.Solved() {
		fmt.Fprintf(out, "Solved after %d swaps in %s\n",
			report.Result.Steps, report.Duration.Round(time.Millisecond))
	} else {
		fmt.Fprintf(out, "No perfect solution found: best energy %d (%s) after %d swaps\n",
			report.Result.BestEnergy, report.Result.Reason, report.Result.Steps)
	}

	if cfg.OutFile != "" {
		var writer domain.SolutionWriter = infrastructure.NewTXTSolutionWriter(logger)
		return writer.WriteSudoku(cfg.OutFile, report.Board)
	}
	return nil
}

func runQueens(cmd *cobra.Command, cfg *domain.Config) error {
	logger, rng, err := setup(cmd, cfg, applyQueensFlags)
	if err != nil {
		return err
	}
	defer logger.Sync()

	report, err := app.NewQueensRunner(logger, cfg).Run(rng)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(report.Placements) == 0 {
		fmt.Fprintln(out, "No valid placement found")
		return nil
	}

	var renderer domain.Renderer = render.NewConsoleRenderer(out)
	for i, rows := range report.Placements {
		fmt.Fprintf(out, "Solution #%d\n", i+1)
		renderer.Queens(rows, queens.AttackMask(rows))
	}
	fmt.Fprintf(out, "Collected %d distinct solutions (%d restarts, %d swaps) in %s\n",
		len(report.Placements), report.Collect.Restarts, report.Collect.TotalSteps,
		report.Duration.Round(time.Millisecond))
	if !report.Collect.Reached && report.Target > 0 {
		fmt.Fprintf(out, "Target of %d not reached within the restart budget\n", report.Target)
	}

	if cfg.OutFile != "" {
		var writer domain.SolutionWriter = infrastructure.NewTXTSolutionWriter(logger)
		return writer.WriteQueens(cfg.OutFile, report.Placements)
	}
	return nil
}

// setup resolves the config (file, then flags), builds the logger and
// seeds the run's RNG. The RNG is the only randomness source; everything
// downstream receives it explicitly.
func setup(cmd *cobra.Command, cfg *domain.Config, applyFlags func(*cobra.Command, *domain.Config)) (*zap.Logger, *rand.Rand, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		bootstrap := initLogger(cfg.LogLevel, cfg.LogFile)
		if err := infrastructure.NewYAMLConfigReader(bootstrap).Read(path, cfg); err != nil {
			bootstrap.Sync()
			return nil, nil, err
		}
		bootstrap.Sync()
	}
	applyFlags(cmd, cfg)

	logger := initLogger(cfg.LogLevel, cfg.LogFile)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("seeding sampler", zap.Int64("seed", seed))
	return logger, rand.New(rand.NewSource(seed)), nil
}

func applyCommonFlags(cmd *cobra.Command, cfg *domain.Config) {
	flags := cmd.Flags()
	if flags.Changed("max-steps") {
		cfg.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("start-temp") {
		cfg.StartTemp, _ = flags.GetFloat64("start-temp")
	}
	if flags.Changed("cooling-rate") {
		cfg.CoolingRate, _ = flags.GetFloat64("cooling-rate")
	}
	if flags.Changed("floor-temp") {
		cfg.FloorTemp, _ = flags.GetFloat64("floor-temp")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("out") {
		cfg.OutFile, _ = flags.GetString("out")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
}

func applySudokuFlags(cmd *cobra.Command, cfg *domain.Config) {
	applyCommonFlags(cmd, cfg)
	flags := cmd.Flags()
	if flags.Changed("holes") {
		cfg.Holes, _ = flags.GetInt("holes")
	}
	if flags.Changed("puzzle") {
		cfg.PuzzleFile, _ = flags.GetString("puzzle")
	}
}

func applyQueensFlags(cmd *cobra.Command, cfg *domain.Config) {
	applyCommonFlags(cmd, cfg)
	flags := cmd.Flags()
	if flags.Changed("board-size") {
		cfg.BoardSize, _ = flags.GetInt("board-size")
	}
	if flags.Changed("solutions") {
		cfg.Solutions, _ = flags.GetInt("solutions")
	}
	if flags.Changed("all-solutions") {
		cfg.AllSolutions, _ = flags.GetBool("all-solutions")
	}
}

// initLogger builds the process logger with the configured level, writing
// to the log file when one is set and stderr otherwise.
func initLogger(level, logFile string) *zap.Logger {
	config := zap.NewProductionConfig()

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputs := []string{"stderr"}
	if logFile != "" {
		outputs = []string{logFile}
	}
	config.OutputPaths = outputs
	config.ErrorOutputPaths = outputs
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	logger, _ := config.Build()
	return logger
}
