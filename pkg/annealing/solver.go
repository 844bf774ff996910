package annealing

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// minTemp is the smallest temperature at which the Metropolis exponent is
// still evaluated; anything at or below behaves as greedy acceptance.
const minTemp = 1e-12

// StopReason records why a run ended.
type StopReason int

const (
	StopSolved StopReason = iota
	StopMaxSteps
	StopTempFloor
	StopTarget
)

func (r StopReason) String() string {
	switch r {
	case StopSolved:
		return "solved"
	case StopMaxSteps:
		return "max steps exhausted"
	case StopTempFloor:
		return "temperature floor reached"
	case StopTarget:
		return "solution target reached"
	default:
		return "unknown"
	}
}

// RunResult is the outcome of a single annealing run.
type RunResult struct {
	Best       Problem
	BestEnergy int
	Steps      int
	FinalTemp  float64
	Reason     StopReason
	Trace      TraceStats
}

// Solved reports whether the run reached a zero-energy state.
func (r RunResult) Solved() bool { return r.BestEnergy == 0 }

// CollectResult is the outcome of a multi-restart collection run.
type CollectResult struct {
	Restarts   int
	TotalSteps int
	Reached    bool
	Reason     StopReason
}

// Annealer drives the Metropolis search over any Problem. It knows nothing
// about grids or boards; the problem carries all domain semantics.
type Annealer struct {
	logger *zap.Logger
}

func NewAnnealer(logger *zap.Logger) *Annealer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annealer{logger: logger}
}

// Run anneals p until it reaches zero energy, the step budget runs out or
// the temperature falls below the configured floor. Exhausting the budget
// is a reported outcome, not an error.
func (a *Annealer) Run(p Problem, sched Schedule, rng *rand.Rand) (RunResult, error) {
	if err := sched.Validate(); err != nil {
		return RunResult{}, err
	}

	energy := p.FullEnergy()
	best := p.Clone()
	bestEnergy := energy
	temp := sched.StartTemp
	trace := newTrace(sched.MaxSteps)
	trace.observe(energy)

	steps := 0
	reason := StopMaxSteps
	for steps < sched.MaxSteps {
		if energy == 0 {
			break
		}
		if sched.FloorTemp > 0 && temp < sched.FloorTemp {
			reason = StopTempFloor
			break
		}
		steps++

		if m := p.Propose(rng); m != nil {
			delta := p.Apply(m)
			if accept(delta, temp, rng) {
				energy += delta
				trace.observe(energy)
				if energy < bestEnergy {
					bestEnergy = energy
					best = p.Clone()
				}
			} else {
				p.Undo(m)
			}
		}
		temp *= sched.CoolingRate
	}
	if energy == 0 {
		reason = StopSolved
	}

	result := RunResult{
		Best:       best,
		BestEnergy: bestEnergy,
		Steps:      steps,
		FinalTemp:  temp,
		Reason:     reason,
		Trace:      trace.stats(),
	}
	a.logger.Debug("annealing run finished",
		zap.Int("steps", steps),
		zap.Int("best_energy", bestEnergy),
		zap.Float64("final_temp", temp),
		zap.Stringer("reason", reason))
	return result, nil
}

// Collect keeps annealing fresh states and feeding solved ones to c until
// the target is reached or maxRestarts runs are spent. Restarting from a
// fresh state with the temperature reset is the continuation strategy; the
// shared rng keeps the whole collection reproducible from one seed.
func (a *Annealer) Collect(newProblem func(*rand.Rand) Problem, sched Schedule, c Collector, maxRestarts int, rng *rand.Rand) (CollectResult, error) {
	if err := sched.Validate(); err != nil {
		return CollectResult{}, err
	}

	var out CollectResult
	for out.Restarts < maxRestarts && !c.Done() {
		out.Restarts++
		res, err := a.Run(newProblem(rng), sched, rng)
		if err != nil {
			return out, err
		}
		out.TotalSteps += res.Steps
		if res.BestEnergy != 0 {
			continue
		}
		if fresh := c.Offer(res.Best); !fresh {
			a.logger.Debug("duplicate solution discarded",
				zap.Int("restart", out.Restarts))
		}
	}
	out.Reached = c.Done()
	if out.Reached {
		out.Reason = StopTarget
	} else {
		out.Reason = StopMaxSteps
	}
	return out, nil
}

// accept implements the Metropolis criterion. A non-positive delta always
// passes; a negligible temperature degrades to greedy acceptance instead
// of risking a division by zero.
func accept(delta int, temp float64, rng *rand.Rand) bool {
	if delta <= 0 {
		return true
	}
	if temp <= minTemp {
		return false
	}
	return rng.Float64() < math.Exp(-float64(delta)/temp)
}
