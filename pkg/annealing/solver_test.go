package annealing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterProblem walks an integer toward zero; energy = |value|.
type counterProblem struct {
	value int
}

type stepMove int

func (p *counterProblem) FullEnergy() int {
	if p.value < 0 {
		return -p.value
	}
	return p.value
}

func (p *counterProblem) Propose(rng *rand.Rand) Move {
	if rng.Intn(2) == 0 {
		return stepMove(1)
	}
	return stepMove(-1)
}

func (p *counterProblem) Apply(m Move) int {
	before := p.FullEnergy()
	p.value += int(m.(stepMove))
	return p.FullEnergy() - before
}

func (p *counterProblem) Undo(m Move) {
	p.value -= int(m.(stepMove))
}

func (p *counterProblem) Clone() Problem {
	return &counterProblem{value: p.value}
}

// worseningProblem only ever proposes moves that raise the energy.
type worseningProblem struct {
	energy int
}

func (p *worseningProblem) FullEnergy() int         { return p.energy }
func (p *worseningProblem) Propose(*rand.Rand) Move { return stepMove(1) }
func (p *worseningProblem) Apply(Move) int          { p.energy++; return 1 }
func (p *worseningProblem) Undo(Move)               { p.energy-- }
func (p *worseningProblem) Clone() Problem          { return &worseningProblem{energy: p.energy} }

// recordingProblem tracks the energy of every state the engine settles
// on, so best-state dominance can be checked from outside.
type recordingProblem struct {
	inner   *counterProblem
	energy  int
	pending []int
	history []int
}

func (p *recordingProblem) FullEnergy() int {
	p.energy = p.inner.FullEnergy()
	p.history = append(p.history, p.energy)
	return p.energy
}

func (p *recordingProblem) Propose(rng *rand.Rand) Move { return p.inner.Propose(rng) }

func (p *recordingProblem) Apply(m Move) int {
	delta := p.inner.Apply(m)
	p.energy += delta
	p.pending = append(p.pending, delta)
	p.history = append(p.history, p.energy)
	return delta
}

func (p *recordingProblem) Undo(m Move) {
	p.inner.Undo(m)
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:len(p.pending)-1]
	p.energy -= last
	p.history = p.history[:len(p.history)-1]
}

func (p *recordingProblem) Clone() Problem { return p.inner.Clone() }

func TestRunSolvesCounterGreedily(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := &counterProblem{value: 5}

	res, err := NewAnnealer(nil).Run(p, Schedule{StartTemp: 0, CoolingRate: 0.99, MaxSteps: 1000}, rng)
	require.NoError(t, err)

	assert.True(t, res.Solved())
	assert.Equal(t, StopSolved, res.Reason)
	assert.Equal(t, 0, res.BestEnergy)
	assert.Less(t, res.Steps, 1000)
}

func TestRunStopsOnStepBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := &counterProblem{value: 1000}

	res, err := NewAnnealer(nil).Run(p, Schedule{StartTemp: 1, CoolingRate: 0.99, MaxSteps: 10}, rng)
	require.NoError(t, err)

	assert.Equal(t, StopMaxSteps, res.Reason)
	assert.Equal(t, 10, res.Steps)
	assert.Greater(t, res.BestEnergy, 0)
}

func TestRunStopsOnTemperatureFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := &counterProblem{value: 1000}

	res, err := NewAnnealer(nil).Run(p, Schedule{StartTemp: 1, CoolingRate: 0.5, MaxSteps: 100000, FloorTemp: 0.25}, rng)
	require.NoError(t, err)

	assert.Equal(t, StopTempFloor, res.Reason)
	assert.Less(t, res.Steps, 10)
}

func TestRunRejectsWorseningMovesWhenCold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, startTemp := range []float64{0, -3} {
		p := &worseningProblem{energy: 7}
		res, err := NewAnnealer(nil).Run(p, Schedule{StartTemp: startTemp, CoolingRate: 0.9, MaxSteps: 500}, rng)
		require.NoError(t, err)

		assert.Equal(t, 7, res.BestEnergy, "greedy run must never accept a worsening move")
		assert.Equal(t, 7, p.energy)
		assert.False(t, math.IsNaN(res.FinalTemp), "final temperature must not be NaN")
	}
}

func TestRunBestEnergyDominatesEveryObservedState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := &recordingProblem{inner: &counterProblem{value: 40}}

	res, err := NewAnnealer(nil).Run(p, Schedule{StartTemp: 5, CoolingRate: 0.999, MaxSteps: 2000}, rng)
	require.NoError(t, err)
	require.NotEmpty(t, p.history)

	for _, observed := range p.history {
		assert.LessOrEqual(t, res.BestEnergy, observed)
	}
}

func TestRunIsDeterministicForIdenticalSeeds(t *testing.T) {
	run := func() RunResult {
		rng := rand.New(rand.NewSource(99))
		res, err := NewAnnealer(nil).Run(&counterProblem{value: 30}, Schedule{StartTemp: 2, CoolingRate: 0.995, MaxSteps: 5000}, rng)
		require.NoError(t, err)
		return res
	}

	first := run()
	second := run()

	assert.Equal(t, first.Steps, second.Steps)
	assert.Equal(t, first.BestEnergy, second.BestEnergy)
	assert.Equal(t, first.FinalTemp, second.FinalTemp)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, first.Trace, second.Trace)
}

func TestRunSeedsEnergyWithFullRecomputation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := &counterProblem{value: 3}

	res, err := NewAnnealer(nil).Run(p, Schedule{StartTemp: 0, CoolingRate: 0.9, MaxSteps: 1}, rng)
	require.NoError(t, err)

	// One step cannot hide a wrong starting energy: best is either the
	// initial 3 or 2 after a single accepted improvement.
	assert.Contains(t, []int{2, 3}, res.BestEnergy)
	assert.GreaterOrEqual(t, res.Trace.Samples, 1)
}

func TestScheduleValidation(t *testing.T) {
	cases := []struct {
		name  string
		sched Schedule
		want  error
	}{
		{"zero steps", Schedule{CoolingRate: 0.9}, ErrNonPositiveSteps},
		{"negative steps", Schedule{CoolingRate: 0.9, MaxSteps: -5}, ErrNonPositiveSteps},
		{"cooling too high", Schedule{CoolingRate: 1.0, MaxSteps: 10}, ErrBadCoolingRate},
		{"cooling zero", Schedule{CoolingRate: 0, MaxSteps: 10}, ErrBadCoolingRate},
		{"valid", Schedule{StartTemp: 1, CoolingRate: 0.99, MaxSteps: 10}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sched.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestRunRejectsInvalidSchedule(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := NewAnnealer(nil).Run(&counterProblem{value: 1}, Schedule{}, rng)
	assert.ErrorIs(t, err, ErrNonPositiveSteps)
}

func TestTraceStats(t *testing.T) {
	tr := newTrace(16)
	for _, e := range []int{4, 2, 0} {
		tr.observe(e)
	}
	got := tr.stats()

	assert.Equal(t, 3, got.Samples)
	assert.InDelta(t, 2.0, got.Mean, 1e-9)
	assert.InDelta(t, 2.0, got.StdDev, 1e-9)
}

func TestTraceStatsSingleSample(t *testing.T) {
	tr := newTrace(1)
	tr.observe(5)
	got := tr.stats()

	assert.Equal(t, 1, got.Samples)
	assert.Equal(t, 5.0, got.Mean)
	assert.Equal(t, 0.0, got.StdDev, "single sample must not produce NaN")
}
