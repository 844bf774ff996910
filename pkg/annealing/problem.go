package annealing

import "math/rand"

// Move is an opaque, problem-specific perturbation produced by Propose.
type Move interface{}

// Problem is the capability surface the annealer drives. Implementations
// own their state and keep the energy bookkeeping incremental; FullEnergy
// is the from-scratch oracle used to seed the running value.
type Problem interface {
	// FullEnergy recounts every constraint violation from scratch.
	FullEnergy() int

	// Propose draws a candidate move without mutating the state.
	// A nil move means no perturbation is available this step.
	Propose(rng *rand.Rand) Move

	// Apply commits m and returns the energy change it caused.
	Apply(m Move) int

	// Undo reverts a move that was just applied.
	Undo(m Move)

	// Clone returns an independent deep copy for best-state tracking.
	Clone() Problem
}

// Collector receives zero-energy states during a collection run.
type Collector interface {
	// Offer records a solved state, reporting whether it was new.
	Offer(p Problem) bool

	// Done reports whether the target count has been reached.
	Done() bool
}
