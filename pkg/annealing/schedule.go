package annealing

import "errors"

var (
	ErrNonPositiveSteps = errors.New("annealing: max steps must be positive")
	ErrBadCoolingRate   = errors.New("annealing: cooling rate must be in (0,1)")
)

// Schedule is the immutable temperature plan for one run. A StartTemp of
// zero or below is not an error: the run degrades to greedy acceptance.
type Schedule struct {
	StartTemp   float64
	CoolingRate float64
	MaxSteps    int

	// FloorTemp ends the run once the temperature decays below it.
	// Zero means no floor is configured.
	FloorTemp float64
}

func (s Schedule) Validate() error {
	if s.MaxSteps <= 0 {
		return ErrNonPositiveSteps
	}
	if s.CoolingRate <= 0 || s.CoolingRate >= 1 {
		return ErrBadCoolingRate
	}
	return nil
}
