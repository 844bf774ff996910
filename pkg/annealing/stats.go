package annealing

import "gonum.org/v1/gonum/stat"

// TraceStats summarizes the accepted-energy trajectory of a run. It is
// diagnostic data only; nothing in the search depends on it.
type TraceStats struct {
	Samples int
	Mean    float64
	StdDev  float64
}

type trace struct {
	energies []float64
}

func newTrace(capacity int) *trace {
	if capacity > 4096 {
		capacity = 4096
	}
	return &trace{energies: make([]float64, 0, capacity)}
}

func (t *trace) observe(energy int) {
	t.energies = append(t.energies, float64(energy))
}

func (t *trace) stats() TraceStats {
	if len(t.energies) == 0 {
		return TraceStats{}
	}
	if len(t.energies) == 1 {
		return TraceStats{Samples: 1, Mean: t.energies[0]}
	}
	mean, std := stat.MeanStdDev(t.energies, nil)
	return TraceStats{
		Samples: len(t.energies),
		Mean:    mean,
		StdDev:  std,
	}
}
