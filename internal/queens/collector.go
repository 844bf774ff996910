package queens

import "github.com/MovGP0/ThermodynimcComputing/pkg/annealing"

// Collector deduplicates solved placements until a target count is
// reached. It grows monotonically; the canonical key is the row sequence.
type Collector struct {
	target     int
	seen       map[string]struct{}
	placements [][]int
}

// NewCollector builds a collector; a target of zero or below means
// unbounded, collecting until the caller's budget runs out.
func NewCollector(target int) *Collector {
	return &Collector{target: target, seen: make(map[string]struct{})}
}

// Offer records a solved placement, reporting whether it was new.
func (c *Collector) Offer(p annealing.Problem) bool {
	placement, ok := p.(*Placement)
	if !ok {
		return false
	}
	key := canonicalKey(placement.rows)
	if _, dup := c.seen[key]; dup {
		return false
	}
	c.seen[key] = struct{}{}
	c.placements = append(c.placements, placement.Rows())
	return true
}

// Done reports whether the target count has been reached.
func (c *Collector) Done() bool {
	return c.target > 0 && len(c.placements) >= c.target
}

// Count is the number of distinct placements collected so far.
func (c *Collector) Count() int { return len(c.placements) }

// Placements returns the distinct placements in acceptance order.
func (c *Collector) Placements() [][]int { return c.placements }

func canonicalKey(rows []int) string {
	b := make([]byte, len(rows))
	for i, r := range rows {
		b[i] = byte(r)
	}
	return string(b)
}
