package metrics

import (
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

// Collisions counts resolved contacts over a run.
type Collisions struct {
	name  string
	total int
}

func NewCollisions() *Collisions {
	return &Collisions{name: "collisions"}
}

func (c *Collisions) Name() string { return c.name }

func (c *Collisions) Observe(_ *sim.World, stats physics.StepStats) {
	c.total += stats.Resolved
}

func (c *Collisions) Value() float64 { return float64(c.total) }

func (c *Collisions) Reset() { c.total = 0 }
