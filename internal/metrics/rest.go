package metrics

import (
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

// Rest is the fraction of balls at rest at the last observed tick. An empty
// world counts as fully at rest.
type Rest struct {
	name    string
	resting int
	total   int
}

func NewRest() *Rest {
	return &Rest{name: "rest"}
}

func (r *Rest) Name() string {
	return r.name
}

func (r *Rest) Observe(w *sim.World, _ physics.StepStats) {
	r.total = len(w.Balls)
	r.resting = r.total - physics.Moving(w.Balls)
}

func (r *Rest) Value() float64 {
	if r.total == 0 {
		return 1.0
	}
	return float64(r.resting) / float64(r.total)
}

func (r *Rest) Reset() {
	r.resting = 0
	r.total = 0
}

// Standard returns a fresh set of the metrics every run records.
func Standard() []sim.Metric {
	return []sim.Metric{NewEnergy(), NewEnergyDrift(), NewCollisions(), NewRest()}
}
