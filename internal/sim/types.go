package sim

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/geom"
	"github.com/san-kum/ballsim/internal/physics"
)

// World is the full simulation state owned by a Simulator. Frontends read it
// between ticks and never while a step is in progress.
type World struct {
	Balls    []physics.Ball
	Bounds   geom.Bounds
	Friction physics.FrictionMode
	Time     float64
	// Contacts holds the collision lines of the most recent tick.
	Contacts []physics.Contact
}

func NewWorld(balls []physics.Ball, bounds geom.Bounds, friction physics.FrictionMode) *World {
	return &World{
		Balls:    balls,
		Bounds:   bounds,
		Friction: friction,
	}
}

// HitTest returns the first ball, in index order, containing p.
func (w *World) HitTest(p r2.Point) (int, bool) {
	for i := range w.Balls {
		if geom.PointInCircle(p, w.Balls[i].Position, w.Balls[i].Radius) {
			return i, true
		}
	}
	return -1, false
}

func (w *World) Valid(i int) bool { return i >= 0 && i < len(w.Balls) }

func (w *World) OverridePosition(i int, p r2.Point) bool {
	if !w.Valid(i) {
		return false
	}
	w.Balls[i].Position = p
	return true
}

func (w *World) SetVelocity(i int, v r2.Point) bool {
	if !w.Valid(i) {
		return false
	}
	w.Balls[i].Velocity = v
	return true
}

// StopAll zeroes every ball's velocity.
func (w *World) StopAll() {
	for i := range w.Balls {
		w.Balls[i].Velocity = r2.Point{}
	}
}

func (w *World) Clone() *World {
	c := *w
	c.Balls = make([]physics.Ball, len(w.Balls))
	copy(c.Balls, w.Balls)
	c.Contacts = make([]physics.Contact, len(w.Contacts))
	copy(c.Contacts, w.Contacts)
	return &c
}

// IsValid reports whether every position and velocity is finite.
func (w *World) IsValid() bool {
	for i := range w.Balls {
		b := &w.Balls[i]
		for _, v := range [4]float64{b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Hold pins a ball to the pointer for one tick.
type Hold struct {
	Index    int
	Position r2.Point
}

// Launch assigns a ball's velocity once.
type Launch struct {
	Index    int
	Velocity r2.Point
}

// Overrides are the manipulation instructions applied before the resolver runs.
type Overrides struct {
	Hold   *Hold
	Launch *Launch
}

type Controller interface {
	Compute(w *World) Overrides
}

type Metric interface {
	Name() string
	Observe(w *World, stats physics.StepStats)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(w *World, stats physics.StepStats)
}

type Config struct {
	Dt       float64
	Duration float64
	Seed     int64
	// SampleEvery records one Sample every n steps; 0 or 1 samples each step.
	SampleEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            1.0 / 60.0,
		Duration:      10.0,
		SampleEvery:   1,
		ValidateState: true,
	}
}

// Sample is one row of a run's time series.
type Sample struct {
	Time          float64
	KineticEnergy float64
	MomentumX     float64
	MomentumY     float64
	Contacts      int
	Moving        int
}

type Result struct {
	Samples    []Sample
	Metrics    map[string]float64
	StepsTaken int
	Contacts   int
	Degenerate int
	Errors     []error
}

// Energies returns the kinetic energy column of the samples.
func (r *Result) Energies() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.KineticEnergy
	}
	return out
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
