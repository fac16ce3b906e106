package metrics

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/geom"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

func world(velocities ...r2.Point) *sim.World {
	balls := make([]physics.Ball, len(velocities))
	for i, v := range velocities {
		balls[i] = physics.Ball{Position: r2.Point{X: float64(50 * (i + 1)), Y: 50}, Velocity: v, Radius: 1}
	}
	return sim.NewWorld(balls, geom.NewBounds(500, 500), physics.FrictionNone)
}

func TestEnergy(t *testing.T) {
	m := NewEnergy()

	// mass 10, |v|² 25
	w := world(r2.Point{X: 3, Y: 4})
	m.Observe(w, physics.StepStats{})
	if got := m.Value(); math.Abs(got-125) > 1e-9 {
		t.Errorf("expected energy 125, got %f", got)
	}

	w.StopAll()
	m.Observe(w, physics.StepStats{})
	if got := m.Value(); math.Abs(got-62.5) > 1e-9 {
		t.Errorf("expected mean energy 62.5, got %f", got)
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy()
	m.Observe(world(r2.Point{X: 1}), physics.StepStats{})
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift()
	w := world(r2.Point{X: 10})
	m.Observe(w, physics.StepStats{})
	if m.Value() != 0 {
		t.Errorf("no drift on first observation, got %f", m.Value())
	}

	w.Balls[0].Velocity = r2.Point{X: 5}
	m.Observe(w, physics.StepStats{})
	if math.Abs(m.Value()-0.75) > 1e-9 {
		t.Errorf("expected drift 0.75, got %f", m.Value())
	}

	w.Balls[0].Velocity = r2.Point{X: 10}
	m.Observe(w, physics.StepStats{})
	if math.Abs(m.Value()-0.75) > 1e-9 {
		t.Errorf("drift should keep its maximum, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestCollisions(t *testing.T) {
	m := NewCollisions()
	m.Observe(nil, physics.StepStats{Resolved: 2, Candidates: 3})
	m.Observe(nil, physics.StepStats{Resolved: 1})
	if m.Value() != 3 {
		t.Errorf("expected 3 collisions, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestRest(t *testing.T) {
	tests := []struct {
		name string
		w    *sim.World
		want float64
	}{
		{"empty", world(), 1},
		{"all moving", world(r2.Point{X: 1}, r2.Point{Y: 1}), 0},
		{"half", world(r2.Point{X: 1}, r2.Point{}), 0.5},
		{"slow but not snapped", world(r2.Point{X: 0.1}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRest()
			m.Observe(tt.w, physics.StepStats{})
			if got := m.Value(); got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStandard(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Standard() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %q", m.Name())
		}
		seen[m.Name()] = true
	}
	for _, name := range []string{"energy", "energy_drift", "collisions", "rest"} {
		if !seen[name] {
			t.Errorf("missing metric %q", name)
		}
	}
}
