package physics

import (
	"image/color"

	"github.com/golang/geo/r2"
)

const (
	// MassFactor converts radius into mass.
	MassFactor = 10.0

	// RestThreshold is the squared speed below which a ball is snapped to rest.
	RestThreshold = 0.05

	// DragDecay is the per-tick velocity multiplier in Drag mode.
	DragDecay = 0.99

	// CollisionDamping is applied to both velocities after each collision in Collision mode.
	CollisionDamping = 0.95
)

type Ball struct {
	Position r2.Point
	Velocity r2.Point
	Radius   float64
	Color    color.RGBA
}

// Mass is always recomputed from Radius.
func (b *Ball) Mass() float64 { return b.Radius * MassFactor }

func (b *Ball) AtRest() bool { return b.Velocity.X == 0 && b.Velocity.Y == 0 }

func (b *Ball) Speed() float64 { return b.Velocity.Norm() }

// KineticEnergy sums 0.5*m*|v|^2 over all balls.
func KineticEnergy(balls []Ball) float64 {
	e := 0.0
	for i := range balls {
		v := balls[i].Velocity
		e += 0.5 * balls[i].Mass() * v.Dot(v)
	}
	return e
}

// Momentum returns the total linear momentum.
func Momentum(balls []Ball) r2.Point {
	var p r2.Point
	for i := range balls {
		p = p.Add(balls[i].Velocity.Mul(balls[i].Mass()))
	}
	return p
}

// Moving counts balls that are not at rest.
func Moving(balls []Ball) int {
	n := 0
	for i := range balls {
		if !balls[i].AtRest() {
			n++
		}
	}
	return n
}
