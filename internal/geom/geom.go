// Package geom holds the pure geometric predicates and the screen bounds
// used by the ball simulation.
package geom

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// PointInCircle reports whether p lies inside or on the circle at c.
func PointInCircle(p, c r2.Point, radius float64) bool {
	d := p.Sub(c)
	return d.Dot(d) <= radius*radius
}

// CirclesOverlap reports whether two circles overlap. Touching counts.
func CirclesOverlap(a r2.Point, ra float64, b r2.Point, rb float64) bool {
	d := a.Sub(b)
	sum := ra + rb
	return d.Dot(d) <= sum*sum
}

// Bounds is the wrap-around screen rectangle anchored at the origin.
type Bounds struct {
	Width  float64
	Height float64
}

func NewBounds(w, h float64) Bounds {
	return Bounds{Width: w, Height: h}
}

// Wrap relocates p across the screen edges, each axis independently:
// coord <= 0 moves to the far edge, coord > max moves to 0.
func (b Bounds) Wrap(p r2.Point) r2.Point {
	return r2.Point{X: wrapAxis(p.X, b.Width), Y: wrapAxis(p.Y, b.Height)}
}

func wrapAxis(v, max float64) float64 {
	if v <= 0 {
		return max
	}
	if v > max {
		return 0
	}
	return v
}

// Random returns a point drawn uniformly from [0,W) x [0,H).
func (b Bounds) Random(rng *rand.Rand) r2.Point {
	return r2.Point{X: rng.Float64() * b.Width, Y: rng.Float64() * b.Height}
}

func (b Bounds) Area() float64 { return b.Width * b.Height }

func (b Bounds) Valid() bool { return b.Width > 0 && b.Height > 0 }
