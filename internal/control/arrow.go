package control

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/sim"
)

const (
	ArrowHeadLength = 20.0
	ArrowHeadAngle  = 0.436332 // ~25 degrees
)

// AimArrow returns the two barb end points of an arrow drawn from tail to tip.
// Both barbs start at tip. A zero-length arrow yields tip twice.
func AimArrow(tail, tip r2.Point) (left, right r2.Point) {
	d := tip.Sub(tail)
	if d.Norm() == 0 {
		return tip, tip
	}
	back := math.Atan2(-d.Y, -d.X)
	left = tip.Add(r2.Point{X: math.Cos(back + ArrowHeadAngle), Y: math.Sin(back + ArrowHeadAngle)}.Mul(ArrowHeadLength))
	right = tip.Add(r2.Point{X: math.Cos(back - ArrowHeadAngle), Y: math.Sin(back - ArrowHeadAngle)}.Mul(ArrowHeadLength))
	return left, right
}

// Aim returns the arrow the frontends draw while a ball is aimed: from the
// pointer to the ball center, so it points along the launch direction.
func (c *Interaction) Aim(w *sim.World) (tail, tip r2.Point, ok bool) {
	if c.aimed == NoBody || !w.Valid(c.aimed) {
		return r2.Point{}, r2.Point{}, false
	}
	return c.pointer, w.Balls[c.aimed].Position, true
}
