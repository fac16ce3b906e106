package physics

import (
	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/geom"
)

// Integrate advances every ball by dt seconds, applies Drag decay, snaps
// slow balls to rest and wraps positions across the screen edges.
func Integrate(balls []Ball, mode FrictionMode, dt float64, bounds geom.Bounds) {
	for i := range balls {
		b := &balls[i]
		b.Position = b.Position.Add(b.Velocity.Mul(dt))

		if mode == FrictionDrag {
			b.Velocity = b.Velocity.Mul(DragDecay)
		}

		if b.Velocity.Dot(b.Velocity) < RestThreshold {
			b.Velocity = r2.Point{}
		}

		b.Position = bounds.Wrap(b.Position)
	}
}
