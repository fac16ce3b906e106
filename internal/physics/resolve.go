package physics

import (
	"errors"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/geom"
)

// Contact is a resolved collision between balls I and J, with the corrected
// centers at the time of the velocity exchange. Renderers draw it as a line.
type Contact struct {
	I, J int
	A, B r2.Point
}

// StepStats summarizes one resolver pass.
type StepStats struct {
	Candidates int
	Resolved   int
	Degenerate int
}

// Resolve runs one collision pass over balls and appends a Contact for every
// resolved pair to contacts. The returned slice reuses contacts' storage.
func Resolve(balls []Ball, mode FrictionMode, contacts []Contact) ([]Contact, StepStats) {
	pairs := BroadPhase(balls)
	stats := StepStats{Candidates: len(pairs)}

	resolved := pairs[:0]
	for _, p := range pairs {
		err := separate(&balls[p.I], &balls[p.J])
		switch {
		case err == nil:
			resolved = append(resolved, p)
		case errors.Is(err, ErrDegenerateDistance):
			stats.Degenerate++
		}
	}

	for _, p := range resolved {
		a, b := &balls[p.I], &balls[p.J]
		if !exchange(a, b) {
			stats.Degenerate++
			continue
		}
		if mode == FrictionCollision {
			a.Velocity = a.Velocity.Mul(CollisionDamping)
			b.Velocity = b.Velocity.Mul(CollisionDamping)
		}
		contacts = append(contacts, Contact{I: p.I, J: p.J, A: a.Position, B: b.Position})
		stats.Resolved++
	}

	return contacts, stats
}

// errSeparated marks a candidate that an earlier correction already pushed clear.
var errSeparated = errors.New("physics: pair no longer overlapping")

// separate pushes a and b apart symmetrically along their center line until
// they just touch.
func separate(a, b *Ball) error {
	if !geom.CirclesOverlap(a.Position, a.Radius, b.Position, b.Radius) {
		return errSeparated
	}
	delta := a.Position.Sub(b.Position)
	d := delta.Norm()
	if d == 0 {
		return ErrDegenerateDistance
	}
	overlap := 0.5 * (d - a.Radius - b.Radius)
	shift := delta.Mul(overlap / d)
	a.Position = a.Position.Sub(shift)
	b.Position = b.Position.Add(shift)
	return nil
}

// exchange applies the two-dimensional elastic collision response.
// It returns false if the centers coincide.
func exchange(a, b *Ball) bool {
	dx := a.Position.Sub(b.Position)
	d2 := dx.Dot(dx)
	if d2 == 0 {
		return false
	}
	ma, mb := a.Mass(), b.Mass()
	k := a.Velocity.Sub(b.Velocity).Dot(dx) / d2

	a.Velocity = a.Velocity.Sub(dx.Mul(2 * mb / (ma + mb) * k))
	b.Velocity = b.Velocity.Add(dx.Mul(2 * ma / (ma + mb) * k))
	return true
}
