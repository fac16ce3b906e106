package control

import (
	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/sim"
)

// NoBody marks an empty selection.
const NoBody = -1

const (
	DefaultSpeed      = 300.0
	DefaultMaxSpeed   = 5000.0
	DefaultScrollStep = 100.0
)

// Interaction turns pointer and keyboard events into per-tick overrides.
// At most one ball is held and at most one is aimed, never both at once.
// Events arrive between ticks; Compute is called by the simulator at the
// start of each tick.
type Interaction struct {
	held    int
	aimed   int
	pointer r2.Point

	speed      float64
	maxSpeed   float64
	scrollStep float64

	pending *sim.Launch
}

func NewInteraction() *Interaction {
	return &Interaction{
		held:       NoBody,
		aimed:      NoBody,
		speed:      DefaultSpeed,
		maxSpeed:   DefaultMaxSpeed,
		scrollStep: DefaultScrollStep,
	}
}

func (c *Interaction) PointerMoved(p r2.Point) { c.pointer = p }

func (c *Interaction) Pointer() r2.Point { return c.pointer }

// LeftClick releases the held ball, or picks up the ball under the pointer.
// Picking up cancels any aim and zeroes the ball's velocity.
func (c *Interaction) LeftClick(w *sim.World) {
	if c.held != NoBody {
		c.held = NoBody
		return
	}
	c.aimed = NoBody
	if i, ok := w.HitTest(c.pointer); ok {
		c.held = i
		w.SetVelocity(i, r2.Point{})
	}
}

// RightClick launches the aimed ball away from the pointer, or starts aiming
// at the ball under the pointer. Aiming cancels any hold.
func (c *Interaction) RightClick(w *sim.World) {
	if c.aimed != NoBody {
		if w.Valid(c.aimed) {
			dir := w.Balls[c.aimed].Position.Sub(c.pointer)
			if dir.Norm() > 0 {
				dir = dir.Normalize()
			}
			c.pending = &sim.Launch{Index: c.aimed, Velocity: dir.Mul(c.speed)}
		}
		c.aimed = NoBody
		return
	}
	c.held = NoBody
	if i, ok := w.HitTest(c.pointer); ok {
		c.aimed = i
	}
}

// Scroll adjusts the launch speed by dy notches.
func (c *Interaction) Scroll(dy float64) {
	c.SetSpeed(c.speed + dy*c.scrollStep)
}

// SetSpeed sets the launch speed, clamped to [0, max speed].
func (c *Interaction) SetSpeed(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > c.maxSpeed:
		v = c.maxSpeed
	}
	c.speed = v
}

// Escape cancels both the hold and the aim.
func (c *Interaction) Escape() {
	c.held = NoBody
	c.aimed = NoBody
}

func (c *Interaction) Held() int      { return c.held }
func (c *Interaction) Aimed() int     { return c.aimed }
func (c *Interaction) Speed() float64 { return c.speed }

// Compute implements sim.Controller. A pending launch is handed out once.
// Selections pointing past the end of the world are dropped.
func (c *Interaction) Compute(w *sim.World) sim.Overrides {
	var o sim.Overrides
	if c.pending != nil {
		o.Launch = c.pending
		c.pending = nil
	}
	if c.held != NoBody {
		if !w.Valid(c.held) {
			c.held = NoBody
		} else {
			o.Hold = &sim.Hold{Index: c.held, Position: c.pointer}
		}
	}
	if c.aimed != NoBody && !w.Valid(c.aimed) {
		c.aimed = NoBody
	}
	return o
}

// GetParams returns tunable parameters for live adjustment
func (c *Interaction) GetParams() map[string]float64 {
	return map[string]float64{
		"speed":       c.speed,
		"max_speed":   c.maxSpeed,
		"scroll_step": c.scrollStep,
	}
}

// SetParam adjusts a launch parameter
func (c *Interaction) SetParam(name string, value float64) {
	switch name {
	case "speed":
		c.SetSpeed(value)
	case "max_speed":
		if value >= 0 {
			c.maxSpeed = value
			c.SetSpeed(c.speed)
		}
	case "scroll_step":
		c.scrollStep = value
	}
}
