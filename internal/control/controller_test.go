package control

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/geom"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

func testWorld() *sim.World {
	balls := []physics.Ball{
		{Position: r2.Point{X: 100, Y: 100}, Velocity: r2.Point{X: 5, Y: 5}, Radius: 20},
		{Position: r2.Point{X: 300, Y: 100}, Velocity: r2.Point{X: -5}, Radius: 20},
	}
	return sim.NewWorld(balls, geom.NewBounds(640, 480), physics.FrictionDrag)
}

func TestNone(t *testing.T) {
	o := NewNone().Compute(testWorld())
	if o.Hold != nil || o.Launch != nil {
		t.Errorf("None should not override anything, got %+v", o)
	}
}

func TestLeftClickPicksUpAndReleases(t *testing.T) {
	w := testWorld()
	c := NewInteraction()

	c.PointerMoved(r2.Point{X: 105, Y: 95})
	c.LeftClick(w)
	if c.Held() != 0 {
		t.Fatalf("expected ball 0 held, got %d", c.Held())
	}
	if !w.Balls[0].AtRest() {
		t.Errorf("pickup should zero the velocity, got %v", w.Balls[0].Velocity)
	}

	c.PointerMoved(r2.Point{X: 400, Y: 400})
	o := c.Compute(w)
	if o.Hold == nil || o.Hold.Index != 0 || o.Hold.Position != (r2.Point{X: 400, Y: 400}) {
		t.Errorf("held ball should follow the pointer, got %+v", o.Hold)
	}

	c.LeftClick(w)
	if c.Held() != NoBody {
		t.Errorf("second left click should release, held=%d", c.Held())
	}
	if o := c.Compute(w); o.Hold != nil {
		t.Error("released ball is still held")
	}
}

func TestLeftClickOnEmptySpace(t *testing.T) {
	w := testWorld()
	c := NewInteraction()
	c.PointerMoved(r2.Point{X: 600, Y: 400})
	c.LeftClick(w)
	if c.Held() != NoBody {
		t.Errorf("nothing under the pointer, held=%d", c.Held())
	}
}

func TestRightClickAimAndLaunch(t *testing.T) {
	w := testWorld()
	c := NewInteraction()
	c.SetSpeed(500)

	c.PointerMoved(r2.Point{X: 300, Y: 110})
	c.RightClick(w)
	if c.Aimed() != 1 {
		t.Fatalf("expected ball 1 aimed, got %d", c.Aimed())
	}

	// pull back to the left of the ball, launch goes right
	c.PointerMoved(r2.Point{X: 250, Y: 100})
	c.RightClick(w)
	if c.Aimed() != NoBody {
		t.Errorf("launch should clear the aim, got %d", c.Aimed())
	}

	o := c.Compute(w)
	if o.Launch == nil {
		t.Fatal("expected a pending launch")
	}
	if o.Launch.Index != 1 {
		t.Errorf("launched wrong ball %d", o.Launch.Index)
	}
	if math.Abs(o.Launch.Velocity.X-500) > 1e-9 || math.Abs(o.Launch.Velocity.Y) > 1e-9 {
		t.Errorf("expected velocity (500, 0), got %v", o.Launch.Velocity)
	}

	if o := c.Compute(w); o.Launch != nil {
		t.Error("launch must be applied only once")
	}
}

func TestLaunchFromCenterIsZero(t *testing.T) {
	w := testWorld()
	c := NewInteraction()
	c.PointerMoved(w.Balls[0].Position)
	c.RightClick(w)
	c.RightClick(w)

	o := c.Compute(w)
	if o.Launch == nil || o.Launch.Velocity != (r2.Point{}) {
		t.Errorf("launch with pointer on the center should be zero, got %+v", o.Launch)
	}
}

func TestHoldAndAimAreExclusive(t *testing.T) {
	w := testWorld()
	c := NewInteraction()

	c.PointerMoved(r2.Point{X: 100, Y: 100})
	c.LeftClick(w)
	c.PointerMoved(r2.Point{X: 300, Y: 100})
	c.RightClick(w)
	if c.Held() != NoBody || c.Aimed() != 1 {
		t.Errorf("aiming should cancel the hold: held=%d aimed=%d", c.Held(), c.Aimed())
	}

	c.PointerMoved(r2.Point{X: 100, Y: 100})
	c.LeftClick(w)
	if c.Held() != 0 || c.Aimed() != NoBody {
		t.Errorf("pickup should cancel the aim: held=%d aimed=%d", c.Held(), c.Aimed())
	}
}

func TestEscape(t *testing.T) {
	w := testWorld()
	c := NewInteraction()
	c.PointerMoved(r2.Point{X: 100, Y: 100})
	c.LeftClick(w)
	c.Escape()
	if c.Held() != NoBody || c.Aimed() != NoBody {
		t.Errorf("escape should clear selection: held=%d aimed=%d", c.Held(), c.Aimed())
	}

	c.PointerMoved(r2.Point{X: 300, Y: 100})
	c.RightClick(w)
	c.Escape()
	if c.Aimed() != NoBody {
		t.Errorf("escape should clear the aim, got %d", c.Aimed())
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		dy    float64
		want  float64
	}{
		{"up", 300, 1, 400},
		{"down", 300, -2, 100},
		{"clamp low", 50, -1, 0},
		{"clamp high", 4950, 3, 5000},
		{"fractional", 0, 0.5, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewInteraction()
			c.SetSpeed(tt.start)
			c.Scroll(tt.dy)
			if c.Speed() != tt.want {
				t.Errorf("Speed() = %v, want %v", c.Speed(), tt.want)
			}
		})
	}
}

func TestComputeDropsStaleSelection(t *testing.T) {
	w := testWorld()
	c := NewInteraction()
	c.PointerMoved(r2.Point{X: 300, Y: 100})
	c.LeftClick(w)

	w.Balls = w.Balls[:1]
	if o := c.Compute(w); o.Hold != nil {
		t.Errorf("hold on a removed ball should be dropped, got %+v", o.Hold)
	}
	if c.Held() != NoBody {
		t.Errorf("stale selection kept: %d", c.Held())
	}
}

func TestParams(t *testing.T) {
	c := NewInteraction()
	c.SetParam("max_speed", 1000)
	c.SetParam("speed", 2000)
	if c.Speed() != 1000 {
		t.Errorf("speed should clamp to max_speed, got %v", c.Speed())
	}
	c.SetParam("scroll_step", 10)
	c.Scroll(1)
	if c.Speed() != 1000 {
		t.Errorf("speed above max after scroll: %v", c.Speed())
	}
	c.Scroll(-1)
	if got := c.GetParams()["speed"]; got != 990 {
		t.Errorf("GetParams speed = %v, want 990", got)
	}
}

func TestAimArrow(t *testing.T) {
	tail := r2.Point{X: 0, Y: 0}
	tip := r2.Point{X: 100, Y: 0}
	left, right := AimArrow(tail, tip)

	for _, p := range []r2.Point{left, right} {
		if d := p.Sub(tip).Norm(); math.Abs(d-ArrowHeadLength) > 1e-9 {
			t.Errorf("barb length = %v, want %v", d, ArrowHeadLength)
		}
		if p.X >= tip.X {
			t.Errorf("barb %v should point back toward the tail", p)
		}
	}
	if math.Abs(left.Y+right.Y) > 1e-9 {
		t.Errorf("barbs should be symmetric: %v %v", left, right)
	}
	wantY := ArrowHeadLength * math.Sin(ArrowHeadAngle)
	if math.Abs(math.Abs(left.Y)-wantY) > 1e-9 {
		t.Errorf("barb spread = %v, want %v", math.Abs(left.Y), wantY)
	}

	l, r := AimArrow(tip, tip)
	if l != tip || r != tip {
		t.Error("zero-length arrow should collapse to the tip")
	}
}

func TestAim(t *testing.T) {
	w := testWorld()
	c := NewInteraction()
	if _, _, ok := c.Aim(w); ok {
		t.Error("no arrow without an aimed ball")
	}
	c.PointerMoved(r2.Point{X: 95, Y: 100})
	c.RightClick(w)
	tail, tip, ok := c.Aim(w)
	if !ok || tail != (r2.Point{X: 95, Y: 100}) || tip != w.Balls[0].Position {
		t.Errorf("Aim() = %v %v %v", tail, tip, ok)
	}
}
