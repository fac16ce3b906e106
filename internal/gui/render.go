package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/physics"
)

const ringSegments = 48

func vec(p r2.Point) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

func rgba(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func (a *App) drawBalls() {
	w := a.Sim.World()
	for i := range w.Balls {
		b := &w.Balls[i]
		outer := float32(b.Radius)
		inner := outer - a.Thickness
		if inner < 0 {
			inner = 0
		}
		col := rgba(b.Color)
		if i == a.Ctrl.Held() {
			col = ColSelect
		}
		rl.DrawRing(vec(b.Position), inner, outer, 0, 360, ringSegments, col)
	}
}

// drawContacts draws a line between the centers of every pair that collided
// on the last tick.
func (a *App) drawContacts() {
	w := a.Sim.World()
	for _, c := range w.Contacts {
		if !w.Valid(c.I) || !w.Valid(c.J) {
			continue
		}
		rl.DrawLineEx(vec(w.Balls[c.I].Position), vec(w.Balls[c.J].Position), a.Thickness, ColContact)
	}
}

func (a *App) drawAim() {
	tail, tip, ok := a.Ctrl.Aim(a.Sim.World())
	if !ok {
		return
	}
	left, right := control.AimArrow(tail, tip)
	rl.DrawLineEx(vec(tail), vec(tip), a.Thickness, ColArrow)
	rl.DrawLineEx(vec(tip), vec(left), a.Thickness, ColArrow)
	rl.DrawLineEx(vec(tip), vec(right), a.Thickness, ColArrow)
}

func (a *App) DrawHUD() {
	w := a.Sim.World()
	width := int(rl.GetScreenWidth())
	height := int(rl.GetScreenHeight())

	a.drawText("ballsim", 20, 16, 24, ColSelect)
	a.drawText(fmt.Sprintf("friction: %s", w.Friction), 20, 48, 16, ColText)
	a.drawText(fmt.Sprintf("launch speed: %.0f", a.Ctrl.Speed()), 20, 68, 16, ColText)
	a.drawText(fmt.Sprintf("balls: %d  moving: %d", len(w.Balls), physics.Moving(w.Balls)), 20, 88, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, width-110, 16, 16, col)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 20, height-28, 14, ColTextDim)

	if a.ShowHelp {
		lines := []string{
			"[LMB] PICK UP / DROP   [RMB] AIM / LAUNCH   [WHEEL] SPEED",
			"[1-3] FRICTION   [S] STOP ALL   [SPACE] PAUSE   [ESC] CANCEL   [H] HELP",
		}
		for i, l := range lines {
			a.drawText(l, width-620, height-48+i*20, 14, ColTextDim)
		}
	}
}

func (a *App) drawText(text string, x, y int, size int, col rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
}
