package viz

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/geom"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	balls := []physics.Ball{
		{Position: r2.Point{X: 100, Y: 100}, Velocity: r2.Point{X: 50}, Radius: 30},
		{Position: r2.Point{X: 300, Y: 150}, Radius: 20},
	}
	w := sim.NewWorld(balls, geom.NewBounds(400, 200), physics.FrictionDrag)
	ctrl := control.NewInteraction()
	dir := t.TempDir()
	return NewModel(sim.New(w, ctrl), ctrl, Options{
		Cols: 40, Rows: 10,
		SnapshotPath: filepath.Join(dir, "snap.svg"),
		RecordPath:   filepath.Join(dir, "rec.gif"),
	})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelMapping(t *testing.T) {
	m := newTestModel(t)
	// 40x10 cells is 80x40 sub-pixels; a 400x200 world fits at scale 0.2
	if m.scale != 0.2 {
		t.Fatalf("scale = %v, want 0.2", m.scale)
	}

	x, y := m.toCanvas(r2.Point{X: 100, Y: 100})
	p := m.toWorld(x/2+canvasPadLeft, y/4+canvasPadTop)
	if p.Sub(r2.Point{X: 100, Y: 100}).Norm() > 12 {
		t.Errorf("round trip landed at %v", p)
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(100, 0)
	m = update(m, TickMsg(start))
	if m.sim.World().Time != 0 {
		t.Errorf("first tick has no elapsed time, got t=%v", m.sim.World().Time)
	}

	m = update(m, TickMsg(start.Add(50*time.Millisecond)))
	if got := m.sim.World().Time; got < 0.049 || got > 0.051 {
		t.Errorf("expected t ~0.05, got %v", got)
	}

	m = update(m, TickMsg(start.Add(10*time.Second)))
	if got := m.sim.World().Time; got > 0.05+maxFrameDt+1e-9 {
		t.Errorf("stall should be capped, got t=%v", got)
	}
	if len(m.energyHistory) != 3 {
		t.Errorf("expected 3 energy samples, got %d", len(m.energyHistory))
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key(" "))
	start := time.Unix(100, 0)
	m = update(m, TickMsg(start))
	m = update(m, TickMsg(start.Add(time.Second/30)))
	if m.sim.World().Time != 0 {
		t.Errorf("paused model advanced to %v", m.sim.World().Time)
	}
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t)
	w := m.sim.World()

	m = update(m, key("2"))
	if w.Friction != physics.FrictionCollision {
		t.Errorf("key 2 should select collision, got %v", w.Friction)
	}
	m = update(m, key("3"))
	if w.Friction != physics.FrictionNone {
		t.Errorf("key 3 should select none, got %v", w.Friction)
	}

	m = update(m, key("s"))
	if physics.Moving(w.Balls) != 0 {
		t.Error("s should stop all motion")
	}

	speed := m.ctrl.Speed()
	m = update(m, key("+"))
	if m.ctrl.Speed() != speed+control.DefaultScrollStep {
		t.Errorf("+ should raise the launch speed, got %v", m.ctrl.Speed())
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t)
	w := m.sim.World()
	x, y := m.toCanvas(w.Balls[1].Position)
	col, row := x/2+canvasPadLeft, y/4+canvasPadTop

	m = update(m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.ctrl.Held() != 1 {
		t.Fatalf("left click over ball 1 should pick it up, held=%d", m.ctrl.Held())
	}

	m = update(m, tea.MouseMsg{X: col + 3, Y: row, Action: tea.MouseActionMotion})
	m = update(m, TickMsg(time.Unix(1, 0)))
	if w.Balls[1].Position.X <= 300 {
		t.Errorf("held ball should follow the pointer right, at %v", w.Balls[1].Position)
	}

	m = update(m, key("esc"))
	if m.ctrl.Held() != control.NoBody {
		t.Error("esc should release the ball")
	}

	speed := m.ctrl.Speed()
	m = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.ctrl.Speed() != speed-control.DefaultScrollStep {
		t.Errorf("wheel down should lower the speed, got %v", m.ctrl.Speed())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m = update(m, TickMsg(time.Unix(1, 0)))
	m = update(m, TickMsg(time.Unix(1, int64(20*time.Millisecond))))

	view := m.View()
	for _, want := range []string{"BALLSIM", "RUNNING", "drag", "Balls"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = update(m, key("?"))
	if !strings.Contains(m.View(), "KEYBOARD & MOUSE") {
		t.Error("help overlay missing")
	}
}

func TestModelSnapshot(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("p"))
	if !strings.HasPrefix(m.message, "saved ") {
		t.Errorf("snapshot not saved: %q", m.message)
	}
}

func TestModelRecording(t *testing.T) {
	m := newTestModel(t)
	m = update(m, key("g"))
	m = update(m, TickMsg(time.Unix(1, 0)))
	m = update(m, TickMsg(time.Unix(1, int64(20*time.Millisecond))))
	if len(m.frames) != 2 {
		t.Fatalf("expected 2 captured frames, got %d", len(m.frames))
	}
	m = update(m, key("g"))
	if m.recording || m.frames != nil {
		t.Error("second g should stop and flush the recording")
	}
	if !strings.HasPrefix(m.message, "saved ") {
		t.Errorf("recording not saved: %q", m.message)
	}
}
