package viz

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/export"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	panelWidth      = 46
	historyCapacity = 600
	// maxFrameDt caps the elapsed time fed to one tick after a stall.
	maxFrameDt = 0.1

	canvasPadTop  = 1
	canvasPadLeft = 2
)

type TickMsg time.Time

type Options struct {
	Cols, Rows    int
	LineThickness float64
	Logger        *slog.Logger
	// SnapshotPath and RecordPath are where p and g write their files.
	SnapshotPath string
	RecordPath   string
}

// Model is the Bubble Tea live view: the world drawn on a Braille canvas,
// mouse input routed to the interaction controller, stats on the side.
type Model struct {
	sim    *sim.Simulator
	ctrl   *control.Interaction
	opts   Options
	logger *slog.Logger

	canvas            *Canvas
	scale, offX, offY float64

	running  bool
	last     time.Time
	fps      float64
	showHelp bool
	message  string

	energyHistory  []float64
	contactHistory []float64

	recording bool
	frames    []*image.Paletted
}

func NewModel(s *sim.Simulator, ctrl *control.Interaction, opts Options) Model {
	if opts.Cols <= 0 {
		opts.Cols = defaultCols
	}
	if opts.Rows <= 0 {
		opts.Rows = defaultRows
	}
	if opts.SnapshotPath == "" {
		opts.SnapshotPath = "ballsim.svg"
	}
	if opts.RecordPath == "" {
		opts.RecordPath = "ballsim.gif"
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		sim:            s,
		ctrl:           ctrl,
		opts:           opts,
		logger:         logger,
		running:        true,
		energyHistory:  make([]float64, 0, historyCapacity),
		contactHistory: make([]float64, 0, historyCapacity),
	}
	m.resize(opts.Cols, opts.Rows)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := m.sim.World()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width-panelWidth-2*canvasPadLeft, msg.Height-2*canvasPadTop)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.ctrl.Escape()
		case " ":
			m.running = !m.running
		case "1", "2", "3":
			modes := physics.FrictionModes()
			w.Friction = modes[int(msg.String()[0]-'1')]
			m.logger.Info("friction changed", "mode", w.Friction)
		case "s":
			w.StopAll()
		case "+", "=":
			m.ctrl.Scroll(1)
		case "-", "_":
			m.ctrl.Scroll(-1)
		case "t":
			t := NextTheme()
			m.logger.Debug("theme changed", "theme", t.Name)
		case "p":
			m.snapshot()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.ctrl.PointerMoved(m.toWorld(msg.X, msg.Y))
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.ctrl.LeftClick(w)
		case tea.MouseButtonRight:
			m.ctrl.RightClick(w)
		case tea.MouseButtonWheelUp:
			m.ctrl.Scroll(1)
		case tea.MouseButtonWheelDown:
			m.ctrl.Scroll(-1)
		}
	case TickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = math.Min(now.Sub(m.last).Seconds(), maxFrameDt)
			if dt > 0 {
				m.fps = 0.9*m.fps + 0.1/dt
			}
		}
		m.last = now
		if m.running {
			stats := m.sim.Step(dt)
			m.record(stats)
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) record(stats physics.StepStats) {
	w := m.sim.World()
	m.energyHistory = appendCapped(m.energyHistory, physics.KineticEnergy(w.Balls))
	m.contactHistory = appendCapped(m.contactHistory, float64(stats.Resolved))
}

func appendCapped(s []float64, v float64) []float64 {
	if len(s) >= historyCapacity {
		s = s[1:]
	}
	return append(s, v)
}

// resize fits the world into a canvas of cols x rows cells, keeping circles
// round. Braille sub-pixels are close to square on common terminal fonts.
func (m *Model) resize(cols, rows int) {
	if cols < 10 {
		cols = 10
	}
	if rows < 5 {
		rows = 5
	}
	m.canvas = NewCanvas(cols, rows)
	b := m.sim.World().Bounds
	sw, sh := float64(m.canvas.SubWidth()), float64(m.canvas.SubHeight())
	m.scale = math.Min(sw/b.Width, sh/b.Height)
	m.offX = (sw - b.Width*m.scale) / 2
	m.offY = (sh - b.Height*m.scale) / 2
}

// toWorld maps a terminal cell to the world point under its center.
func (m *Model) toWorld(col, row int) r2.Point {
	sx := float64((col-canvasPadLeft)*2) + 1
	sy := float64((row-canvasPadTop)*4) + 2
	return r2.Point{X: (sx - m.offX) / m.scale, Y: (sy - m.offY) / m.scale}
}

func (m *Model) toCanvas(p r2.Point) (int, int) {
	return int(math.Round(p.X*m.scale + m.offX)), int(math.Round(p.Y*m.scale + m.offY))
}

func (m *Model) draw() {
	m.canvas.Clear()
	w := m.sim.World()

	theme := CurrentTheme
	for i, b := range w.Balls {
		x, y := m.toCanvas(b.Position)
		if i == m.ctrl.Held() {
			m.canvas.SetColor(theme.Held)
		} else {
			m.canvas.SetColor(b.Color)
		}
		m.canvas.DrawCircle(x, y, int(math.Round(b.Radius*m.scale)))
	}

	m.canvas.SetColor(theme.Contact)
	for _, c := range w.Contacts {
		x0, y0 := m.toCanvas(c.A)
		x1, y1 := m.toCanvas(c.B)
		m.canvas.DrawLine(x0, y0, x1, y1)
	}

	if tail, tip, ok := m.ctrl.Aim(w); ok {
		left, right := control.AimArrow(tail, tip)
		m.canvas.SetColor(theme.Arrow)
		m.line(tail, tip)
		m.line(tip, left)
		m.line(tip, right)
	}
}

func (m *Model) line(a, b r2.Point) {
	x0, y0 := m.toCanvas(a)
	x1, y1 := m.toCanvas(b)
	m.canvas.DrawLine(x0, y0, x1, y1)
}

func (m *Model) snapshot() {
	w := m.sim.World()
	var arrow *export.Arrow
	if tail, tip, ok := m.ctrl.Aim(w); ok {
		arrow = &export.Arrow{Tail: tail, Tip: tip}
	}
	svg := export.WorldToSVG(w, m.opts.LineThickness, arrow)
	if err := os.WriteFile(m.opts.SnapshotPath, []byte(svg), 0644); err != nil {
		m.logger.Error("snapshot failed", "path", m.opts.SnapshotPath, "error", err)
		m.message = "snapshot failed"
		return
	}
	m.logger.Info("snapshot saved", "path", m.opts.SnapshotPath)
	m.message = "saved " + m.opts.SnapshotPath
}

// View renders the TUI interface.
func (m Model) View() string {
	st := stylesFor(CurrentTheme)
	w := m.sim.World()

	canvasView := st.canvas.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(st.header.Render("BALLSIM") + "\n")
	switch {
	case m.recording:
		s.WriteString(StatusRecording.Render("● REC"))
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING"))
	default:
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Kinetic energy"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", w.Time))
	row("Balls", fmt.Sprintf("%d (%d moving)", len(w.Balls), physics.Moving(w.Balls)))
	row("Contacts", fmt.Sprintf("%d", len(w.Contacts)))
	row("FPS", fmt.Sprintf("%.0f", m.fps))

	params := m.ctrl.GetParams()
	s.WriteString(st.label.Render("Speed") + ProgressBar(params["speed"]/math.Max(params["max_speed"], 1), 14) +
		st.value.Render(fmt.Sprintf(" %.0f", params["speed"])) + "\n")
	s.WriteString(st.label.Render("Hits") + SparklineChart(m.contactHistory, 24) + "\n")

	s.WriteString("\nFRICTION\n")
	for i, mode := range physics.FrictionModes() {
		line := fmt.Sprintf("%d %s", i+1, mode)
		if mode == w.Friction {
			s.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.label.Render(line) + "\n")
		}
	}

	switch {
	case m.ctrl.Held() != control.NoBody:
		s.WriteString("\n" + st.active.Render(fmt.Sprintf("holding ball %d", m.ctrl.Held())) + "\n")
	case m.ctrl.Aimed() != control.NoBody:
		s.WriteString("\n" + st.active.Render(fmt.Sprintf("aiming ball %d", m.ctrl.Aimed())) + "\n")
	}
	if m.message != "" {
		s.WriteString("\n" + st.value.Render(m.message) + "\n")
	}

	s.WriteString(st.help.Render("─────────────────────\nL:Pick  R:Aim/Launch  Wheel:Speed\nSP:Pause S:Stop 1-3:Friction Q:Quit\nT:Theme  G:Record  P:Snapshot ?:Help"))
	statsView := st.panel.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD & MOUSE           ║
╠══════════════════════════════════════╣
║  Left click  - Pick up / release     ║
║  Right click - Aim / launch          ║
║  Wheel, +/-  - Launch speed          ║
║  Esc         - Cancel pick up / aim  ║
║  Space       - Pause/Resume          ║
║  S           - Stop all motion       ║
║  1 2 3       - Drag/Collision/None   ║
║  P           - Save SVG snapshot     ║
║  G           - Toggle GIF recording  ║
║  T           - Cycle themes          ║
║  Q           - Quit                  ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the live view in the alternate screen with mouse tracking.
func Run(s *sim.Simulator, ctrl *control.Interaction, opts Options) error {
	p := tea.NewProgram(NewModel(s, ctrl, opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
