package gui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

// maxFrameDt caps the elapsed time fed to one tick after a stall.
const maxFrameDt = 0.1

var (
	ColBg      = rl.Black
	ColContact = rl.NewColor(230, 41, 55, 255)
	ColArrow   = rl.NewColor(0, 228, 48, 255)
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
	ColSelect  = rl.White
)

type App struct {
	Sim       *sim.Simulator
	Ctrl      *control.Interaction
	Cfg       *config.Config
	Running   bool
	ShowHelp  bool
	Thickness float32
	Font      rl.Font

	logger *slog.Logger
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "ballsim")
	rl.SetTargetFPS(int32(cfg.Render.FPS))
	// Escape cancels a hold or aim instead of closing the window.
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, s *sim.Simulator, ctrl *control.Interaction, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		Sim:       s,
		Ctrl:      ctrl,
		Cfg:       cfg,
		Running:   true,
		ShowHelp:  true,
		Thickness: float32(cfg.Render.LineThickness),
		Font:      rl.GetFontDefault(),
		logger:    logger,
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, s *sim.Simulator, ctrl *control.Interaction, logger *slog.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg, s, ctrl, logger)
	app.logger.Info("window opened",
		"width", cfg.Screen.Width, "height", cfg.Screen.Height, "balls", len(s.World().Balls))
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update routes input to the interaction controller and advances the
// simulation by the real frame time.
func (a *App) Update() {
	w := a.Sim.World()

	mouse := rl.GetMousePosition()
	a.Ctrl.PointerMoved(r2.Point{X: float64(mouse.X), Y: float64(mouse.Y)})

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.Ctrl.LeftClick(w)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		a.Ctrl.RightClick(w)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Ctrl.Scroll(float64(wheel))
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.Ctrl.Escape()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyS) {
		w.StopAll()
		a.logger.Info("stopped all balls")
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHelp = !a.ShowHelp
	}
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if rl.IsKeyPressed(key) {
			a.setFriction(physics.FrictionModes()[i])
		}
	}

	if !a.Running {
		return
	}
	dt := float64(rl.GetFrameTime())
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	a.Sim.Step(dt)
}

func (a *App) setFriction(m physics.FrictionMode) {
	w := a.Sim.World()
	if w.Friction == m {
		return
	}
	w.Friction = m
	a.logger.Info("friction mode changed", "mode", m.String())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawBalls()
	a.drawContacts()
	a.drawAim()
	a.DrawHUD()

	rl.EndDrawing()
}
