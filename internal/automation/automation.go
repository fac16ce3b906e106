package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/experiment"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"gopkg.in/yaml.v3"
)

// Event actions understood by a scenario.
const (
	ActionMove       = "move"
	ActionLeftClick  = "left_click"
	ActionRightClick = "right_click"
	ActionScroll     = "scroll"
	ActionEscape     = "escape"
	ActionStop       = "stop"
	ActionFriction   = "friction"
)

var actions = map[string]bool{
	ActionMove: true, ActionLeftClick: true, ActionRightClick: true,
	ActionScroll: true, ActionEscape: true, ActionStop: true, ActionFriction: true,
}

// Scenario defines a scripted interaction sequence
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Preset      string  `yaml:"preset"`
	Seed        int64   `yaml:"seed"`
	Balls       int     `yaml:"balls"`
	Friction    string  `yaml:"friction"`
	Duration    float64 `yaml:"duration"`
	Dt          float64 `yaml:"dt"`
	Events      []Event `yaml:"events"`
}

// Event is one input fired once simulation time reaches At. A move targets
// the point (X, Y), or when Ball is set, that ball's center offset by (X, Y).
type Event struct {
	At     float64 `yaml:"at"`
	Action string  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Ball   *int    `yaml:"ball"`
	Delta  float64 `yaml:"delta"`
	Mode   string  `yaml:"mode"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(scenario.Events, func(i, j int) bool {
		return scenario.Events[i].At < scenario.Events[j].At
	})
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	for i, ev := range s.Events {
		action := strings.ToLower(ev.Action)
		if !actions[action] {
			return fmt.Errorf("event %d: unknown action %q", i+1, ev.Action)
		}
		if ev.At < 0 {
			return fmt.Errorf("event %d: negative time %g", i+1, ev.At)
		}
		if action == ActionFriction {
			if _, err := physics.ParseFrictionMode(ev.Mode); err != nil {
				return fmt.Errorf("event %d: %w", i+1, err)
			}
		}
		s.Events[i].Action = action
	}
	return nil
}

// Config resolves the scenario's preset and applies its overrides.
func (s *Scenario) Config() (*config.Config, error) {
	name := s.Preset
	if name == "" {
		name = "default"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Balls > 0 {
		cfg.Balls.Count = s.Balls
	}
	if s.Friction != "" {
		cfg.Friction = s.Friction
	}
	if s.Duration > 0 {
		cfg.Duration = s.Duration
	}
	if s.Dt > 0 {
		cfg.Dt = s.Dt
	}
	return cfg, cfg.Validate()
}

// Report is the outcome of one scenario run.
type Report struct {
	Scenario string
	Config   *config.Config
	Result   *sim.Result
	Fired    int
	World    *sim.World
}

// dispatcher fires scenario events between ticks. It is registered as an
// observer, so events due at time t are applied before the tick after t.
type dispatcher struct {
	events []Event
	next   int
	ctrl   *control.Interaction
	half   float64
	logger *slog.Logger
}

func (d *dispatcher) OnStep(w *sim.World, _ physics.StepStats) { d.fire(w) }

func (d *dispatcher) fire(w *sim.World) {
	for d.next < len(d.events) && d.events[d.next].At <= w.Time+d.half {
		ev := d.events[d.next]
		d.next++
		apply(d.ctrl, w, ev)
		d.logger.Debug("scenario event", "t", w.Time, "action", ev.Action)
	}
}

func apply(ctrl *control.Interaction, w *sim.World, ev Event) {
	switch ev.Action {
	case ActionMove:
		p := r2.Point{X: ev.X, Y: ev.Y}
		if ev.Ball != nil && w.Valid(*ev.Ball) {
			p = w.Balls[*ev.Ball].Position.Add(p)
		}
		ctrl.PointerMoved(p)
	case ActionLeftClick:
		ctrl.LeftClick(w)
	case ActionRightClick:
		ctrl.RightClick(w)
	case ActionScroll:
		ctrl.Scroll(ev.Delta)
	case ActionEscape:
		ctrl.Escape()
	case ActionStop:
		w.StopAll()
	case ActionFriction:
		if mode, err := physics.ParseFrictionMode(ev.Mode); err == nil {
			w.Friction = mode
		}
	}
}

// RunScenario executes a scenario with the interaction controller driven by
// its events.
func RunScenario(ctx context.Context, scenario *Scenario, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	cfg, err := scenario.Config()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	ctrl := control.NewInteraction()
	ctrl.SetParam("max_speed", cfg.Launch.MaxSpeed)
	ctrl.SetParam("scroll_step", cfg.Launch.ScrollStep)
	ctrl.SetSpeed(cfg.Launch.Speed)

	exp := experiment.New(cfg)
	exp.SetLogger(logger)
	if err := exp.Setup(ctrl); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	s := exp.Simulator()

	d := &dispatcher{events: scenario.Events, ctrl: ctrl, half: cfg.Dt / 2, logger: logger}
	d.fire(s.World())
	s.AddObserver(d)

	result, err := exp.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("scenario %s run: %w", scenario.Name, err)
	}

	logger.Info("scenario finished", "name", scenario.Name, "events", d.next, "steps", result.StepsTaken)
	return &Report{
		Scenario: scenario.Name,
		Config:   cfg,
		Result:   result,
		Fired:    d.next,
		World:    s.World(),
	}, nil
}

// ParameterSweep runs the same preset across a range of ball counts
type ParameterSweep struct {
	Base     *config.Config
	MinBalls int
	MaxBalls int
	NumSteps int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	Balls       int
	Contacts    int
	FinalEnergy float64
	StepTime    time.Duration
}

// RunSweep executes a parameter sweep. StepTime is the mean wall time of one
// tick, which is what the bench command reports.
func RunSweep(ctx context.Context, sweep *ParameterSweep, logger *slog.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step")
	}
	results := make([]SweepResult, 0, sweep.NumSteps)

	stride := 0.0
	if sweep.NumSteps > 1 {
		stride = float64(sweep.MaxBalls-sweep.MinBalls) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		cfg := *sweep.Base
		cfg.Balls.Count = sweep.MinBalls + int(math.Round(float64(i)*stride))

		exp := experiment.New(&cfg)
		if err := exp.Setup(nil); err != nil {
			return results, fmt.Errorf("sweep %d balls: %w", cfg.Balls.Count, err)
		}

		start := time.Now()
		result, err := exp.Run(ctx)
		if err != nil {
			return results, err
		}
		elapsed := time.Since(start)

		r := SweepResult{Balls: cfg.Balls.Count, Contacts: result.Contacts}
		if n := len(result.Samples); n > 0 {
			r.FinalEnergy = result.Samples[n-1].KineticEnergy
		}
		if result.StepsTaken > 0 {
			r.StepTime = elapsed / time.Duration(result.StepsTaken)
		}
		results = append(results, r)

		logger.Info("sweep step", "index", i+1, "of", sweep.NumSteps, "balls", r.Balls, "step_time", r.StepTime)
	}

	return results, nil
}

// MonteCarloResult holds the outcome of one seeded trial
type MonteCarloResult struct {
	Seed        int64
	Contacts    int
	Degenerate  int
	FinalEnergy float64
	Stable      bool // no NaN/Inf reached
}

// RunMonteCarlo runs one trial per seed, in parallel, from cfg.Seed upwards.
// Each trial spawns its own world; set Balls.InitialSpeed for moving starts.
func RunMonteCarlo(ctx context.Context, cfg *config.Config, trials int, logger *slog.Logger) ([]MonteCarloResult, error) {
	results, err := sim.NewEnsemble(experiment.Factory(cfg, logger), trials, cfg.Seed).Run(ctx, cfg.SimConfig())
	if err != nil {
		return nil, err
	}

	out := make([]MonteCarloResult, len(results))
	for i, r := range results {
		out[i] = MonteCarloResult{
			Seed:       cfg.Seed + int64(i),
			Contacts:   r.Contacts,
			Degenerate: r.Degenerate,
			Stable:     len(r.Errors) == 0,
		}
		if n := len(r.Samples); n > 0 {
			out[i].FinalEnergy = r.Samples[n-1].KineticEnergy
		}
	}
	return out, nil
}

// MonteCarloStats computes summary statistics from Monte Carlo results
func MonteCarloStats(results []MonteCarloResult) (stableCount int, unstableCount int) {
	for _, r := range results {
		if r.Stable {
			stableCount++
		} else {
			unstableCount++
		}
	}
	return
}
