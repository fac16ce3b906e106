// Package experiment assembles a runnable simulation from a configuration:
// spawned world, controller, standard metrics and logger.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
	logger    *slog.Logger
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg, logger: logging.Discard()}
}

func (e *Experiment) SetLogger(l *slog.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Setup spawns the world and wires controller and metrics. A nil controller
// runs the world without manipulation.
func (e *Experiment) Setup(controller sim.Controller) error {
	w, err := e.cfg.NewWorld()
	if err != nil {
		var densityErr *physics.SpawnDensityError
		if errors.As(err, &densityErr) {
			e.logger.Error("spawn failed",
				"requested", densityErr.Requested, "placed", densityErr.Placed, "attempts", densityErr.Attempts)
		}
		return fmt.Errorf("setup: %w", err)
	}
	e.logger.Info("spawned world",
		"balls", len(w.Balls), "width", w.Bounds.Width, "height", w.Bounds.Height,
		"friction", w.Friction, "seed", e.cfg.Seed)

	e.simulator = sim.New(w, controller)
	e.simulator.SetLogger(e.logger)
	for _, m := range metrics.Standard() {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.cfg.SimConfig())
}

// Simulator returns the underlying simulator for adding observers
func (e *Experiment) Simulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Factory returns a sim.Factory that builds a fresh experiment per seed, for
// use with sim.Ensemble.
func Factory(cfg *config.Config, logger *slog.Logger) sim.Factory {
	return func(seed int64) (*sim.Simulator, error) {
		exp := New(cfg.WithSeed(seed))
		exp.SetLogger(logger)
		if err := exp.Setup(nil); err != nil {
			return nil, err
		}
		return exp.Simulator(), nil
	}
}
