package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/physics"
)

// Simulator advances a World one tick at a time. It is not safe for
// concurrent use; frontends call Step from their frame loop.
type Simulator struct {
	world      *World
	controller Controller
	metrics    []Metric
	observers  []Observer
	logger     *slog.Logger
	step       int
}

func New(world *World, controller Controller) *Simulator {
	return &Simulator{
		world:      world,
		controller: controller,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
		logger:     logging.Discard(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *Simulator) World() *World { return s.world }

func (s *Simulator) Controller() Controller { return s.controller }

// Step runs one full tick: manipulation overrides, collision resolution,
// integration, then metrics and observers. A negative dt is treated as zero.
func (s *Simulator) Step(dt float64) physics.StepStats {
	if dt < 0 {
		dt = 0
	}
	w := s.world

	if s.controller != nil {
		s.apply(s.controller.Compute(w))
	}

	var stats physics.StepStats
	w.Contacts, stats = physics.Resolve(w.Balls, w.Friction, w.Contacts[:0])
	if stats.Degenerate > 0 {
		s.logger.Debug("skipped coincident pairs",
			"step", s.step, "count", stats.Degenerate, "reason", physics.ErrDegenerateDistance)
	}

	physics.Integrate(w.Balls, w.Friction, dt, w.Bounds)
	w.Time += dt
	s.step++

	for _, m := range s.metrics {
		m.Observe(w, stats)
	}
	for _, obs := range s.observers {
		obs.OnStep(w, stats)
	}
	return stats
}

func (s *Simulator) apply(o Overrides) {
	if o.Launch != nil && s.world.SetVelocity(o.Launch.Index, o.Launch.Velocity) {
		s.logger.Debug("launched ball", "index", o.Launch.Index, "speed", o.Launch.Velocity.Norm())
	}
	if o.Hold != nil {
		s.world.OverridePosition(o.Hold.Index, o.Hold.Position)
		s.world.SetVelocity(o.Hold.Index, r2.Point{})
	}
}

// Run advances the world with a fixed timestep for cfg.Duration seconds and
// records a time series. It stops early when ctx is canceled.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	every := cfg.SampleEvery
	if every < 1 {
		every = 1
	}

	result := &Result{
		Samples: make([]Sample, 0, steps/every+2),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	result.Samples = append(result.Samples, sample(s.world, 0))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		stats := s.Step(cfg.Dt)
		result.StepsTaken++
		result.Contacts += stats.Resolved
		result.Degenerate += stats.Degenerate

		if cfg.ValidateState && !s.world.IsValid() {
			err := SimError{Time: s.world.Time, Step: i, Message: "invalid state (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			s.logger.Error("simulation diverged", "step", i, "error", err)
			break
		}

		if (i+1)%every == 0 || i == steps-1 {
			result.Samples = append(result.Samples, sample(s.world, stats.Resolved))
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.logger.Info("run finished",
		"steps", result.StepsTaken, "contacts", result.Contacts, "degenerate", result.Degenerate)
	return result, nil
}

// RunWithCallback steps the world until cfg.Duration elapses or callback
// returns false. The callback runs between ticks.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(w *World, stats physics.StepStats) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	var stats physics.StepStats
	end := s.world.Time + cfg.Duration
	for s.world.Time < end-cfg.Dt/2 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(s.world, stats) {
			return nil
		}

		stats = s.Step(cfg.Dt)

		if cfg.ValidateState && !s.world.IsValid() {
			return fmt.Errorf("invalid state at t=%.4f", s.world.Time)
		}
	}

	return nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func sample(w *World, contacts int) Sample {
	p := physics.Momentum(w.Balls)
	return Sample{
		Time:          w.Time,
		KineticEnergy: physics.KineticEnergy(w.Balls),
		MomentumX:     p.X,
		MomentumY:     p.Y,
		Contacts:      contacts,
		Moving:        physics.Moving(w.Balls),
	}
}
