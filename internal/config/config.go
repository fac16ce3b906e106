package config

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/ballsim/internal/geom"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt            = 1.0 / 60.0
	DefaultDuration      = 10.0
	DefaultSeed          = 42
	DefaultWidth         = 1290.0
	DefaultHeight        = 720.0
	DefaultBalls         = 100
	DefaultSpeed         = 300.0
	DefaultMaxSpeed      = 5000.0
	DefaultScrollStep    = 100.0
	DefaultLineThickness = 2.0
	DefaultFPS           = 60

	MinLineThickness = 1.0
	MaxLineThickness = 4.0
)

type Config struct {
	Seed     int64        `yaml:"seed"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Friction string       `yaml:"friction"`
	LogLevel string       `yaml:"log_level"`
	Screen   ScreenConfig `yaml:"screen"`
	Balls    BallsConfig  `yaml:"balls"`
	Launch   LaunchConfig `yaml:"launch"`
	Render   RenderConfig `yaml:"render"`
}

type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type BallsConfig struct {
	Count       int     `yaml:"count"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	MaxAttempts int     `yaml:"max_attempts"`

	// InitialSpeed bounds the random spawn speed; 0 spawns balls at rest.
	InitialSpeed float64 `yaml:"initial_speed"`
}

type LaunchConfig struct {
	Speed      float64 `yaml:"speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	ScrollStep float64 `yaml:"scroll_step"`
}

type RenderConfig struct {
	LineThickness float64 `yaml:"line_thickness"`
	FPS           int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Seed:     DefaultSeed,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Friction: physics.FrictionDrag.String(),
		LogLevel: "info",
		Screen: ScreenConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Balls: BallsConfig{
			Count:       DefaultBalls,
			MinRadius:   physics.DefaultMinRadius,
			MaxRadius:   physics.DefaultMaxRadius,
			MaxAttempts: physics.DefaultMaxAttempts,
		},
		Launch: LaunchConfig{
			Speed:      DefaultSpeed,
			MaxSpeed:   DefaultMaxSpeed,
			ScrollStep: DefaultScrollStep,
		},
		Render: RenderConfig{
			LineThickness: DefaultLineThickness,
			FPS:           DefaultFPS,
		},
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs the
// fields it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the simulation cannot start from. Every error
// wraps physics.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", physics.ErrInvalidConfig, c.Dt)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %g", physics.ErrInvalidConfig, c.Duration)
	}
	if !c.Bounds().Valid() {
		return fmt.Errorf("%w: screen %gx%g must be positive", physics.ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Balls.Count < 0 {
		return fmt.Errorf("%w: ball count must not be negative, got %d", physics.ErrInvalidConfig, c.Balls.Count)
	}
	if err := c.SpawnOptions().Validate(); err != nil {
		return err
	}
	if _, err := c.FrictionMode(); err != nil {
		return err
	}
	if c.Launch.MaxSpeed < 0 || c.Launch.Speed < 0 {
		return fmt.Errorf("%w: launch speeds must not be negative", physics.ErrInvalidConfig)
	}
	if t := c.Render.LineThickness; t < MinLineThickness || t > MaxLineThickness {
		return fmt.Errorf("%w: line thickness %g outside [%g, %g]", physics.ErrInvalidConfig, t, MinLineThickness, MaxLineThickness)
	}
	if c.Render.FPS < 0 {
		return fmt.Errorf("%w: fps must not be negative, got %d", physics.ErrInvalidConfig, c.Render.FPS)
	}
	return nil
}

func (c *Config) Bounds() geom.Bounds {
	return geom.NewBounds(c.Screen.Width, c.Screen.Height)
}

func (c *Config) FrictionMode() (physics.FrictionMode, error) {
	return physics.ParseFrictionMode(c.Friction)
}

func (c *Config) SpawnOptions() physics.SpawnOptions {
	return physics.SpawnOptions{
		MinRadius:    c.Balls.MinRadius,
		MaxRadius:    c.Balls.MaxRadius,
		MaxAttempts:  c.Balls.MaxAttempts,
		InitialSpeed: c.Balls.InitialSpeed,
	}
}

func (c *Config) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Dt = c.Dt
	cfg.Duration = c.Duration
	cfg.Seed = c.Seed
	return cfg
}

// Rand returns the generator for this configuration. Seed 0 draws a fresh
// seed from the clock.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewWorld validates the configuration and spawns its balls. A
// *physics.SpawnDensityError is returned when the balls do not fit.
func (c *Config) NewWorld() (*sim.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := c.FrictionMode()
	bounds := c.Bounds()

	balls, err := physics.NewSpawner(c.Rand(), c.SpawnOptions()).Spawn(c.Balls.Count, bounds)
	if err != nil {
		return nil, err
	}
	return sim.NewWorld(balls, bounds, mode), nil
}

// WithSeed returns a copy of c using seed.
func (c *Config) WithSeed(seed int64) *Config {
	cp := *c
	cp.Seed = seed
	return &cp
}
