package physics

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/geom"
)

const (
	DefaultMinRadius   = 4.0
	DefaultMaxRadius   = 40.0
	DefaultMaxAttempts = 10000
)

type SpawnOptions struct {
	MinRadius float64
	MaxRadius float64
	// MaxAttempts bounds the position redraws for a single body.
	MaxAttempts int
	// InitialSpeed, when positive, gives each ball a random heading and a
	// speed uniform in [0, InitialSpeed). Zero spawns every ball at rest.
	InitialSpeed float64
}

func DefaultSpawnOptions() SpawnOptions {
	return SpawnOptions{
		MinRadius:   DefaultMinRadius,
		MaxRadius:   DefaultMaxRadius,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (o SpawnOptions) Validate() error {
	if o.MinRadius <= 0 || o.MaxRadius <= 0 {
		return fmt.Errorf("%w: radius range [%g, %g] must be positive", ErrInvalidConfig, o.MinRadius, o.MaxRadius)
	}
	if o.MinRadius > o.MaxRadius {
		return fmt.Errorf("%w: min radius %g exceeds max radius %g", ErrInvalidConfig, o.MinRadius, o.MaxRadius)
	}
	if o.InitialSpeed < 0 {
		return fmt.Errorf("%w: initial speed must not be negative, got %g", ErrInvalidConfig, o.InitialSpeed)
	}
	if o.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfig, o.MaxAttempts)
	}
	return nil
}

type Spawner struct {
	rng  *rand.Rand
	opts SpawnOptions
}

func NewSpawner(rng *rand.Rand, opts SpawnOptions) *Spawner {
	return &Spawner{rng: rng, opts: opts}
}

// NewBall draws a resting ball with random radius, color and position.
func (s *Spawner) NewBall(bounds geom.Bounds) Ball {
	radius := s.opts.MinRadius
	if s.opts.MaxRadius > s.opts.MinRadius {
		radius += s.rng.Float64() * (s.opts.MaxRadius - s.opts.MinRadius)
	}
	b := Ball{
		Position: bounds.Random(s.rng),
		Radius:   radius,
		Color: color.RGBA{
			R: uint8(64 + s.rng.Intn(191)),
			G: uint8(64 + s.rng.Intn(191)),
			B: uint8(64 + s.rng.Intn(191)),
			A: 255,
		},
	}
	if s.opts.InitialSpeed > 0 {
		heading := s.rng.Float64() * 2 * math.Pi
		speed := s.rng.Float64() * s.opts.InitialSpeed
		b.Velocity = r2.Point{X: math.Cos(heading), Y: math.Sin(heading)}.Mul(speed)
	}
	return b
}

// Spawn places count balls so that no two overlap. Only the position of a
// rejected candidate is redrawn; its radius and color are kept.
func (s *Spawner) Spawn(count int, bounds geom.Bounds) ([]Ball, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative ball count %d", ErrInvalidConfig, count)
	}
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: bounds %gx%g must be positive", ErrInvalidConfig, bounds.Width, bounds.Height)
	}
	if err := s.opts.Validate(); err != nil {
		return nil, err
	}

	balls := make([]Ball, 0, count)
	for len(balls) < count {
		candidate := s.NewBall(bounds)
		attempts := 1
		for firstOverlap(balls, &candidate) >= 0 {
			if attempts >= s.opts.MaxAttempts {
				return balls, &SpawnDensityError{
					Requested: count,
					Placed:    len(balls),
					Attempts:  attempts,
					Radius:    candidate.Radius,
				}
			}
			candidate.Position = bounds.Random(s.rng)
			attempts++
		}
		balls = append(balls, candidate)
	}
	return balls, nil
}

// firstOverlap returns the index of the first ball overlapping b, or -1.
func firstOverlap(balls []Ball, b *Ball) int {
	for i := range balls {
		if geom.CirclesOverlap(balls[i].Position, balls[i].Radius, b.Position, b.Radius) {
			return i
		}
	}
	return -1
}
