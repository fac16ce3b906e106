package physics

import (
	"errors"
	"fmt"
)

// Domain errors for the collision core.
var (
	// ErrDegenerateDistance marks an overlapping pair whose centers coincide.
	// It is recovered inside a pass: the pair is skipped for that tick.
	ErrDegenerateDistance = errors.New("physics: coincident centers, pair skipped")

	// ErrSpawnDensity indicates the requested bodies do not fit without overlap.
	ErrSpawnDensity = errors.New("physics: cannot place bodies without overlap")

	// ErrInvalidConfig indicates a rejected count, radius or mode.
	ErrInvalidConfig = errors.New("physics: invalid configuration")
)

// SpawnDensityError reports how far spawning got before the retry budget ran out.
type SpawnDensityError struct {
	Requested int
	Placed    int
	Attempts  int
	Radius    float64
}

func (e *SpawnDensityError) Error() string {
	return fmt.Sprintf("physics: placed %d of %d bodies; body of radius %.2f failed after %d attempts",
		e.Placed, e.Requested, e.Radius, e.Attempts)
}

func (e *SpawnDensityError) Unwrap() error {
	return ErrSpawnDensity
}
