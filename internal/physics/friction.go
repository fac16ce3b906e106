package physics

import (
	"fmt"
	"strings"
)

// FrictionMode selects when velocity decays.
type FrictionMode int

const (
	FrictionNone FrictionMode = iota
	FrictionDrag
	FrictionCollision
)

var frictionNames = map[FrictionMode]string{
	FrictionNone:      "none",
	FrictionDrag:      "drag",
	FrictionCollision: "collision",
}

func (m FrictionMode) String() string {
	if s, ok := frictionNames[m]; ok {
		return s
	}
	return fmt.Sprintf("FrictionMode(%d)", int(m))
}

// FrictionModes lists every mode in display order.
func FrictionModes() []FrictionMode {
	return []FrictionMode{FrictionDrag, FrictionCollision, FrictionNone}
}

func ParseFrictionMode(s string) (FrictionMode, error) {
	for m, name := range frictionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return m, nil
		}
	}
	return FrictionNone, fmt.Errorf("%w: unknown friction mode %q", ErrInvalidConfig, s)
}
