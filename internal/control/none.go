package control

import "github.com/san-kum/ballsim/internal/sim"

// None never overrides anything. Headless runs use it.
type None struct{}

func NewNone() *None { return &None{} }

func (n *None) Compute(w *sim.World) sim.Overrides { return sim.Overrides{} }
