// Package control provides the controllers that manipulate a running world.
//
// Controllers implement the [sim.Controller] interface and hand the simulator
// override instructions at the start of every tick:
//
//   - [Interaction]: pick-up, aim-and-launch driven by pointer events
//   - [None]: passthrough controller (no overrides)
//
// # Usage
//
//	ctrl := control.NewInteraction()
//	s := sim.New(world, ctrl)
//	ctrl.PointerMoved(p)
//	ctrl.LeftClick(s.World()) // pick up the ball under p
//	s.Step(dt)                // the held ball follows the pointer
//
// [Interaction] exposes GetParams/SetParam for live tuning of launch speed.
package control
