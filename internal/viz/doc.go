// Package viz provides the terminal live view of a ball simulation.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: the live view, stepping the simulation on real elapsed time
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - Theme selection with 3 built-in color schemes
//
// # Input
//
//	Left click  - Pick up / release the ball under the pointer
//	Right click - Aim at a ball, click again to launch it
//	Wheel, +/-  - Launch speed
//	Esc         - Cancel pick up and aim
//	Space       - Pause/Resume simulation
//	S           - Stop all motion
//	1 2 3       - Friction mode: drag, collision, none
//	T           - Cycle color themes
//	P           - Save an SVG snapshot
//	G           - Toggle GIF recording
//	?           - Show help overlay
package viz
