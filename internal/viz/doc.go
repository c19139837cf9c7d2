// Package viz provides terminal-based visualization for quantum device runs.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live register view with per-basis-state probability bars
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space/Enter - Apply a Hadamard on the selected wire
//	Left/Right  - Select wire
//	+/-         - Grow or shrink the register
//	R           - Reset to |0...0>
//	T           - Cycle color themes
//	?           - Show help overlay
//
// # Display Order
//
// Amplitudes render in device order, where basis index bit k is the
// state of wire k. The probability trace tracks the all-zeros state.
package viz
