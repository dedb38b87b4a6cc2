// Package game provides the state/control core of the dsf front-end.
//
// # Reading Guide
//
// Start with these files:
//   - timescale.go: discrete time-scale presets and speed-up/slow-down stepping
//   - state.go: the closed set of states (Running, Paused) and their hooks
//   - stack.go: the state stack and its transition semantics
//   - driver.go: the per-frame loop (events → update → transition → tick)
//
// # Frame model
//
// A host (window or headless, see internal/host) calls Driver.Frame once per rendered
// frame from a single goroutine. Nothing in this package blocks or locks. The simulated
// world is reached only through the Simulation interface; game/world provides the
// in-process implementation.
//
// # Transitions
//
// Hooks never mutate the stack. They return a Trans value and the driver applies at most
// one per frame, after event delivery and the update hook have completed. When an event
// and the update hook both request a transition in the same frame, the event wins.
package game
