// Package trace provides decision-trace recording for state transitions and time-scale steps.
// The package does not import game/ and stores plain data types only.
package trace

// TransitionRecord captures one applied transition request.
type TransitionRecord struct {
	Frame  uint64
	Kind   string   // "push", "pop", "switch", "replace", "quit"
	Source string   // "event" or "update"
	From   []string // state kinds before, bottom first
	To     []string // state kinds after, bottom first
}

// ScaleRecord captures one speed-up or slow-down request.
type ScaleRecord struct {
	Frame  uint64
	Action string
	Old    float64
	New    float64 // equal to Old when the step saturated at a boundary
}

// Saturated reports whether the step left the scale unchanged.
func (r ScaleRecord) Saturated() bool {
	return r.Old == r.New
}
