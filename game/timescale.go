package game

// TimeScaleController owns the simulation time scale and the presets it steps through.
// A scale of 0 freezes time, 1 is real time and values above 1 speed the clock up.
//
// The current scale may start off-preset (injected from configuration); stepping compares
// by magnitude only, so the first step lands it back on a preset.
type TimeScaleController struct {
	presets []float64 // admissible scales, scanned in list order
	current float64   // scale read by the simulation every tick
}

// NewTimeScaleController creates a controller with the given presets and initial scale.
// The presets slice is copied.
func NewTimeScaleController(presets []float64, initial float64) *TimeScaleController {
	return &TimeScaleController{
		presets: append([]float64(nil), presets...),
		current: initial,
	}
}

// Scale returns the current time scale.
func (ts *TimeScaleController) Scale() float64 {
	return ts.current
}

// Presets returns a copy of the preset list.
func (ts *TimeScaleController) Presets() []float64 {
	return append([]float64(nil), ts.presets...)
}

// SpeedUp moves to the first preset strictly greater than the current scale.
// Returns the old and new scale; both are equal when no faster preset exists.
func (ts *TimeScaleController) SpeedUp() (float64, float64) {
	old := ts.current
	for _, scale := range ts.presets {
		if scale > ts.current {
			ts.current = scale
			return old, ts.current
		}
	}
	return ts.current, ts.current
}

// SlowDown moves to the last preset strictly less than the current scale.
// Returns the old and new scale; both are equal when no slower preset exists.
func (ts *TimeScaleController) SlowDown() (float64, float64) {
	old := ts.current
	for i := len(ts.presets) - 1; i >= 0; i-- {
		if ts.presets[i] < ts.current {
			ts.current = ts.presets[i]
			return old, ts.current
		}
	}
	return ts.current, ts.current
}
