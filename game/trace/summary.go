package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTransitions int
	KindCounts       map[string]int // transition kind → count
	EventSourced     int
	UpdateSourced    int
	ScaleSteps       int
	SaturatedSteps   int
	MinScale         float64
	MaxScale         float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTransitions = len(st.Transitions)
	for _, r := range st.Transitions {
		summary.KindCounts[r.Kind]++
		switch r.Source {
		case "event":
			summary.EventSourced++
		case "update":
			summary.UpdateSourced++
		}
	}

	summary.ScaleSteps = len(st.Scales)
	for i, r := range st.Scales {
		if r.Saturated() {
			summary.SaturatedSteps++
		}
		if i == 0 || r.New < summary.MinScale {
			summary.MinScale = r.New
		}
		if i == 0 || r.New > summary.MaxScale {
			summary.MaxScale = r.New
		}
	}

	return summary
}
