package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTransitions captures every applied state transition.
	TraceLevelTransitions TraceLevel = "transitions"
	// TraceLevelAll additionally captures time-scale steps.
	TraceLevelAll TraceLevel = "all"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:        true,
	TraceLevelTransitions: true,
	TraceLevelAll:         true,
	"":                    true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects records during a run.
type SimulationTrace struct {
	Config      TraceConfig
	Transitions []TransitionRecord
	Scales      []ScaleRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Transitions: make([]TransitionRecord, 0),
		Scales:      make([]ScaleRecord, 0),
	}
}

// RecordTransition appends a transition record unless tracing is disabled.
func (st *SimulationTrace) RecordTransition(record TransitionRecord) {
	switch st.Config.Level {
	case TraceLevelTransitions, TraceLevelAll:
		st.Transitions = append(st.Transitions, record)
	}
}

// RecordScale appends a time-scale record when the level is TraceLevelAll.
func (st *SimulationTrace) RecordScale(record ScaleRecord) {
	if st.Config.Level == TraceLevelAll {
		st.Scales = append(st.Scales, record)
	}
}
