package game

import "github.com/dsf-game/dsf/game/trace"

// EntityID is a handle to an entity created by the simulation.
type EntityID uint64

// Tick describes one discrete advance of simulated time.
type Tick struct {
	Frame uint64  // frame index the tick belongs to
	Scale float64 // time scale in effect for this tick
	Delta float64 // simulated seconds: base step * Scale
}

// Simulation is the external world the states drive.
// Implementations own entities, components and systems; the core only asks them to
// create or remove entities and to advance by one tick.
type Simulation interface {
	// Spawn creates an entity carrying the named components.
	Spawn(components ...string) EntityID
	// Despawn removes an entity. Unknown IDs are ignored.
	Despawn(id EntityID)
	// Advance runs the simulation systems for one tick.
	Advance(tick Tick)
}

// Options tunes a Driver.
type Options struct {
	// Step is the simulated seconds per tick at scale 1.0 (defaults to 1/60).
	Step float64
	// DisplayDebugFrames spawns ghost frames marking the player's discrete position.
	DisplayDebugFrames bool
	// Trace, when non-nil, receives transition and time-scale records.
	Trace *trace.SimulationTrace
}

// Context is what state hooks are allowed to touch.
// It is owned by the Driver and passed by reference to the hooks that need it.
type Context struct {
	World     Simulation
	TimeScale *TimeScaleController
	Options   Options
	Frame     uint64
}

func (ctx *Context) recordTransition(t Trans, source string, from, to []StateKind) {
	if ctx.Options.Trace == nil {
		return
	}
	ctx.Options.Trace.RecordTransition(trace.TransitionRecord{
		Frame:  ctx.Frame,
		Kind:   t.Kind.String(),
		Source: source,
		From:   kindNames(from),
		To:     kindNames(to),
	})
}

func (ctx *Context) recordScale(action string, from, to float64) {
	if ctx.Options.Trace == nil {
		return
	}
	ctx.Options.Trace.RecordScale(trace.ScaleRecord{
		Frame:  ctx.Frame,
		Action: action,
		Old:    from,
		New:    to,
	})
}

func kindNames(kinds []StateKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
