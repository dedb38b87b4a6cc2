package game

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// StateKind is the closed set of top-level states.
type StateKind int

const (
	StateRunning StateKind = iota + 1 // baseline: the simulation advances
	StatePaused                       // overlay shown, simulation frozen
)

func (k StateKind) String() string {
	switch k {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int(k))
	}
}

// Simulating reports whether the driver advances the simulation while k is live.
func (k StateKind) Simulating() bool {
	return k == StateRunning
}

// State is one entry of the state stack. Only the fields of its Kind are used.
type State struct {
	Kind StateKind

	// Running
	Player EntityID
	Camera EntityID
	Ghosts []EntityID // debug frames, present when DisplayDebugFrames is set

	// Paused
	Overlay     EntityID
	ResumeAfter uint64 // auto-resume after this many live frames; 0 waits for input
	liveFrames  uint64
	blink       bool
}

// NewRunning returns the baseline simulation state.
func NewRunning() *State {
	return &State{Kind: StateRunning}
}

// NewPaused returns a pause state that waits for input to resume.
func NewPaused() *State {
	return &State{Kind: StatePaused}
}

// NewPausedFor returns a pause state that pops itself after the given number of frames.
func NewPausedFor(frames uint64) *State {
	return &State{Kind: StatePaused, ResumeAfter: frames}
}

// OverlayVisible reports the blink phase of the pause overlay. The overlay is shown for the
// first BlinkSeconds of the pause, hidden for the next BlinkSeconds, and so on.
func (s *State) OverlayVisible() bool {
	return !s.blink
}

// BlinkSeconds is the half period of the pause overlay blink, counted in unscaled frame time.
const BlinkSeconds = 0.5

// blinkFrames converts BlinkSeconds into frames of the given step, at least one.
func blinkFrames(step float64) uint64 {
	if step <= 0 {
		step = DefaultStep
	}
	if n := math.Round(BlinkSeconds / step); n >= 1 {
		return uint64(n)
	}
	return 1
}

// Hooks. Each one dispatches on the closed StateKind set.

func (s *State) start(ctx *Context) {
	logrus.Infof("[frame %06d] start %s", ctx.Frame, s.Kind)
	switch s.Kind {
	case StateRunning:
		s.Player = ctx.World.Spawn("sprite:mob", "transform", "discrete_pos", "velocity", "steering", "player")
		if ctx.Options.DisplayDebugFrames {
			s.Ghosts = append(s.Ghosts,
				ctx.World.Spawn("sprite:frame", "transform", "debug_steering_ghost"),
				ctx.World.Spawn("sprite:frame", "transform", "debug_pos_ghost"),
			)
		}
		s.Camera = ctx.World.Spawn("camera_frame", "transform", "camera")
	case StatePaused:
		s.Overlay = ctx.World.Spawn("ui:paused")
		s.liveFrames = 0
		s.blink = false
	}
}

func (s *State) stop(ctx *Context) {
	logrus.Infof("[frame %06d] stop %s", ctx.Frame, s.Kind)
	switch s.Kind {
	case StateRunning:
		ctx.World.Despawn(s.Player)
		for _, g := range s.Ghosts {
			ctx.World.Despawn(g)
		}
		ctx.World.Despawn(s.Camera)
		s.Ghosts = nil
	case StatePaused:
		ctx.World.Despawn(s.Overlay)
	}
}

func (s *State) pause(ctx *Context) {
	logrus.Debugf("[frame %06d] suspend %s", ctx.Frame, s.Kind)
}

func (s *State) resume(ctx *Context) {
	logrus.Debugf("[frame %06d] resume %s", ctx.Frame, s.Kind)
}

func (s *State) handleEvent(ctx *Context, e Event) Trans {
	switch s.Kind {
	case StateRunning:
		return s.handleRunningEvent(ctx, e)
	case StatePaused:
		return s.handlePausedEvent(e)
	default:
		return None()
	}
}

func (s *State) handleRunningEvent(ctx *Context, e Event) Trans {
	switch e.Kind {
	case EventWindow:
		if e.Window.CloseRequested || e.Window.KeyDown == KeyF1 {
			return Quit()
		}
		if e.Window.KeyDown == KeyEscape {
			return Push(NewPaused())
		}
		return None()
	case EventInput:
		if e.Action == ActionPause && e.PauseFrames > 0 {
			return Push(NewPausedFor(e.PauseFrames))
		}
		before := ctx.TimeScale.Scale()
		t := Route(e.Action, ctx.TimeScale)
		if isScaleAction(e.Action) {
			ctx.recordScale(e.Action, before, ctx.TimeScale.Scale())
		}
		return t
	default:
		return None()
	}
}

func (s *State) handlePausedEvent(e Event) Trans {
	switch e.Kind {
	case EventWindow:
		if e.Window.CloseRequested || e.Window.KeyDown == KeyF1 {
			return Quit()
		}
		if e.Window.KeyDown == KeyEscape {
			return Pop()
		}
		return None()
	case EventInput:
		switch e.Action {
		case ActionPause:
			return Pop()
		case ActionQuit:
			return Quit()
		}
		return None()
	default:
		return None()
	}
}

func (s *State) update(ctx *Context) Trans {
	switch s.Kind {
	case StatePaused:
		s.liveFrames++
		s.blink = (s.liveFrames/blinkFrames(ctx.Options.Step))%2 == 1
		if s.ResumeAfter > 0 && s.liveFrames >= s.ResumeAfter {
			return Pop()
		}
		return None()
	default:
		return None()
	}
}
