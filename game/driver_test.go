package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsf-game/dsf/game/trace"
)

var scenarioPresets = []float64{0.5, 1.0, 2.0, 4.0}

func TestDriver_Frame_AdvancesScaledTickWhileRunning(t *testing.T) {
	// GIVEN a driver at scale 2.0 with a 0.1s step
	d, w := newTestDriver(scenarioPresets, 2.0, Options{Step: 0.1})

	// WHEN two frames run
	require.True(t, d.Frame())
	require.True(t, d.Frame())

	// THEN two ticks were issued with the scaled delta
	require.Len(t, w.ticks, 2)
	assert.Equal(t, uint64(1), w.ticks[0].Frame)
	assert.Equal(t, 2.0, w.ticks[1].Scale)
	assert.InDelta(t, 0.2, w.ticks[1].Delta, 1e-12)
	assert.Equal(t, uint64(2), d.Ticks())
}

func TestDriver_DefaultStep(t *testing.T) {
	d, w := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Frame()
	require.Len(t, w.ticks, 1)
	assert.InDelta(t, DefaultStep, w.ticks[0].Delta, 1e-12)
}

func TestDriver_InputActions_ChangeScaleForNextTick(t *testing.T) {
	d, w := newTestDriver(scenarioPresets, 1.0, Options{Step: 1})

	d.Push(ActionEvent(ActionSpeedUp))
	d.Frame()
	d.Push(ActionEvent(ActionSpeedUp))
	d.Push(ActionEvent(ActionSpeedUp))
	d.Frame()
	d.Push(ActionEvent(ActionSlowDown))
	d.Frame()

	require.Len(t, w.ticks, 3)
	assert.Equal(t, 2.0, w.ticks[0].Scale)
	assert.Equal(t, 4.0, w.ticks[1].Scale, "both speed-ups delivered; the second saturates")
	assert.Equal(t, 2.0, w.ticks[2].Scale)
}

func TestDriver_PauseKey_PushesPausedAndFreezesSimulation(t *testing.T) {
	// GIVEN Running on top
	d, w := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Frame()
	running := d.Stack().Top()

	// WHEN Escape is pressed
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	// THEN the stack is [Running(suspended), Paused(top)]
	assert.Equal(t, []StateKind{StateRunning, StatePaused}, d.Stack().Kinds())
	ticks := len(w.ticks)

	// AND no tick is issued while Paused is live
	d.Frame()
	d.Frame()
	assert.Len(t, w.ticks, ticks)

	// WHEN Escape is pressed again
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	// THEN Running is live again, resumed rather than recreated
	assert.Equal(t, []StateKind{StateRunning}, d.Stack().Kinds())
	assert.Same(t, running, d.Stack().Top())
	assert.Equal(t, 1, w.withComponent("player"))

	// AND the simulation advances again
	d.Frame()
	assert.Len(t, w.ticks, ticks+1)
}

func TestDriver_PauseAction_TogglesPause(t *testing.T) {
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})

	d.Push(ActionEvent(ActionPause))
	d.Frame()
	assert.Equal(t, StatePaused, d.Stack().Top().Kind)

	d.Push(ActionEvent(ActionPause))
	d.Frame()
	assert.Equal(t, []StateKind{StateRunning}, d.Stack().Kinds())
}

func TestDriver_PausedIgnoresTimeScaleActions(t *testing.T) {
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	d.Push(ActionEvent(ActionSpeedUp))
	d.Push(WidgetEvent("resume_button", "click"))
	d.Frame()

	assert.Equal(t, 1.0, d.TimeScale().Scale())
	assert.Equal(t, StatePaused, d.Stack().Top().Kind)
}

func TestDriver_CloseAndF1_Quit(t *testing.T) {
	for name, e := range map[string]Event{"close": CloseEvent(), "f1": KeyEvent(KeyF1)} {
		t.Run(name, func(t *testing.T) {
			d, w := newTestDriver(scenarioPresets, 1.0, Options{})
			d.Push(e)

			assert.False(t, d.Frame())
			assert.True(t, d.Done())
			assert.Empty(t, w.ticks, "no tick after quit")

			// Further frames are refused.
			assert.False(t, d.Frame())
			assert.Equal(t, uint64(1), d.Frames())
		})
	}
}

func TestDriver_QuitFromPaused(t *testing.T) {
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	d.Push(CloseEvent())
	assert.False(t, d.Frame())
}

func TestDriver_FirstTransitionShortCircuitsBatch(t *testing.T) {
	// GIVEN a batch where a pause precedes a speed-up and a quit
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Push(KeyEvent(KeyEscape))
	d.Push(ActionEvent(ActionSpeedUp))
	d.Push(CloseEvent())

	// WHEN the frame runs
	assert.True(t, d.Frame())

	// THEN only the pause was delivered; later events were dropped
	assert.Equal(t, []StateKind{StateRunning, StatePaused}, d.Stack().Kinds())
	assert.Equal(t, 1.0, d.TimeScale().Scale())

	// AND nothing carries over to the next frame
	assert.True(t, d.Frame())
	assert.Equal(t, StatePaused, d.Stack().Top().Kind)
}

func TestDriver_EventsBeforeTransitionAreApplied(t *testing.T) {
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Push(ActionEvent(ActionSpeedUp))
	d.Push(ActionEvent("jump"))
	d.Push(KeyEvent(KeyEscape))

	d.Frame()

	assert.Equal(t, 2.0, d.TimeScale().Scale())
	assert.Equal(t, StatePaused, d.Stack().Top().Kind)
}

func TestDriver_UpdateSourcedTransition(t *testing.T) {
	// GIVEN a pause that resumes itself after two live frames
	d, w := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Frame()
	d.Stack().Apply(d.ctx, Push(NewPausedFor(2)))
	ticks := len(w.ticks)

	// WHEN frames run
	d.Frame()
	assert.Equal(t, StatePaused, d.Stack().Top().Kind)
	d.Frame()

	// THEN its update hook popped it
	assert.Equal(t, []StateKind{StateRunning}, d.Stack().Kinds())
	assert.Len(t, w.ticks, ticks, "paused frames never tick")
}

func TestDriver_EventTransitionWinsOverUpdateTransition(t *testing.T) {
	// GIVEN a pause whose update will request Pop this frame
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Stack().Apply(d.ctx, Push(NewPausedFor(1)))

	// WHEN a quit event arrives in the same frame
	d.Push(ActionEvent(ActionQuit))
	d.Frame()

	// THEN the event-sourced Quit is applied, not the update's Pop
	assert.True(t, d.Done())
	assert.Equal(t, []StateKind{StateRunning, StatePaused}, d.Stack().Kinds())
}

func TestDriver_SwitchIsAtomic(t *testing.T) {
	// GIVEN Running switched to Paused at a frame boundary
	d, w := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Stack().Apply(d.ctx, Switch(NewPaused()))
	require.Equal(t, []StateKind{StatePaused}, d.Stack().Kinds())

	// WHEN the next frame delivers Escape
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	// THEN Paused handled it (Pop of the only entry quits); Running never saw it
	assert.True(t, d.Done())
	assert.Empty(t, w.ticks)
	assert.Equal(t, 0, w.withComponent("player"))
}

func TestDriver_UnknownEventKind_IsIgnored(t *testing.T) {
	d, _ := newTestDriver(scenarioPresets, 1.0, Options{})
	d.Push(Event{Kind: EventKind(99)})
	d.Push(Event{})
	d.Push(WidgetEvent("menu", "click"))

	assert.True(t, d.Frame())
	assert.Equal(t, []StateKind{StateRunning}, d.Stack().Kinds())
}

func TestDriver_FrozenScale_StillTicksWithZeroDelta(t *testing.T) {
	d, w := newTestDriver([]float64{0, 1}, 1.0, Options{Step: 0.5})
	d.Push(ActionEvent(ActionSlowDown))
	d.Frame()

	require.Len(t, w.ticks, 1)
	assert.Equal(t, 0.0, w.ticks[0].Scale)
	assert.Equal(t, 0.0, w.ticks[0].Delta)
}

func TestDriver_TraceRecordsTransitionsAndScales(t *testing.T) {
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelAll})
	d, _ := newTestDriver(scenarioPresets, 4.0, Options{Trace: st})

	d.Push(ActionEvent(ActionSpeedUp))
	d.Frame()
	d.Push(KeyEvent(KeyEscape))
	d.Frame()
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	require.Len(t, st.Scales, 1)
	assert.True(t, st.Scales[0].Saturated())

	require.Len(t, st.Transitions, 2)
	assert.Equal(t, "push", st.Transitions[0].Kind)
	assert.Equal(t, "event", st.Transitions[0].Source)
	assert.Equal(t, []string{"running", "paused"}, st.Transitions[0].To)
	assert.Equal(t, "pop", st.Transitions[1].Kind)
	assert.Equal(t, uint64(3), st.Transitions[1].Frame)
}

func TestNewDriver_NilCollaboratorsPanic(t *testing.T) {
	assert.Panics(t, func() { NewDriver(nil, NewTimeScaleController(nil, 1), Options{}) })
	assert.Panics(t, func() { NewDriver(newFakeWorld(), nil, Options{}) })
}

func TestDriver_TickFollowsStateLiveAtFrameStart(t *testing.T) {
	// GIVEN Running on top
	d, w := newTestDriver(scenarioPresets, 1.0, Options{Step: 0.1})

	// WHEN Escape pushes Paused
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	// THEN that frame still ticks, since Running's update ran
	require.Equal(t, StatePaused, d.Stack().Top().Kind)
	assert.Len(t, w.ticks, 1)

	// WHEN Escape pops Paused
	d.Push(KeyEvent(KeyEscape))
	d.Frame()

	// THEN that frame does not tick, since Paused's update ran
	require.Equal(t, StateRunning, d.Stack().Top().Kind)
	assert.Len(t, w.ticks, 1)

	// AND Running ticks again from the next frame
	d.Frame()
	assert.Len(t, w.ticks, 2)
	assert.Equal(t, uint64(3), w.ticks[1].Frame)
}

func TestDriver_PauseOverlay_BlinksEveryHalfSecond(t *testing.T) {
	tests := []struct {
		name   string
		step   float64
		period int
	}{
		{"10 Hz", 0.1, 5},
		{"60 Hz", 1.0 / 60.0, 30},
		{"default step", 0, 30},
		{"step longer than the half period", 2, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN a freshly pushed pause
			d, _ := newTestDriver(scenarioPresets, 1.0, Options{Step: tc.step})
			d.Push(ActionEvent(ActionPause))
			d.Frame()
			paused := d.Stack().Top()
			require.Equal(t, StatePaused, paused.Kind)
			assert.True(t, paused.OverlayVisible())

			// WHEN the first half period of paused frames runs
			for i := 0; i < tc.period-1; i++ {
				d.Frame()
			}

			// THEN the overlay is still shown, and hides on the next frame
			assert.True(t, paused.OverlayVisible())
			d.Frame()
			assert.False(t, paused.OverlayVisible())

			// AND it shows again after another half period
			for i := 0; i < tc.period; i++ {
				d.Frame()
			}
			assert.True(t, paused.OverlayVisible())
		})
	}
}

func TestDriver_TimedPauseEvent_ResumesFromUpdate(t *testing.T) {
	// GIVEN a trace and a timed pause of three frames
	st := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTransitions})
	d, w := newTestDriver(scenarioPresets, 1.0, Options{Trace: st})
	d.Push(TimedPauseEvent(3))

	// WHEN frames run
	d.Frame()
	require.Equal(t, StatePaused, d.Stack().Top().Kind)
	assert.Equal(t, uint64(3), d.Stack().Top().ResumeAfter)
	d.Frame()
	d.Frame()
	assert.Equal(t, StatePaused, d.Stack().Top().Kind)
	d.Frame()

	// THEN the pause popped itself on its third live frame
	assert.Equal(t, []StateKind{StateRunning}, d.Stack().Kinds())
	assert.Len(t, w.ticks, 1, "only the frame that pushed the pause ticked")
	require.Len(t, st.Transitions, 2)
	assert.Equal(t, "event", st.Transitions[0].Source)
	assert.Equal(t, "update", st.Transitions[1].Source)
	assert.Equal(t, "pop", st.Transitions[1].Kind)
}
