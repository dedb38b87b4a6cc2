package game

import "github.com/sirupsen/logrus"

// DefaultStep is the simulated seconds per tick at scale 1.0.
const DefaultStep = 1.0 / 60.0

// Driver runs one frame per call of Frame. It owns the time scale, the state stack and
// the event queue; the host owns the loop that calls Frame.
type Driver struct {
	ctx    *Context
	stack  *StateStack
	events EventQueue
	step   float64
	ticks  uint64
}

// NewDriver creates a driver with Running as the baseline state.
func NewDriver(world Simulation, ts *TimeScaleController, opts Options) *Driver {
	if world == nil {
		panic("NewDriver: world must not be nil")
	}
	if ts == nil {
		panic("NewDriver: time scale controller must not be nil")
	}
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	ctx := &Context{
		World:     world,
		TimeScale: ts,
		Options:   opts,
	}
	return &Driver{
		ctx:   ctx,
		stack: NewStateStack(ctx, NewRunning()),
		step:  opts.Step,
	}
}

// Push queues an event for the next frame.
func (d *Driver) Push(e Event) {
	d.events.Push(e)
}

// Stack exposes the state stack for inspection.
func (d *Driver) Stack() *StateStack {
	return d.stack
}

// TimeScale returns the controller owned by the driver.
func (d *Driver) TimeScale() *TimeScaleController {
	return d.ctx.TimeScale
}

// Frames returns how many frames have been processed.
func (d *Driver) Frames() uint64 {
	return d.ctx.Frame
}

// Ticks returns how many simulation ticks have been issued.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Done reports whether the stack reached Quit.
func (d *Driver) Done() bool {
	return d.stack.Terminal()
}

// Frame processes one frame:
//  1. drain queued events and deliver them in arrival order to the live state; the first
//     non-None request ends delivery and the rest of the batch is dropped
//  2. run the live state's update hook
//  3. apply one transition, the event-sourced one taking priority over the update's
//  4. advance the simulation by one scaled tick if the frame's live state simulates
//
// The live state is the one that was on top when the frame began and whose update hook
// ran, not the top after the transition. The frame that pushes Paused over Running still
// ticks; the frame on which Paused pops does not, so Running resumes ticking one frame later.
//
// It returns false once the stack is terminal; hosts stop calling it then.
func (d *Driver) Frame() bool {
	if d.stack.Terminal() {
		return false
	}
	d.ctx.Frame++
	live := d.stack.Top()

	var fromEvent Trans
	events := d.events.Drain()
	for i, e := range events {
		logrus.Debugf("[frame %06d] deliver %s to %s", d.ctx.Frame, e, live.Kind)
		fromEvent = live.handleEvent(d.ctx, e)
		if !fromEvent.IsNone() {
			if rest := len(events) - i - 1; rest > 0 {
				logrus.Debugf("[frame %06d] %s requested, dropping %d queued event(s)", d.ctx.Frame, fromEvent, rest)
			}
			break
		}
	}

	fromUpdate := live.update(d.ctx)

	t, source := fromEvent, "event"
	if t.IsNone() {
		t, source = fromUpdate, "update"
	} else if !fromUpdate.IsNone() {
		logrus.Debugf("[frame %06d] update requested %s, superseded by event %s", d.ctx.Frame, fromUpdate, fromEvent)
	}
	if !t.IsNone() {
		before := d.stack.Kinds()
		d.stack.Apply(d.ctx, t)
		logrus.Infof("[frame %06d] %s %s: %v -> %v", d.ctx.Frame, source, t, before, d.stack.Kinds())
		d.ctx.recordTransition(t, source, before, d.stack.Kinds())
	}

	if !d.stack.Terminal() && live.Kind.Simulating() {
		scale := d.ctx.TimeScale.Scale()
		d.ctx.World.Advance(Tick{Frame: d.ctx.Frame, Scale: scale, Delta: d.step * scale})
		d.ticks++
	}
	return !d.stack.Terminal()
}
