package game

import "github.com/sirupsen/logrus"

// StateStack is the LIFO of active states. The top entry is live; every other entry is
// suspended and receives neither events nor updates.
//
// The stack never becomes empty: popping the last entry marks it terminal instead.
// Once terminal, every further request is ignored and no hook runs.
type StateStack struct {
	states   []*State
	terminal bool
}

// NewStateStack creates a stack holding initial and runs its start hook.
func NewStateStack(ctx *Context, initial *State) *StateStack {
	if initial == nil {
		panic("NewStateStack: initial state must not be nil")
	}
	st := &StateStack{}
	initial.start(ctx)
	st.states = append(st.states, initial)
	return st
}

// Top returns the live state, or nil once the stack is terminal.
func (st *StateStack) Top() *State {
	if st.terminal || len(st.states) == 0 {
		return nil
	}
	return st.states[len(st.states)-1]
}

// Len returns the number of entries.
func (st *StateStack) Len() int {
	return len(st.states)
}

// Terminal reports whether Quit has been applied.
func (st *StateStack) Terminal() bool {
	return st.terminal
}

// Kinds returns the kinds of all entries, bottom first.
func (st *StateStack) Kinds() []StateKind {
	kinds := make([]StateKind, len(st.states))
	for i, s := range st.states {
		kinds[i] = s.Kind
	}
	return kinds
}

// Apply performs a transition request. It is called at most once per frame, after
// event delivery and the update hook have returned.
func (st *StateStack) Apply(ctx *Context, t Trans) {
	if st.terminal || t.IsNone() {
		return
	}
	switch t.Kind {
	case TransPush:
		st.push(ctx, t.State)
	case TransPop:
		st.pop(ctx)
	case TransSwitch:
		st.switchTo(ctx, t.State)
	case TransReplace:
		st.replace(ctx, t.State)
	case TransQuit:
		st.quit(ctx)
	default:
		logrus.Warnf("[frame %06d] ignoring unknown transition %s", ctx.Frame, t)
	}
}

func (st *StateStack) push(ctx *Context, s *State) {
	if s == nil {
		panic("StateStack.push: state must not be nil")
	}
	st.states[len(st.states)-1].pause(ctx)
	s.start(ctx)
	st.states = append(st.states, s)
}

func (st *StateStack) pop(ctx *Context) {
	st.removeTop(ctx)
	if len(st.states) == 0 {
		logrus.Infof("[frame %06d] popped the last state, quitting", ctx.Frame)
		st.terminal = true
		return
	}
	st.states[len(st.states)-1].resume(ctx)
}

func (st *StateStack) switchTo(ctx *Context, s *State) {
	if s == nil {
		panic("StateStack.switchTo: state must not be nil")
	}
	st.removeTop(ctx)
	s.start(ctx)
	st.states = append(st.states, s)
}

func (st *StateStack) replace(ctx *Context, s *State) {
	if s == nil {
		panic("StateStack.replace: state must not be nil")
	}
	for len(st.states) > 0 {
		st.removeTop(ctx)
	}
	s.start(ctx)
	st.states = append(st.states, s)
}

func (st *StateStack) quit(ctx *Context) {
	logrus.Infof("[frame %06d] quit requested with %d state(s) on the stack", ctx.Frame, len(st.states))
	st.terminal = true
}

func (st *StateStack) removeTop(ctx *Context) {
	n := len(st.states)
	st.states[n-1].stop(ctx)
	st.states[n-1] = nil
	st.states = st.states[:n-1]
}
