package game

import "fmt"

// TransKind discriminates a transition request.
type TransKind int

const (
	TransNone    TransKind = iota // keep the stack as is
	TransPush                     // suspend the top and start a new state above it
	TransPop                      // stop the top and resume the state below
	TransSwitch                   // stop the top and start a new state in its place
	TransReplace                  // stop every state and start a new one as the only entry
	TransQuit                     // mark the stack terminal
)

var transKindNames = map[TransKind]string{
	TransNone:    "none",
	TransPush:    "push",
	TransPop:     "pop",
	TransSwitch:  "switch",
	TransReplace: "replace",
	TransQuit:    "quit",
}

func (k TransKind) String() string {
	if name, ok := transKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("trans(%d)", int(k))
}

// Trans is a request describing how the state stack should change at the next frame boundary.
// State is set for Push, Switch and Replace only.
type Trans struct {
	Kind  TransKind
	State *State
}

// None requests no change.
func None() Trans { return Trans{Kind: TransNone} }

// Push requests s to be started on top of the current state.
func Push(s *State) Trans { return Trans{Kind: TransPush, State: s} }

// Pop requests the current state to be stopped.
func Pop() Trans { return Trans{Kind: TransPop} }

// Switch requests the current state to be replaced by s.
func Switch(s *State) Trans { return Trans{Kind: TransSwitch, State: s} }

// Replace requests the whole stack to be replaced by s.
func Replace(s *State) Trans { return Trans{Kind: TransReplace, State: s} }

// Quit requests the stack to become terminal.
func Quit() Trans { return Trans{Kind: TransQuit} }

// IsNone reports whether t leaves the stack unchanged.
func (t Trans) IsNone() bool {
	return t.Kind == TransNone
}

func (t Trans) String() string {
	if t.State != nil {
		return fmt.Sprintf("%s(%s)", t.Kind, t.State.Kind)
	}
	return t.Kind.String()
}
