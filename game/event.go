package game

import (
	"fmt"
	"strings"
)

// EventKind discriminates the variants carried by Event.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventWindow            // window close request or key press
	EventInput             // named input action (bound by the host)
	EventUI                // widget interaction; currently ignored by every state
)

func (k EventKind) String() string {
	switch k {
	case EventWindow:
		return "window"
	case EventInput:
		return "input"
	case EventUI:
		return "ui"
	default:
		return "unknown"
	}
}

// Key identifies a physical key reported by a window event.
type Key string

const (
	KeyEscape Key = "Escape"
	KeyF1     Key = "F1"
)

// WindowEvent is the payload of an EventWindow event.
type WindowEvent struct {
	CloseRequested bool
	KeyDown        Key // empty when no key was pressed
}

// UIEvent is the payload of an EventUI event.
type UIEvent struct {
	Widget string
	Action string // "click", "hover_start", ...
}

// Event is a single window/input/UI signal delivered to the live state.
// Only the payload matching Kind is meaningful.
type Event struct {
	Kind   EventKind
	Window WindowEvent
	Action string
	UI     UIEvent

	// PauseFrames, set on a pause action, makes the pause resume itself after that many frames.
	PauseFrames uint64
}

// CloseEvent returns a window close request.
func CloseEvent() Event {
	return Event{Kind: EventWindow, Window: WindowEvent{CloseRequested: true}}
}

// KeyEvent returns a key-down window event.
func KeyEvent(key Key) Event {
	return Event{Kind: EventWindow, Window: WindowEvent{KeyDown: key}}
}

// ActionEvent returns a pressed input action.
func ActionEvent(action string) Event {
	return Event{Kind: EventInput, Action: action}
}

// TimedPauseEvent returns a pause action whose pause pops itself after frames live frames.
func TimedPauseEvent(frames uint64) Event {
	return Event{Kind: EventInput, Action: ActionPause, PauseFrames: frames}
}

// WidgetEvent returns a UI widget event.
func WidgetEvent(widget, action string) Event {
	return Event{Kind: EventUI, UI: UIEvent{Widget: widget, Action: action}}
}

func (e Event) String() string {
	switch e.Kind {
	case EventWindow:
		if e.Window.CloseRequested {
			return "window(close)"
		}
		return fmt.Sprintf("window(key=%s)", e.Window.KeyDown)
	case EventInput:
		if e.PauseFrames > 0 {
			return fmt.Sprintf("input(%s/%d)", e.Action, e.PauseFrames)
		}
		return fmt.Sprintf("input(%s)", e.Action)
	case EventUI:
		return fmt.Sprintf("ui(%s:%s)", e.UI.Widget, e.UI.Action)
	default:
		return fmt.Sprintf("event(kind=%d)", int(e.Kind))
	}
}

// EventQueue is a FIFO of events waiting for the next frame.
// The host pushes events as they arrive; the driver drains the whole queue once per frame.
type EventQueue struct {
	queue []Event
}

// Push appends an event to the back of the queue.
func (eq *EventQueue) Push(e Event) {
	eq.queue = append(eq.queue, e)
}

// Len returns the number of queued events.
func (eq *EventQueue) Len() int {
	return len(eq.queue)
}

// Drain removes and returns every queued event in arrival order.
func (eq *EventQueue) Drain() []Event {
	if len(eq.queue) == 0 {
		return nil
	}
	events := eq.queue
	eq.queue = nil
	return events
}

func (eq *EventQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range eq.queue {
		sb.WriteString(e.String())
		if i < len(eq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
