package host

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dsf-game/dsf/game"
)

// Script is a list of events injected at given frames of a headless run.
//
//	frames:
//	  - frame: 10
//	    events:
//	      - action: speedUp
//	      - key: Escape
//	  - frame: 20
//	    events:
//	      - pause_for: 30
//	  - frame: 40
//	    events:
//	      - close: true
type Script struct {
	Frames []ScriptFrame `yaml:"frames"`
}

// ScriptFrame lists the events queued right before the given frame runs.
type ScriptFrame struct {
	Frame  uint64        `yaml:"frame"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one event; exactly one field must be set.
type ScriptEvent struct {
	Action string `yaml:"action,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Close  bool   `yaml:"close,omitempty"`
	Widget string `yaml:"widget,omitempty"`
	// PauseFor pauses for that many frames, then resumes without input.
	PauseFor uint64 `yaml:"pause_for,omitempty"`
}

// LoadScript reads and parses a YAML event script.
// Uses strict parsing: unrecognized keys are rejected.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML event script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks frame numbers and that every event sets exactly one field.
func (s *Script) Validate() error {
	for i, f := range s.Frames {
		if f.Frame == 0 {
			return fmt.Errorf("frames[%d]: frame numbers start at 1", i)
		}
		for j, e := range f.Events {
			set := 0
			if e.Action != "" {
				set++
			}
			if e.Key != "" {
				set++
			}
			if e.Close {
				set++
			}
			if e.Widget != "" {
				set++
			}
			if e.PauseFor > 0 {
				set++
			}
			if set != 1 {
				return fmt.Errorf("frames[%d].events[%d]: exactly one of action, key, close, widget, pause_for must be set", i, j)
			}
		}
	}
	return nil
}

// EventsAt returns the events scheduled before the given frame, in script order.
func (s *Script) EventsAt(frame uint64) []game.Event {
	if s == nil {
		return nil
	}
	var events []game.Event
	for _, f := range s.Frames {
		if f.Frame != frame {
			continue
		}
		for _, e := range f.Events {
			events = append(events, e.toEvent())
		}
	}
	return events
}

func (e ScriptEvent) toEvent() game.Event {
	switch {
	case e.Close:
		return game.CloseEvent()
	case e.Key != "":
		return game.KeyEvent(game.Key(e.Key))
	case e.PauseFor > 0:
		return game.TimedPauseEvent(e.PauseFor)
	case e.Widget != "":
		return game.WidgetEvent(e.Widget, "click")
	default:
		return game.ActionEvent(e.Action)
	}
}
