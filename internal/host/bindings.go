// Package host runs a game.Driver: either headless on a ticker, or in an ebiten window.
// Hosts own the loop and feed window/input events to the driver; the driver never blocks.
package host

import (
	"sort"

	"github.com/dsf-game/dsf/game"
)

// Bindings maps key names (as reported by the window backend) to input actions.
// Escape and F1 are window keys handled by the states themselves and cannot be rebound.
type Bindings map[string]string

// Translate turns a pressed key into the event delivered to the driver.
func (b Bindings) Translate(key string) (game.Event, bool) {
	switch game.Key(key) {
	case game.KeyEscape, game.KeyF1:
		return game.KeyEvent(game.Key(key)), true
	}
	if action, ok := b[key]; ok {
		return game.ActionEvent(action), true
	}
	return game.Event{}, false
}

// Keys returns the bound key names, sorted.
func (b Bindings) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
