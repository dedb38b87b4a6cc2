//go:build !cgo

package host

import (
	"errors"

	"github.com/dsf-game/dsf/game"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title    string
	Width    int
	Height   int
	Hz       int
	Bindings Bindings
	Status   func() string
}

func RunWindow(_ *game.Driver, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), use --headless")
}
