//go:build cgo

package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dsf-game/dsf/game"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title    string
	Width    int
	Height   int
	Hz       int
	Bindings Bindings
	// Status returns the text drawn in the corner of the window (optional).
	Status func() string
}

// RunWindow opens a desktop window and calls d.Frame once per ebiten update.
// It blocks until the window closes or the stack quits.
func RunWindow(d *game.Driver, cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 960, 540
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	g := &windowGame{d: d, cfg: cfg}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Hz)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type windowGame struct {
	d    *game.Driver
	cfg  WindowConfig
	keys []ebiten.Key
}

func (g *windowGame) Update() error {
	g.poll()
	if !g.d.Frame() {
		return ebiten.Termination
	}
	return nil
}

// poll queues this frame's window and key events in the order ebiten reports them.
func (g *windowGame) poll() {
	if ebiten.IsWindowBeingClosed() {
		g.d.Push(game.CloseEvent())
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if e, ok := g.cfg.Bindings.Translate(k.String()); ok {
			g.d.Push(e)
		}
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.cfg.Status != nil {
		ebitenutil.DebugPrint(screen, g.cfg.Status())
	}
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
