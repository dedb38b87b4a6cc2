package host

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dsf-game/dsf/game"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int     // frames per second; 0 means 60
	Frames uint64  // stop after N frames (0 = run until quit)
	Script *Script // events injected at given frames (optional)
	// Unpaced runs frames back to back instead of waiting on the ticker.
	Unpaced bool
}

// RunHeadless drives d without opening a window. It returns nil when the stack quits or
// the frame limit is reached, and ctx.Err() when ctx is cancelled first.
func RunHeadless(ctx context.Context, d *game.Driver, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	var tick <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(period)
		defer t.Stop()
		tick = t.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		next := d.Frames() + 1
		for _, e := range cfg.Script.EventsAt(next) {
			d.Push(e)
		}
		if !d.Frame() {
			logrus.Infof("[frame %06d] stack quit, stopping headless run", d.Frames())
			return nil
		}
		if cfg.Frames > 0 && d.Frames() >= cfg.Frames {
			logrus.Infof("[frame %06d] frame limit reached", d.Frames())
			return nil
		}
	}
}
