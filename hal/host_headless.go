//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Hz is the frame rate; each frame advances ticks by the elapsed wall time.
	Hz int
	// Frames stops the run after that many frames. Zero runs until ctx is done.
	Frames uint64
	// Log receives the logger output. Nil means stdout.
	Log io.Writer
}

// RunHeadless runs the calculator without opening a window. The step returned by newApp is
// called once per frame after the tick source advances; a non-nil error ends the run.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := newHostHAL(cfg.Log)
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()
	for frame := uint64(1); ; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		h.t.step(1)
		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		if cfg.Frames > 0 && frame >= cfg.Frames {
			return nil
		}
	}
}
