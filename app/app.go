package app

import (
	"fmt"

	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/sparkos/calc"
	calcclient "sparkcalc/sparkos/client/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/services/keypad"
	"sparkcalc/sparkos/services/logger"
	calctask "sparkcalc/sparkos/tasks/calc"
)

type system struct {
	k      *kernel.Kernel
	calcEP kernel.Capability
	errs   chan error
}

// New initializes and starts the calculator with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run starts the calculator and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

// NewWithConfig starts the calculator. The returned step function reports a failure to feed
// cfg.Keys; it never blocks.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	_ = NewWithConfig(h, cfg)
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	installPanicHandler(h)
	bootDiagStart(h)
	bootScreen(h, "kernel")

	k := kernel.New()
	s := &system{k: k, errs: make(chan error, 1)}

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	s.calcEP = k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))

	bootScreen(h, "calc")
	t := calctask.New(h.Display(), s.calcEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend))
	t.SetLocale(cfg.Locale())
	t.SetAngleMode(cfg.Angle())
	t.SetBuild(buildinfo.Short())
	k.AddTask(t)

	kp := keypad.New(h.Input(), s.calcEP.Restrict(kernel.RightSend))
	if cfg.LogKeys {
		kp.LogKeys(logEP.Restrict(kernel.RightSend))
	}
	k.AddTask(kp)

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	bootDone()

	if len(cfg.Keys) > 0 {
		go s.feed(cfg.Keys, s.calcEP.Restrict(kernel.RightSend))
	}
	return s
}

// feed presses a startup key script through the calc client.
func (s *system) feed(keys []calc.Key, calcCap kernel.Capability) {
	ctx := kernel.NewContext(s.k)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	if err := calcclient.Keys(ctx, calcCap, names); err != nil {
		s.errs <- fmt.Errorf("startup keys: %w", err)
	}
}

func (s *system) step() error {
	select {
	case err := <-s.errs:
		return err
	default:
		return nil
	}
}
