// Package keypad turns keyboard events into calculator requests.
package keypad

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// request is one message bound for the calc task.
type request struct {
	kind    proto.Kind
	payload []byte
}

func (r request) String() string {
	switch r.kind {
	case proto.MsgCalcKey:
		return string(r.payload)
	case proto.MsgCalcMemory:
		if op, ok := proto.DecodeCalcMemoryPayload(r.payload); ok {
			return op.String()
		}
	}
	return r.kind.String()
}

type Service struct {
	in      hal.Input
	calcCap kernel.Capability
	logCap  kernel.Capability
	logKeys bool

	events  <-chan hal.KeyEvent
	pending []request

	heldCode hal.KeyCode
	held     *request

	nextRepeatTick uint64
}

// New sends requests for every mapped key to calcCap.
func New(in hal.Input, calcCap kernel.Capability) *Service {
	return &Service{in: in, calcCap: calcCap}
}

// LogKeys echoes every mapped key press to the logger service.
func (s *Service) LogKeys(logCap kernel.Capability) {
	s.logCap = logCap
	s.logKeys = logCap.Valid()
}

func (s *Service) Run(ctx *kernel.Context) {
	if ctx == nil || s.in == nil {
		return
	}
	kbd := s.in.Keyboard()
	if kbd == nil {
		return
	}
	s.events = kbd.Events()
	if s.events == nil {
		return
	}

	done := make(chan struct{})
	defer close(done)
	tickCh := ctx.TickChan(done)

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			s.handleKeyEvent(ctx, ev)
		case tick := <-tickCh:
			s.handleRepeat(tick)
			s.flush(ctx)
		}
	}
}

func (s *Service) handleKeyEvent(ctx *kernel.Context, ev hal.KeyEvent) {
	if !ev.Press {
		if s.held != nil && ev.Code == s.heldCode {
			s.held = nil
			s.nextRepeatTick = 0
		}
		return
	}

	req, ok := requestFor(ev)
	if !ok {
		return
	}
	if s.logKeys {
		logger.Logf(ctx, s.logCap, "keypad: %s", req)
	}
	s.enqueue(req)
	s.flush(ctx)

	if !repeatableKey(ev) {
		return
	}
	s.heldCode = ev.Code
	s.held = &req
	s.nextRepeatTick = ctx.NowTick() + repeatDelayTicks
}

func (s *Service) handleRepeat(tick uint64) {
	if s.held == nil || tick < s.nextRepeatTick {
		return
	}
	s.enqueue(*s.held)
	s.nextRepeatTick = tick + repeatRateTicks
}

func (s *Service) enqueue(req request) {
	if len(s.pending) >= maxPending {
		return
	}
	s.pending = append(s.pending, req)
}

func (s *Service) flush(ctx *kernel.Context) {
	if !s.calcCap.Valid() {
		s.pending = s.pending[:0]
		return
	}
	for len(s.pending) > 0 {
		req := s.pending[0]
		res := ctx.SendToCapResult(s.calcCap, uint16(req.kind), req.payload, kernel.Capability{})
		switch res {
		case kernel.SendOK:
			s.pending = s.pending[1:]
		case kernel.SendErrQueueFull:
			return
		default:
			s.pending = s.pending[:0]
			return
		}
	}
}

const (
	// Ticks are 1ms on host and TinyGo.
	repeatDelayTicks = 350
	repeatRateTicks  = 60

	maxPending = 32
)

func repeatableKey(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyBackspace, hal.KeyUp, hal.KeyDown:
		return true
	default:
		return false
	}
}
