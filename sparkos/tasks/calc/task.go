// Package calc runs the calculator session as a kernel task: it applies requests from the keypad
// and other clients, draws the display, and logs every evaluation.
package calc

import (
	"errors"
	"fmt"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Task owns one calc.Session. Every request is handled to completion before the next is read.
type Task struct {
	disp   hal.Display
	ep     kernel.Capability
	logCap kernel.Capability
	obsCap kernel.Capability

	angle  calc.AngleMode
	locale calc.Locale
	build  string

	session *calc.Session
	state   calc.State
	dirty   bool
	// cursor is the selected history entry, newest first; -1 when none is selected.
	cursor int

	r *renderer
}

// New returns a task receiving requests on ep. disp and logCap may be zero.
func New(disp hal.Display, ep, logCap kernel.Capability) *Task {
	return &Task{
		disp:   disp,
		ep:     ep,
		logCap: logCap,
		angle:  calc.Degrees,
		locale: calc.DefaultLocale,
		cursor: -1,
	}
}

// SetLocale controls the decimal separator and error text shown on screen.
func (t *Task) SetLocale(loc calc.Locale) { t.locale = loc }

// SetAngleMode sets the initial angle mode.
func (t *Task) SetAngleMode(m calc.AngleMode) { t.angle = m }

// SetBuild sets the version string drawn in the header.
func (t *Task) SetBuild(s string) { t.build = s }

// Observe publishes a MsgCalcState summary to obsCap after every change.
func (t *Task) Observe(obsCap kernel.Capability) { t.obsCap = obsCap }

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}

	if t.disp != nil {
		t.r = newRenderer(t.disp.Framebuffer(), t.locale, t.build)
	}
	t.session = calc.NewSession(calc.RenderFunc(t.onState))
	t.session.SetAngleMode(t.angle)
	t.flush(ctx)

	for msg := range ch {
		if proto.Kind(msg.Kind) == proto.MsgAppShutdown {
			return
		}
		t.handle(ctx, msg)
		t.flush(ctx)
	}
}

func (t *Task) onState(st calc.State) {
	t.state = st
	t.dirty = true
}

// flush draws and publishes the latest state once per handled request.
func (t *Task) flush(ctx *kernel.Context) {
	if !t.dirty {
		return
	}
	t.dirty = false
	if t.r != nil {
		t.r.draw(t.state, t.cursor)
	}
	if t.obsCap.Valid() {
		angle := proto.CalcAngleDegrees
		if t.state.Angle == calc.Radians {
			angle = proto.CalcAngleRadians
		}
		payload := proto.CalcStatePayload(angle, t.state.Buffer, t.state.Expr, kernel.MaxMessageBytes)
		_ = ctx.SendToCapResult(t.obsCap, uint16(proto.MsgCalcState), payload, kernel.Capability{})
	}
}

var errBadRequest = errors.New("bad request")

func (t *Task) handle(ctx *kernel.Context, msg kernel.Message) {
	kind := proto.Kind(msg.Kind)
	payload := msg.Payload()

	var err error
	switch kind {
	case proto.MsgCalcKey:
		err = t.handleKey(ctx, payload)
	case proto.MsgCalcSetBuffer:
		text, ok := proto.DecodeCalcSetBufferPayload(payload)
		if !ok {
			err = errBadRequest
			break
		}
		t.cursor = -1
		t.session.SetBuffer(text)
	case proto.MsgCalcMemory:
		err = t.handleMemory(ctx, payload)
	case proto.MsgCalcAngle:
		err = t.handleAngle(payload)
	case proto.MsgCalcHistory:
		err = t.handleHistory(payload)
	default:
		err = fmt.Errorf("%w: unexpected kind %s", errBadRequest, kind)
	}
	if err == nil {
		return
	}

	code := proto.ErrBadMessage
	if errors.Is(err, errNoEntry) {
		code = proto.ErrNotFound
	}
	logger.Logf(ctx, t.logCap, "calc: %s: %v", kind, err)
	if msg.Cap.Valid() {
		_ = ctx.SendToCapResult(msg.Cap, uint16(proto.MsgError), proto.ErrorPayload(code, kind, payload), kernel.Capability{})
	}
}

func (t *Task) handleKey(ctx *kernel.Context, payload []byte) error {
	name, ok := proto.DecodeCalcKeyPayload(payload)
	if !ok {
		return errBadRequest
	}
	key, ok := calc.ParseKey(name)
	if !ok {
		return fmt.Errorf("%w: unknown key %q", errBadRequest, name)
	}
	t.cursor = -1
	ev := t.session.Press(key)
	if !ev.Evaluated {
		return nil
	}
	if ev.Err != nil {
		logger.Logf(ctx, t.logCap, "calc: %s: error: %v", ev.Input, ev.Err)
		return nil
	}
	logger.Logf(ctx, t.logCap, "calc: %s = %s", ev.Input, ev.Output)
	return nil
}

func (t *Task) handleMemory(ctx *kernel.Context, payload []byte) error {
	op, ok := proto.DecodeCalcMemoryPayload(payload)
	if !ok {
		return errBadRequest
	}
	var err error
	switch op {
	case proto.CalcMemClear:
		t.session.MemoryClear()
	case proto.CalcMemRecall:
		t.cursor = -1
		t.session.MemoryRecall()
	case proto.CalcMemAdd:
		err = t.session.MemoryAdd()
	case proto.CalcMemSub:
		err = t.session.MemorySubtract()
	}
	if err != nil {
		logger.Logf(ctx, t.logCap, "calc: %s ignored: %v", op, err)
	}
	return nil
}

func (t *Task) handleAngle(payload []byte) error {
	a, ok := proto.DecodeCalcAnglePayload(payload)
	if !ok {
		return errBadRequest
	}
	switch a {
	case proto.CalcAngleDegrees:
		t.session.SetAngleMode(calc.Degrees)
	case proto.CalcAngleRadians:
		t.session.SetAngleMode(calc.Radians)
	case proto.CalcAngleToggle:
		t.session.ToggleAngleMode()
	}
	return nil
}

var errNoEntry = errors.New("no such history entry")

func (t *Task) handleHistory(payload []byte) error {
	op, index, ok := proto.DecodeCalcHistoryPayload(payload)
	if !ok {
		return errBadRequest
	}
	switch op {
	case proto.CalcHistorySelect:
		return t.selectHistory(int(index))
	case proto.CalcHistoryClear:
		t.cursor = -1
		t.session.ClearHistory()
	case proto.CalcHistoryOlder:
		if t.cursor+1 < len(t.state.History) {
			return t.selectHistory(t.cursor + 1)
		}
	case proto.CalcHistoryNewer:
		if t.cursor > 0 {
			return t.selectHistory(t.cursor - 1)
		}
		if t.cursor == 0 {
			t.cursor = -1
			t.dirty = true
		}
	}
	return nil
}

func (t *Task) selectHistory(i int) error {
	if !t.session.SelectHistory(i) {
		return fmt.Errorf("%w: %d", errNoEntry, i)
	}
	t.cursor = i
	return nil
}
