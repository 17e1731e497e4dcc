package calc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	calcclient "sparkcalc/sparkos/client/calc"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

type testDisplay struct{ fb *testFB }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type harness struct {
	t      *testing.T
	k      *kernel.Kernel
	ctx    *kernel.Context
	calc   kernel.Capability
	obs    kernel.Capability
	reply  kernel.Capability
	fb     *testFB
	states <-chan kernel.Message
}

type snapshot struct {
	angle  proto.CalcAngle
	buffer string
	expr   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	k := kernel.New()
	h := &harness{
		t:     t,
		k:     k,
		ctx:   kernel.NewContext(k),
		calc:  k.NewEndpoint(kernel.RightSend | kernel.RightRecv),
		obs:   k.NewEndpoint(kernel.RightSend | kernel.RightRecv),
		reply: k.NewEndpoint(kernel.RightSend | kernel.RightRecv),
		fb:    &testFB{w: 320, h: 320, buf: make([]byte, 320*320*2)},
	}
	ch, ok := h.ctx.RecvChan(h.obs)
	require.True(t, ok)
	h.states = ch

	task := New(testDisplay{fb: h.fb}, h.calc.Restrict(kernel.RightRecv), kernel.Capability{})
	task.SetBuild("test")
	task.Observe(h.obs.Restrict(kernel.RightSend))
	k.AddTask(task)

	t.Cleanup(func() {
		_ = calcclient.Shutdown(h.ctx, h.calc)
		k.Wait()
	})

	first := h.next()
	require.Equal(t, calc.Placeholder, first.buffer)
	return h
}

func (h *harness) next() snapshot {
	h.t.Helper()
	select {
	case msg := <-h.states:
		require.Equal(h.t, proto.MsgCalcState, proto.Kind(msg.Kind))
		angle, buf, expr, ok := proto.DecodeCalcStatePayload(msg.Payload())
		require.True(h.t, ok)
		return snapshot{angle: angle, buffer: buf, expr: expr}
	case <-time.After(2 * time.Second):
		h.t.Fatal("timed out waiting for state")
	}
	return snapshot{}
}

func (h *harness) keys(keys ...string) snapshot {
	h.t.Helper()
	var st snapshot
	for _, k := range keys {
		require.NoError(h.t, calcclient.Key(h.ctx, h.calc, k))
		st = h.next()
	}
	return st
}

func (h *harness) expectError(code proto.ErrCode, ref proto.Kind) {
	h.t.Helper()
	ch, ok := h.ctx.RecvChan(h.reply)
	require.True(h.t, ok)
	select {
	case msg := <-ch:
		require.Equal(h.t, proto.MsgError, proto.Kind(msg.Kind))
		gotCode, gotRef, _, ok := proto.DecodeErrorPayload(msg.Payload())
		require.True(h.t, ok)
		assert.Equal(h.t, code, gotCode)
		assert.Equal(h.t, ref, gotRef)
	case <-time.After(2 * time.Second):
		h.t.Fatal("timed out waiting for error reply")
	}
}

func TestTaskEvaluates(t *testing.T) {
	h := newHarness(t)

	st := h.keys("2", "+")
	assert.Equal(t, "2 +", st.expr)

	st = h.keys("3", "=")
	assert.Equal(t, "5", st.buffer)
	assert.Empty(t, st.expr)
	assert.Greater(t, h.fb.presents, 0)
}

func TestTaskAngleMode(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, calcclient.Angle(h.ctx, h.calc, proto.CalcAngleToggle))
	st := h.next()
	assert.Equal(t, proto.CalcAngleRadians, st.angle)

	st = h.keys("0", "cos")
	assert.Equal(t, "1", st.buffer)
}

func TestTaskRejectsUnknownKey(t *testing.T) {
	h := newHarness(t)

	res := h.ctx.SendToCapResult(h.calc, uint16(proto.MsgCalcKey), proto.CalcKeyPayload("nope"), h.reply.Restrict(kernel.RightSend))
	require.Equal(t, kernel.SendOK, res)
	h.expectError(proto.ErrBadMessage, proto.MsgCalcKey)

	// The session is untouched and keeps working.
	st := h.keys("7")
	assert.Equal(t, "7", st.buffer)
}

func TestTaskMemory(t *testing.T) {
	h := newHarness(t)

	h.keys("9")
	require.NoError(t, calcclient.Memory(h.ctx, h.calc, proto.CalcMemAdd))
	h.next()
	h.keys("C")
	require.NoError(t, calcclient.Memory(h.ctx, h.calc, proto.CalcMemRecall))
	st := h.next()
	assert.Equal(t, "9", st.buffer)

	require.NoError(t, calcclient.Memory(h.ctx, h.calc, proto.CalcMemClear))
	h.next()
	require.NoError(t, calcclient.Memory(h.ctx, h.calc, proto.CalcMemRecall))
	st = h.next()
	assert.Equal(t, "0", st.buffer)
}

func TestTaskHistoryCursor(t *testing.T) {
	h := newHarness(t)

	h.keys("2", "×", "3", "=")
	h.keys("C", "1", "+", "1", "=")

	require.NoError(t, calcclient.HistoryOlder(h.ctx, h.calc))
	assert.Equal(t, "2", h.next().buffer)
	require.NoError(t, calcclient.HistoryOlder(h.ctx, h.calc))
	assert.Equal(t, "6", h.next().buffer)
	require.NoError(t, calcclient.HistoryNewer(h.ctx, h.calc))
	assert.Equal(t, "2", h.next().buffer)

	require.NoError(t, calcclient.SetBuffer(h.ctx, h.calc, "42"))
	assert.Equal(t, "42", h.next().buffer)

	payload := proto.CalcHistoryPayload(proto.CalcHistorySelect, 7)
	res := h.ctx.SendToCapResult(h.calc, uint16(proto.MsgCalcHistory), payload, h.reply.Restrict(kernel.RightSend))
	require.Equal(t, kernel.SendOK, res)
	h.expectError(proto.ErrNotFound, proto.MsgCalcHistory)
}

func TestTaskErrorBuffer(t *testing.T) {
	h := newHarness(t)

	st := h.keys("1", "÷", "0", "=")
	assert.Equal(t, calc.ErrorText, st.buffer)

	st = h.keys("+")
	assert.Equal(t, "0 +", st.expr)
}

func TestTaskPublishesLongBuffer(t *testing.T) {
	h := newHarness(t)

	long := strings.Repeat("9", 127)
	require.NoError(t, calcclient.SetBuffer(h.ctx, h.calc, long))
	st := h.next()
	assert.Equal(t, long[1:], st.buffer)
	assert.Empty(t, st.expr)
}
