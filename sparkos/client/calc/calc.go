// Package calc wraps the calculator task's IPC requests.
package calc

import (
	"fmt"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// DefaultRetries is how many ticks a request waits for room in the calc queue.
const DefaultRetries = 64

func send(ctx *kernel.Context, calcCap kernel.Capability, kind proto.Kind, payload []byte) error {
	if ctx == nil {
		return fmt.Errorf("calc %s: nil context", kind)
	}
	res := ctx.SendToCapRetry(calcCap, uint16(kind), payload, kernel.Capability{}, DefaultRetries)
	if res != kernel.SendOK {
		return fmt.Errorf("calc %s: %s", kind, res)
	}
	return nil
}

// Key presses one logical key by name ("7", "×", "sin", "=").
func Key(ctx *kernel.Context, calcCap kernel.Capability, key string) error {
	if key == "" || len(key) > proto.MaxCalcKeyBytes {
		return fmt.Errorf("calc key: invalid key %q", key)
	}
	return send(ctx, calcCap, proto.MsgCalcKey, proto.CalcKeyPayload(key))
}

// Keys presses each key in order, stopping at the first failure.
func Keys(ctx *kernel.Context, calcCap kernel.Capability, keys []string) error {
	for _, k := range keys {
		if err := Key(ctx, calcCap, k); err != nil {
			return err
		}
	}
	return nil
}

// SetBuffer overwrites the display buffer. An empty text resets it.
func SetBuffer(ctx *kernel.Context, calcCap kernel.Capability, text string) error {
	if len(text) > kernel.MaxMessageBytes {
		return fmt.Errorf("calc set buffer: %d bytes exceeds %d", len(text), kernel.MaxMessageBytes)
	}
	return send(ctx, calcCap, proto.MsgCalcSetBuffer, proto.CalcSetBufferPayload(text))
}

func Memory(ctx *kernel.Context, calcCap kernel.Capability, op proto.CalcMemOp) error {
	return send(ctx, calcCap, proto.MsgCalcMemory, proto.CalcMemoryPayload(op))
}

func Angle(ctx *kernel.Context, calcCap kernel.Capability, a proto.CalcAngle) error {
	return send(ctx, calcCap, proto.MsgCalcAngle, proto.CalcAnglePayload(a))
}

// SelectHistory copies the result of the index-th newest history entry into the buffer.
func SelectHistory(ctx *kernel.Context, calcCap kernel.Capability, index int) error {
	if index < 0 || index > 0xFFFF {
		return fmt.Errorf("calc history: index %d out of range", index)
	}
	return send(ctx, calcCap, proto.MsgCalcHistory, proto.CalcHistoryPayload(proto.CalcHistorySelect, uint16(index)))
}

func ClearHistory(ctx *kernel.Context, calcCap kernel.Capability) error {
	return send(ctx, calcCap, proto.MsgCalcHistory, proto.CalcHistoryPayload(proto.CalcHistoryClear, 0))
}

// Shutdown asks the calc task to exit.
func Shutdown(ctx *kernel.Context, calcCap kernel.Capability) error {
	return send(ctx, calcCap, proto.MsgAppShutdown, nil)
}

// HistoryOlder moves the history cursor one entry back in time.
func HistoryOlder(ctx *kernel.Context, calcCap kernel.Capability) error {
	return send(ctx, calcCap, proto.MsgCalcHistory, proto.CalcHistoryPayload(proto.CalcHistoryOlder, 0))
}

func HistoryNewer(ctx *kernel.Context, calcCap kernel.Capability) error {
	return send(ctx, calcCap, proto.MsgCalcHistory, proto.CalcHistoryPayload(proto.CalcHistoryNewer, 0))
}
