package calc

import (
	"testing"

	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

func TestKeyDeliversPayload(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := kernel.NewContext(k)

	if err := Key(ctx, ep.Restrict(kernel.RightSend), "√"); err != nil {
		t.Fatalf("Key: %v", err)
	}
	msg, ok := ctx.TryRecv(ep)
	if !ok {
		t.Fatal("no message delivered")
	}
	if proto.Kind(msg.Kind) != proto.MsgCalcKey {
		t.Fatalf("kind=%s", proto.Kind(msg.Kind))
	}
	if key, ok := proto.DecodeCalcKeyPayload(msg.Payload()); !ok || key != "√" {
		t.Fatalf("key=%q ok=%v", key, ok)
	}
}

func TestKeyRejectsInvalid(t *testing.T) {
	ctx := kernel.NewContext(kernel.New())
	if err := Key(ctx, kernel.Capability{}, ""); err == nil {
		t.Fatal("expected empty key to fail")
	}
	if err := Key(nil, kernel.Capability{}, "1"); err == nil {
		t.Fatal("expected nil context to fail")
	}
}

func TestHistoryRange(t *testing.T) {
	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	ctx := kernel.NewContext(k)

	if err := SelectHistory(ctx, ep, -1); err == nil {
		t.Fatal("expected negative index to fail")
	}
	if err := SelectHistory(ctx, ep, 3); err != nil {
		t.Fatalf("SelectHistory: %v", err)
	}
	msg, _ := ctx.TryRecv(ep)
	op, idx, ok := proto.DecodeCalcHistoryPayload(msg.Payload())
	if !ok || op != proto.CalcHistorySelect || idx != 3 {
		t.Fatalf("op=%d idx=%d ok=%v", op, idx, ok)
	}
}
