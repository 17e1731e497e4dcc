package kernel

import (
	"testing"
	"time"
)

func TestContextRecvClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	ch, ok := ctx.RecvChan(cap.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}

	k.CloseEndpoint(cap)

	if _, ok := ctx.Recv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected Recv to fail after endpoint close")
	}
	if _, ok := ctx.TryRecv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected TryRecv to fail after endpoint close")
	}
}

func TestContextSendClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	k.CloseEndpoint(cap)
	k.CloseEndpoint(cap)

	res := ctx.SendToCapResult(cap.Restrict(RightSend), 1, []byte("x"), Capability{})
	if res != SendErrNoEndpoint {
		t.Fatalf("expected SendErrNoEndpoint, got %s", res)
	}
}

func TestContextRights(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	ctx := NewContext(k)

	if _, ok := ctx.RecvChan(cap.Restrict(RightSend)); ok {
		t.Fatal("expected RecvChan to require RightRecv")
	}
	if res := ctx.SendToCapResult(cap.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}
	if res := ctx.SendToCapResult(Capability{}, 1, nil, Capability{}); res != SendErrInvalidToCap {
		t.Fatalf("expected SendErrInvalidToCap, got %s", res)
	}
	if res := ctx.SendCapResult(Capability{}, cap, 1, nil, Capability{}); res != SendErrInvalidFromCap {
		t.Fatalf("expected SendErrInvalidFromCap, got %s", res)
	}
	big := make([]byte, MaxMessageBytes+1)
	if res := ctx.SendToCapResult(cap, 1, big, Capability{}); res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
	if cap.Restrict(0).Valid() {
		t.Fatal("expected empty restriction to be invalid")
	}
}

func TestContextSendDeliversPayloadAndCap(t *testing.T) {
	k := New()
	from := k.NewEndpoint(RightSend | RightRecv)
	to := k.NewEndpoint(RightSend | RightRecv)
	xfer := from.Restrict(RightSend)
	ctx := NewContext(k)

	if !ctx.SendCap(from, to.Restrict(RightSend), 7, []byte("hello"), xfer) {
		t.Fatal("expected send to succeed")
	}
	msg, ok := ctx.TryRecv(to.Restrict(RightRecv))
	if !ok {
		t.Fatal("expected message")
	}
	if msg.Kind != 7 || string(msg.Payload()) != "hello" {
		t.Fatalf("unexpected message kind=%d payload=%q", msg.Kind, msg.Payload())
	}
	if msg.From != from.ep || msg.To != to.ep {
		t.Fatalf("unexpected route %d -> %d", msg.From, msg.To)
	}
	if msg.Cap != xfer {
		t.Fatalf("expected transferred capability %s, got %s", xfer, msg.Cap)
	}
}

type funcTask func(*Context)

func (f funcTask) Run(ctx *Context) { f(ctx) }

func TestAddTaskRunsConcurrently(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	got := make(chan string, 1)

	k.AddTask(funcTask(func(ctx *Context) {
		msg, ok := ctx.Recv(ep.Restrict(RightRecv))
		if !ok {
			got <- "closed"
			return
		}
		got <- string(msg.Payload())
	}))
	k.AddTask(funcTask(func(ctx *Context) {
		ctx.SendTo(ep.Restrict(RightSend), 1, []byte("ping"))
	}))

	select {
	case s := <-got:
		if s != "ping" {
			t.Fatalf("expected ping, got %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task")
	}
	k.Wait()
}

func TestWaitTick(t *testing.T) {
	k := New()
	ctx := NewContext(k)

	done := make(chan uint64, 1)
	go func() { done <- ctx.WaitTick(0) }()

	k.TickTo(3)
	k.TickTo(2)
	select {
	case v := <-done:
		if v != 3 {
			t.Fatalf("expected tick 3, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
	}
	if ctx.NowTick() != 3 {
		t.Fatalf("expected NowTick 3, got %d", ctx.NowTick())
	}
}
