package hal

import (
	"io"
	"sync"
	"time"
)

type display struct {
	fb Framebuffer
}

func (d display) Framebuffer() Framebuffer { return d.fb }

type input struct {
	kbd Keyboard
}

func (in input) Keyboard() Keyboard { return in.kbd }

// nullKeyboard never produces events; the keypad service exits on its nil channel.
type nullKeyboard struct{}

func (nullKeyboard) Events() <-chan KeyEvent { return nil }

// lineLogger writes each line followed by eol. Lines from concurrent tasks never interleave.
type lineLogger struct {
	mu  sync.Mutex
	w   io.Writer
	eol string
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	io.WriteString(l.w, l.eol)
}

func (l *lineLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	io.WriteString(l.w, l.eol)
}

// tickSource publishes a running millisecond count. A reader that falls behind sees gaps in
// the sequence; the producer never blocks.
type tickSource struct {
	ch  chan uint64
	seq uint64
}

func newTickSource(buf int) *tickSource {
	return &tickSource{ch: make(chan uint64, buf)}
}

func (t *tickSource) Ticks() <-chan uint64 { return t.ch }

func (t *tickSource) advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

// startTicker drives a tickSource from a wall-clock ticker, for targets without a frame loop.
func startTicker(buf int) *tickSource {
	t := newTickSource(buf)
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.advance(1)
		}
	}()
	return t
}
