package app

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
)

type lineLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *lineLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *lineLogger) contains(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

type tickSource struct{ ch chan uint64 }

func (t tickSource) Ticks() <-chan uint64 { return t.ch }

type testHAL struct {
	log   *lineLogger
	ticks tickSource
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return nil }
func (h *testHAL) Input() hal.Input     { return nil }
func (h *testHAL) Time() hal.Time       { return h.ticks }

func TestStartupKeysAreEvaluatedAndLogged(t *testing.T) {
	h := &testHAL{log: &lineLogger{}, ticks: tickSource{ch: make(chan uint64)}}
	done := make(chan struct{})
	defer close(done)
	go func() {
		var seq uint64
		for {
			select {
			case <-done:
				return
			case <-time.After(time.Millisecond):
				seq++
				select {
				case h.ticks.ch <- seq:
				case <-done:
					return
				}
			}
		}
	}()

	cfg := DefaultConfig()
	cfg.Keys = []calc.Key{"1", "2", calc.KeyMul, "3", calc.KeyEquals}
	step := NewWithConfig(h, cfg)

	require.Eventually(t, func() bool {
		return h.log.contains("calc: 12 × 3 = 36")
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, step())
}
