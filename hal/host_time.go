//go:build !tinygo

package hal

import "time"

// hostTime converts frame callbacks into millisecond ticks using the wall clock, so key repeat
// timing does not depend on the frame rate.
type hostTime struct {
	*tickSource

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{tickSource: newTickSource(1024)}
}

// step is called once per frame. The first frame advances n ticks; later frames advance by
// the elapsed wall time.
func (t *hostTime) step(n uint64) {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.advance(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now
	if ticks := uint64(t.acc / time.Millisecond); ticks > 0 {
		t.acc %= time.Millisecond
		t.advance(ticks)
	}
}
