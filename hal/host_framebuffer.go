//go:build !tinygo

package hal

import "sync"

// hostFramebuffer guards clears against the window thread taking a snapshot.
type hostFramebuffer struct {
	mu sync.Mutex
	*memFramebuffer
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{memFramebuffer: newMemFramebuffer(width, height)}
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memFramebuffer.ClearRGB(r, g, b)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
