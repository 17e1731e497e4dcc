//go:build tinygo && !baremetal

package hal

import "os"

// New returns a TinyGo-on-host HAL for `tinygo run` targets such as linux and wasm. There is
// no panel or keyboard: the calculator draws into memory and logs to stdout.
func New() HAL {
	return &tinyGoHostHAL{
		logger: &lineLogger{w: os.Stdout, eol: "\n"},
		fb:     newMemFramebuffer(320, 320),
		t:      startTicker(16),
	}
}

type tinyGoHostHAL struct {
	logger *lineLogger
	fb     *memFramebuffer
	t      *tickSource
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return display{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return input{kbd: nullKeyboard{}} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }
