//go:build !tinygo

package hal

import (
	"io"
	"os"
)

// HostWidth and HostHeight match the PicoCalc panel.
const (
	HostWidth  = 320
	HostHeight = 320
)

type hostHAL struct {
	logger *lineLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation logging to stdout.
func New() HAL {
	return newHostHAL(os.Stdout)
}

func newHostHAL(logOut io.Writer) *hostHAL {
	return &hostHAL{
		logger: &lineLogger{w: logOut, eol: "\n"},
		fb:     newHostFramebuffer(HostWidth, HostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return display{fb: h.fb} }
func (h *hostHAL) Input() Input     { return input{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }
