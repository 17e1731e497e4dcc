//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"sparkcalc/hal"
)

const bootReady = "ready"

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
)

func bootDiagSetStep(msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()
}

func bootDone() { bootDiagSetStep(bootReady) }

// bootDiagStart reports each boot step on the logger and USB CDC until the system is ready.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()

	go func() {
		last := ""
		for {
			bootDiagMu.Lock()
			step := bootDiagStep
			bootDiagMu.Unlock()

			if step != last {
				line := "sparkcalc boot: " + step
				if l != nil {
					l.WriteLineString(line)
				}
				// USB CDC comes up late; mirror there too.
				if usb := machine.USBCDC; usb != nil {
					_, _ = usb.Write([]byte(line + "\r\n"))
				}
				last = step
			}
			if step == bootReady {
				return
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
