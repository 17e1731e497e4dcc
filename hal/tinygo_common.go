//go:build tinygo && baremetal

package hal

import "machine"

// newUARTLogger configures UART0 on GP0 (TX) / GP1 (RX), 115200 8N1, the serial console on
// both the Pico and the PicoCalc carrier.
func newUARTLogger() *lineLogger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return &lineLogger{w: uart, eol: "\r\n"}
}

// boardHAL is the HAL shape shared by the bare-metal targets.
type boardHAL struct {
	logger Logger
	fb     Framebuffer
	kbd    Keyboard
	t      *tickSource
}

func (h *boardHAL) Logger() Logger   { return h.logger }
func (h *boardHAL) Display() Display { return display{fb: h.fb} }
func (h *boardHAL) Input() Input     { return input{kbd: h.kbd} }
func (h *boardHAL) Time() Time       { return h.t }
