//go:build tinygo && baremetal && !picocalc

package hal

// New returns a bare Pico 2 (RP2350) HAL: UART logging and ticks, no panel or keyboard. The
// calculator still runs and reports every evaluation on the serial console.
func New() HAL {
	return &boardHAL{
		logger: newUARTLogger(),
		fb:     &stubFramebuffer{w: 320, h: 320},
		kbd:    nullKeyboard{},
		t:      startTicker(16),
	}
}
