//go:build tinygo && baremetal && picocalc

package hal

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier): the
// ILI9488 panel, the I2C keyboard MCU and the UART console.
func New() HAL {
	var kbd Keyboard = nullKeyboard{}
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	}
	return &boardHAL{
		logger: newUARTLogger(),
		fb:     newPicoCalcDisplay(),
		kbd:    kbd,
		t:      startTicker(16),
	}
}

// newPicoCalcDisplay returns the 320x320 panel framebuffer. Without a working panel the
// framebuffer still exists so drawing code runs unchanged.
func newPicoCalcDisplay() *memFramebuffer {
	fb := newMemFramebuffer(320, 320)
	if lcd, err := initILI9488(); err == nil {
		fb.present = lcd.blitRGB565LittleEndian
	}
	return fb
}
