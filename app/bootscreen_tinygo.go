//go:build tinygo && bootdebug

package app

import (
	"image/color"

	"sparkcalc/hal"
	"sparkcalc/sparkos/fbdraw"
	"sparkcalc/sparkos/fonts/calcglyph"
)

// bootScreen shows the current boot step until the calc task takes over the display.
func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	d := fbdraw.New(disp.Framebuffer())
	if d == nil {
		return
	}

	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	d.Clear(color.RGBA{A: 0xFF})
	d.Text(calcglyph.Font, 4, 12, "sparkcalc boot", fg)
	d.Text(calcglyph.Font, 4, 28, msg, fg)
	_ = d.Display()
}
