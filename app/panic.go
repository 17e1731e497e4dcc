package app

import (
	"fmt"
	"image/color"
	"strings"

	"sparkcalc/hal"
	"sparkcalc/sparkos/fbdraw"
	"sparkcalc/sparkos/fonts/calcglyph"
	"sparkcalc/sparkos/kernel"
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		if disp := h.Display(); disp != nil {
			if d := fbdraw.New(disp.Framebuffer()); d != nil {
				drawPanic(d, lines)
			}
		}
		select {}
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"sparkcalc panic:",
		fmt.Sprintf("task: %d %s", info.TaskID, info.Task),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// drawPanic paints lines black on white, wrapping at the column limit, until the screen is full.
func drawPanic(d *fbdraw.Display, lines []string) {
	font := calcglyph.Font
	fontHeight, fontOffset, err := calcglyph.LineMetrics(font)
	fontWidth := calcglyph.CellWidth(font)
	if err != nil || fontWidth <= 0 {
		return
	}

	d.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	fg := color.RGBA{A: 255}

	w, h := d.Size()
	cols := int(w / fontWidth)
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for line != "" {
			if y+fontHeight > h {
				_ = d.Display()
				return
			}
			chunk, rest := fbdraw.TakeRunes(line, cols)
			d.Text(font, 0, y+fontOffset, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Display()
}
