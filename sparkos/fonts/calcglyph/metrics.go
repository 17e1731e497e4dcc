package calcglyph

import (
	"errors"
	"fmt"

	"tinygo.org/x/tinyfont"
)

// metricRunes covers every glyph the calculator draws on a line.
const metricRunes = "0123456789.,+-×÷−^()!%πe√⌫—ERDGAMrosinctalgq:"

// LineMetrics derives a text cell from f's glyph extents.
//
// It returns:
//   - height: total cell height in pixels
//   - offset: baseline offset from the top of the cell
func LineMetrics(f tinyfont.Fonter) (height, offset int16, err error) {
	if f == nil {
		return 0, 0, errors.New("nil font")
	}
	minY, maxY := 0, 0
	first := true
	for _, r := range metricRunes {
		info := f.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		top := int(info.YOffset)
		bottom := top + int(info.Height)
		if first {
			minY, maxY = top, bottom
			first = false
			continue
		}
		if top < minY {
			minY = top
		}
		if bottom > maxY {
			maxY = bottom
		}
	}
	if first {
		return 0, 0, errors.New("no glyphs")
	}

	height16 := maxY - minY
	if adv := int(f.GetYAdvance()); adv > height16 {
		height16 = adv
	}
	off := -minY
	if height16 <= 0 || off < 0 {
		return 0, 0, fmt.Errorf("invalid metrics: height=%d offset=%d", height16, off)
	}
	if height16 > 255 || off > 255 {
		return 0, 0, fmt.Errorf("metrics too large: height=%d offset=%d", height16, off)
	}
	return int16(height16), int16(off), nil
}

// CellWidth is the advance of "0", the widest digit in a monospace face.
func CellWidth(f tinyfont.Fonter) int16 {
	_, outbox := tinyfont.LineWidth(f, "0")
	return int16(outbox)
}
