// Package calcglyph provides the calculator's display faces: proggy TinySZ8pt7b for ASCII with
// 6x8 bitmaps layered on top for the operator symbols it lacks, and an integer-scaled wrapper
// for the large result line.
//
// Fonters returned here reuse an internal glyph and are not safe for concurrent use.
package calcglyph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the small calculator face.
var Font tinyfont.Fonter = New(&proggy.TinySZ8pt7b)

// symbols holds 6x8 bitmaps. Bits are stored as 0b00xxxxxx (bit5 = leftmost pixel); row 7 sits
// on the baseline.
var symbols = map[rune][8]byte{
	'×': {0x00, 0x00, 0x22, 0x14, 0x08, 0x14, 0x22, 0x00},
	'÷': {0x00, 0x08, 0x00, 0x3e, 0x00, 0x08, 0x00, 0x00},
	'−': {0x00, 0x00, 0x00, 0x3e, 0x00, 0x00, 0x00, 0x00},
	'π': {0x00, 0x00, 0x3e, 0x14, 0x14, 0x14, 0x14, 0x00},
	'√': {0x07, 0x04, 0x04, 0x24, 0x14, 0x0c, 0x04, 0x00},
	'⌫': {0x00, 0x0f, 0x19, 0x35, 0x19, 0x0f, 0x00, 0x00},
	'—': {0x00, 0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x00},
	'·': {0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, 0x00, 0x00},
}

// New layers the calculator symbols over base.
func New(base tinyfont.Fonter) tinyfont.Fonter {
	return &overlay{base: base}
}

type overlay struct {
	base tinyfont.Fonter
	g    symbolGlyph
}

func (f *overlay) GetYAdvance() uint8 { return f.base.GetYAdvance() }

func (f *overlay) GetGlyph(r rune) tinyfont.Glypher {
	if rows, ok := symbols[r]; ok {
		f.g = symbolGlyph{r: r, rows: rows}
		return &f.g
	}
	return f.base.GetGlyph(r)
}

type symbolGlyph struct {
	r    rune
	rows [8]byte
}

func (g *symbolGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for row := 0; row < 8; row++ {
		b := g.rows[row]
		for col := 0; col < 6; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *symbolGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    6,
		Height:   8,
		XAdvance: 6,
		XOffset:  0,
		YOffset:  -7,
	}
}
