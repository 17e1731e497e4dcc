package calcglyph

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Scaled draws every glyph of base as s-by-s pixel blocks. Factors below 2 return base.
func Scaled(base tinyfont.Fonter, s int) tinyfont.Fonter {
	if s < 2 {
		return base
	}
	return &scaledFont{base: base, s: int16(s)}
}

type scaledFont struct {
	base tinyfont.Fonter
	s    int16
	g    scaledGlyph
}

func (f *scaledFont) GetYAdvance() uint8 {
	return uint8(int16(f.base.GetYAdvance()) * f.s)
}

func (f *scaledFont) GetGlyph(r rune) tinyfont.Glypher {
	f.g = scaledGlyph{inner: f.base.GetGlyph(r), s: f.s}
	return &f.g
}

type scaledGlyph struct {
	inner tinyfont.Glypher
	s     int16
}

func (g *scaledGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	g.inner.Draw(&blockDisplay{d: display, ox: x, oy: y, s: g.s}, x, y, c)
}

func (g *scaledGlyph) Info() tinyfont.GlyphInfo {
	info := g.inner.Info()
	s := g.s
	info.Width = uint8(int16(info.Width) * s)
	info.Height = uint8(int16(info.Height) * s)
	info.XAdvance = uint8(int16(info.XAdvance) * s)
	info.XOffset = int8(int16(info.XOffset) * s)
	info.YOffset = int8(int16(info.YOffset) * s)
	return info
}

// blockDisplay magnifies pixels drawn relative to the glyph origin (ox, oy).
type blockDisplay struct {
	d      drivers.Displayer
	ox, oy int16
	s      int16
}

func (b *blockDisplay) Size() (x, y int16) { return b.d.Size() }

func (b *blockDisplay) SetPixel(x, y int16, c color.RGBA) {
	bx := b.ox + (x-b.ox)*b.s
	by := b.oy + (y-b.oy)*b.s
	for dy := int16(0); dy < b.s; dy++ {
		for dx := int16(0); dx < b.s; dx++ {
			b.d.SetPixel(bx+dx, by+dy, c)
		}
	}
}

func (b *blockDisplay) Display() error { return nil }
