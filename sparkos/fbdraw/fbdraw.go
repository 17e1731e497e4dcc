// Package fbdraw adapts a hal.Framebuffer to the tinygo drivers.Displayer interface so tinyfont
// can draw on it.
package fbdraw

import (
	"image/color"
	"unicode/utf8"

	"sparkcalc/hal"

	"tinygo.org/x/tinyfont"
)

// Display draws into an RGB565 framebuffer. Pixels outside the buffer are clipped.
type Display struct {
	fb     hal.Framebuffer
	buf    []byte
	w, h   int
	stride int
}

// New returns nil when fb is nil or not RGB565.
func New(fb hal.Framebuffer) *Display {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return &Display{
		fb:     fb,
		buf:    fb.Buffer(),
		w:      fb.Width(),
		h:      fb.Height(),
		stride: fb.StrideBytes(),
	}
}

func (d *Display) Size() (x, y int16) {
	return int16(d.w), int16(d.h)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	off := iy*d.stride + ix*2
	if off < 0 || off+1 >= len(d.buf) {
		return
	}
	pixel := RGB565(c)
	d.buf[off] = byte(pixel)
	d.buf[off+1] = byte(pixel >> 8)
}

// Display presents the framebuffer.
func (d *Display) Display() error { return d.fb.Present() }

func (d *Display) Clear(c color.RGBA) {
	d.fb.ClearRGB(c.R, c.G, c.B)
}

// FillRect paints the clipped rectangle (x, y, w, h).
func (d *Display) FillRect(x, y, w, h int16, c color.RGBA) {
	x0, y0 := clamp(int(x), d.w), clamp(int(y), d.h)
	x1, y1 := clamp(int(x)+int(w), d.w), clamp(int(y)+int(h), d.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	pixel := RGB565(c)
	lo, hi := byte(pixel), byte(pixel>>8)
	for row := y0; row < y1; row++ {
		off := row*d.stride + x0*2
		for col := x0; col < x1; col++ {
			if off+1 >= len(d.buf) {
				return
			}
			d.buf[off] = lo
			d.buf[off+1] = hi
			off += 2
		}
	}
}

// Text draws s with its baseline at y.
func (d *Display) Text(font tinyfont.Fonter, x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, x, y, s, c)
}

// TextRight draws s so that it ends at x.
func (d *Display) TextRight(font tinyfont.Fonter, x, y int16, s string, c color.RGBA) {
	d.Text(font, x-TextWidth(font, s), y, s, c)
}

func TextWidth(font tinyfont.Fonter, s string) int16 {
	_, outbox := tinyfont.LineWidth(font, s)
	return int16(outbox)
}

// FitLeft drops runes from the front of s until it fits in width pixels.
func FitLeft(font tinyfont.Fonter, s string, width int16) string {
	for s != "" && TextWidth(font, s) > width {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

// TakeRunes splits s after n runes.
func TakeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}

// RGB565 packs c as rrrrrggggggbbbbb.
func RGB565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
