package calc

import (
	"image/color"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/fbdraw"
	"sparkcalc/sparkos/fonts/calcglyph"

	"tinygo.org/x/tinyfont"
)

var (
	colorBG       = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x80, G: 0x88, B: 0x98, A: 0xFF}
	colorHeader   = color.RGBA{R: 0x22, G: 0x2A, B: 0x38, A: 0xFF}
	colorAccent   = color.RGBA{R: 0xFF, G: 0xB0, B: 0x30, A: 0xFF}
	colorError    = color.RGBA{R: 0xFF, G: 0x50, B: 0x50, A: 0xFF}
	colorSelected = color.RGBA{R: 0x30, G: 0x50, B: 0x80, A: 0xFF}
)

const (
	margin      = 6
	bigScale    = 3
	footerHints = "F1 DEG/RAD  F2 M+  F3 MR  F4 M-  F5 MC"
)

// renderer draws a calc.State onto the framebuffer:
//
//	header:  angle mode, memory chip, build
//	expr:    pending expression, right-aligned
//	buffer:  operand in a large face
//	history: newest first, the selected entry highlighted
//	footer:  function key hints
type renderer struct {
	d *fbdraw.Display

	small      tinyfont.Fonter
	smallH     int16
	smallOff   int16
	bigFaces   []tinyfont.Fonter
	locale     calc.Locale
	build      string
}

func newRenderer(fb hal.Framebuffer, loc calc.Locale, build string) *renderer {
	d := fbdraw.New(fb)
	if d == nil {
		return nil
	}
	h, off, err := calcglyph.LineMetrics(calcglyph.Font)
	if err != nil {
		h, off = 12, 9
	}
	r := &renderer{
		d:        d,
		small:    calcglyph.Font,
		smallH:   h,
		smallOff: off,
		locale:   loc,
		build:    build,
	}
	for s := bigScale; s >= 1; s-- {
		r.bigFaces = append(r.bigFaces, calcglyph.Scaled(calcglyph.Font, s))
	}
	return r
}

func (r *renderer) draw(st calc.State, cursor int) {
	if r == nil {
		return
	}
	w, h := r.d.Size()
	r.d.Clear(colorBG)

	y := r.drawHeader(st, w)
	y = r.drawExpr(st, w, y+margin)
	y = r.drawBuffer(st, w, y+margin)

	r.d.FillRect(margin, y+margin, w-2*margin, 1, colorDim)
	footerTop := h - r.smallH - margin
	r.drawHistory(st.History, cursor, w, y+2*margin, footerTop)

	r.d.Text(r.small, margin, footerTop+r.smallOff, footerHints, colorDim)
	_ = r.d.Display()
}

func (r *renderer) drawHeader(st calc.State, w int16) int16 {
	barH := r.smallH + 4
	r.d.FillRect(0, 0, w, barH, colorHeader)
	base := 2 + r.smallOff

	mode := "DEG"
	if st.Angle == calc.Radians {
		mode = "RAD"
	}
	r.d.Text(r.small, margin, base, mode, colorAccent)

	if st.MemoryIndicator != "" {
		chip := calc.LocalizeExpr(st.MemoryIndicator, r.locale)
		x := margin + fbdraw.TextWidth(r.small, "RAD") + 2*margin
		r.d.Text(r.small, x, base, chip, colorFG)
	}

	if r.build != "" {
		r.d.TextRight(r.small, w-margin, base, r.build, colorDim)
	}
	return barH
}

func (r *renderer) drawExpr(st calc.State, w, top int16) int16 {
	text := calc.LocalizeExpr(st.Expr, r.locale)
	text = fbdraw.FitLeft(r.small, text, w-2*margin)
	r.d.TextRight(r.small, w-margin, top+r.smallOff, text, colorDim)
	return top + r.smallH
}

func (r *renderer) drawBuffer(st calc.State, w, top int16) int16 {
	text := calc.Localize(st.Buffer, r.locale)
	fg := colorFG
	if st.Buffer == calc.ErrorText {
		fg = colorError
	}

	avail := w - 2*margin
	face := r.bigFaces[len(r.bigFaces)-1]
	for _, f := range r.bigFaces {
		if fbdraw.TextWidth(f, text) <= avail {
			face = f
			break
		}
	}
	text = fbdraw.FitLeft(face, text, avail)

	// Every face shares the big line height so the layout below does not jump.
	lineH := r.smallH * bigScale
	faceH, faceOff, err := calcglyph.LineMetrics(face)
	if err != nil {
		faceH, faceOff = r.smallH, r.smallOff
	}
	base := top + lineH - (faceH - faceOff)
	r.d.TextRight(face, w-margin, base, text, fg)
	return top + lineH
}

func (r *renderer) drawHistory(entries []calc.Entry, cursor int, w, top, bottom int16) {
	rowH := r.smallH + 2
	y := top
	for i, e := range entries {
		if y+rowH > bottom {
			return
		}
		if i == cursor {
			r.d.FillRect(margin/2, y, w-margin, rowH, colorSelected)
		}
		lhs := calc.LocalizeExpr(e.LHS, r.locale)
		res := "= " + calc.Localize(e.Result, r.locale)
		resW := fbdraw.TextWidth(r.small, res)
		lhs = fbdraw.FitLeft(r.small, lhs, w-2*margin-resW-margin)

		base := y + 1 + r.smallOff
		r.d.Text(r.small, margin, base, lhs, colorDim)
		r.d.TextRight(r.small, w-margin, base, res, colorFG)
		y += rowH
	}
}
