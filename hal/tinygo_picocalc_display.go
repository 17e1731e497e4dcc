//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte

	// rowSums holds the checksum of every row sent by the last blit.
	rowSums []uint32
	full    bool
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
		full:  true,
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	// Power control.
	d.cmd(0xC0, 0x17, 0x15) // PWCTRL1
	d.cmd(0xC1, 0x41)       // PWCTRL2

	// VCOM control.
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Frame rate / display function.
	d.cmd(0xB1, 0xA0, 0x11)       // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27) // DISCTRL (320 lines)

	d.cmd(0x21) // INVON

	// Memory access control: mirror for PicoCalc wiring + BGR panel order.
	d.cmd(0x36, 0x40|0x04|0x08) // MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

// blitRGB565LittleEndian pushes the rows of buf that changed since the previous call. Rows are
// compared by checksum; contiguous changed rows go out as one window.
func (d *ili9488) blitRGB565LittleEndian(buf []byte, w, h int) error {
	if w <= 0 || h <= 0 || len(buf) < w*h*2 {
		return errors.New("invalid framebuffer")
	}
	if len(d.rowSums) != h {
		d.rowSums = make([]uint32, h)
		d.full = true
	}

	stride := w * 2
	band := -1
	for y := 0; y <= h; y++ {
		changed := false
		if y < h {
			sum := rowChecksum(buf[y*stride : (y+1)*stride])
			changed = d.full || sum != d.rowSums[y]
			d.rowSums[y] = sum
		}
		switch {
		case changed && band < 0:
			band = y
		case !changed && band >= 0:
			if err := d.blitRows(buf, w, band, y); err != nil {
				return err
			}
			band = -1
		}
	}
	d.full = false
	return nil
}

// blitRows sends rows [y0, y1) of buf.
func (d *ili9488) blitRows(buf []byte, w, y0, y1 int) error {
	d.setWindow(0, uint16(y0), uint16(w-1), uint16(y1-1))

	d.cs.Low()
	d.dc.High()

	chunk := d.txBuf[:len(d.txBuf)&^1]
	if len(chunk) < 2 {
		d.cs.High()
		return errors.New("tx buffer too small")
	}

	src := buf[y0*w*2 : y1*w*2]
	for len(src) > 0 {
		n := len(chunk)
		if n > len(src) {
			n = len(src) &^ 1
		}
		for i := 0; i < n; i += 2 {
			// Framebuffer pixels are little-endian; the panel reads big-endian.
			chunk[i] = src[i+1]
			chunk[i+1] = src[i]
		}
		d.spi.Tx(chunk[:n], nil)
		src = src[n:]
	}

	d.cs.High()
	return nil
}

// rowChecksum is FNV-1a over one framebuffer row.
func rowChecksum(row []byte) uint32 {
	h := uint32(2166136261)
	for _, b := range row {
		h ^= uint32(b)
		h *= 16777619
	}
	return h
}
