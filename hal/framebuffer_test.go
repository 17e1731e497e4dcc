package hal

import "testing"

func TestMemFramebufferPresent(t *testing.T) {
	fb := newMemFramebuffer(4, 2)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present without panel: %v", err)
	}

	var gotW, gotH, gotLen int
	fb.present = func(buf []byte, w, h int) error {
		gotW, gotH, gotLen = w, h, len(buf)
		return nil
	}
	fb.ClearRGB(0, 0, 255)
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if gotW != 4 || gotH != 2 || gotLen != 16 {
		t.Fatalf("present got %dx%d len=%d", gotW, gotH, gotLen)
	}
	if p := uint16(fb.buf[0]) | uint16(fb.buf[1])<<8; p != rgb565(0, 0, 255) {
		t.Fatalf("pixel=%#04x", p)
	}
}
