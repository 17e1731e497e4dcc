//go:build tinygo && baremetal && !picocalc

package hal

// stubFramebuffer stands in on boards without a panel. It has no pixel memory, so drawing is a
// no-op and the calculator is only visible through its UART log.
type stubFramebuffer struct {
	w, h int
}

func (f *stubFramebuffer) Width() int             { return f.w }
func (f *stubFramebuffer) Height() int            { return f.h }
func (f *stubFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *stubFramebuffer) Buffer() []byte         { return nil }
func (f *stubFramebuffer) ClearRGB(_, _, _ uint8) {}
func (f *stubFramebuffer) Present() error         { return ErrNotImplemented }
