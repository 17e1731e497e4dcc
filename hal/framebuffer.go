package hal

// memFramebuffer is an RGB565 framebuffer held in RAM. present, when set, pushes the pixels to
// the panel.
type memFramebuffer struct {
	width   int
	height  int
	stride  int
	buf     []byte
	present func(buf []byte, w, h int) error
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{
		width:  w,
		height: h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
	}
}

func (f *memFramebuffer) Width() int          { return f.width }
func (f *memFramebuffer) Height() int         { return f.height }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo, hi := byte(pixel), byte(pixel>>8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) Present() error {
	if f.present == nil {
		return nil
	}
	return f.present(f.buf, f.width, f.height)
}
