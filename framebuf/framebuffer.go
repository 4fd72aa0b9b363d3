package framebuf

import "fmt"

// Framebuffer is a view of a caller-owned byte buffer as one of seven
// pixel encodings. It is immutable in geometry after construction; only
// its pixel contents mutate (spec.md §3).
type Framebuffer struct {
	buf    []byte
	width  int
	height int
	stride int
	format Format
}

// NewFrameBuffer constructs a Framebuffer over buf. stride is optional
// (Python's framebuf.FrameBuffer takes it as a trailing positional arg);
// when omitted it defaults to width, then both are aligned per format.
func NewFrameBuffer(buf []byte, width, height int, format Format, stride ...int) (*Framebuffer, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, format)
	}
	s := width
	if len(stride) > 0 && stride[0] > 0 {
		s = stride[0]
	}
	s = strideAlign(format, s)
	if s < width {
		s = strideAlign(format, width)
	}
	need := minBufferLen(format, s, height)
	if len(buf) < need {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, need, len(buf))
	}
	return &Framebuffer{
		buf:    buf,
		width:  width,
		height: height,
		stride: s,
		format: format,
	}, nil
}

// FrameBuffer1 is the legacy single-format constructor: equivalent to
// NewFrameBuffer with MonoVLSB forced (spec.md §4.H).
func FrameBuffer1(buf []byte, width, height int, stride ...int) (*Framebuffer, error) {
	return NewFrameBuffer(buf, width, height, MonoVLSB, stride...)
}

func (fb *Framebuffer) Width() int     { return fb.width }
func (fb *Framebuffer) Height() int    { return fb.height }
func (fb *Framebuffer) Stride() int    { return fb.stride }
func (fb *Framebuffer) Format() Format { return fb.format }

// Buffer returns the backing byte slice, for callers that need to inspect
// or persist raw pixel bytes.
func (fb *Framebuffer) Buffer() []byte { return fb.buf }

// Len reports the buffer-protocol length the source would advertise for
// this geometry: stride*height*bpp_scale, bpp_scale=2 for RGB565 else 1.
// This is a compatibility figure, not a safety bound (spec.md §4.B) — for
// the mono, GS2 and GS4 formats it is larger than the bytes the format
// actually addresses, which is a property of the source's own formula,
// preserved here rather than corrected.
func (fb *Framebuffer) Len() int {
	scale := 1
	if fb.format == RGB565 {
		scale = 2
	}
	return fb.stride * fb.height * scale
}
