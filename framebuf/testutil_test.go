package framebuf

import (
	"bytes"
	"io"
)

// memFS is an in-memory FileSystem fixture for BMP/GIF decode tests, the
// "in-memory test fixture" spec.md §9's design notes call for testing the
// engine directly without a real host filesystem.
type memFS map[string][]byte

func (m memFS) Open(path string) (File, error) {
	data, ok := m[path]
	if !ok {
		return nil, ErrFileNotFound
	}
	return &memFile{r: bytes.NewReader(data)}, nil
}

type memFile struct {
	r *bytes.Reader
}

func (f *memFile) Read(p []byte) (int, error)                { return f.r.Read(p) }
func (f *memFile) Seek(off int64, whence int) (int64, error) { return f.r.Seek(off, whence) }
func (f *memFile) Close() error                              { return nil }

var _ io.ReadSeekCloser = (*memFile)(nil)

// packLZWBits packs a sequence of (code, width) pairs into bytes the same
// way a GIF encoder would: each code's bits are emitted LSB-first and
// concatenated, then sliced into bytes with bit 0 of the stream landing in
// bit 0 of the first byte (spec.md §4.G, §6).
func packLZWBits(codes []int, widths []int) []byte {
	var bits []byte
	for i, c := range codes {
		w := widths[i]
		for b := 0; b < w; b++ {
			bits = append(bits, byte((c>>uint(b))&1))
		}
	}
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}
