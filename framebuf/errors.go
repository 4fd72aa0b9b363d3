package framebuf

import "errors"

// Sentinel errors returned by construction and the BMP/GIF decoders.
// Primitives never return errors; invalid geometry clips or no-ops instead
// (spec.md §7).
var (
	ErrInvalidFormat       = errors.New("framebuf: invalid pixel format")
	ErrBufferTooSmall      = errors.New("framebuf: buffer too small for declared geometry")
	ErrFileNotFound        = errors.New("framebuf: file not found")
	ErrIO                  = errors.New("framebuf: i/o error")
	ErrUnsupportedBmpDepth = errors.New("framebuf: unsupported bmp bit depth")
	ErrGifSignature        = errors.New("framebuf: invalid gif signature")
	ErrGifHeader           = errors.New("framebuf: invalid gif header")
	ErrGifFrame            = errors.New("framebuf: gif frame decode error")
	ErrAllocation          = errors.New("framebuf: allocation failure")
)
