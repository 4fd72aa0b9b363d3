package framebuf

// pack565 packs the low 24 bits of col (0x00RRGGBB) into a 5-6-5 RGB565
// value. The result is NOT yet byte-swapped; callers needing the stored
// representation must pass it through swapBytes (spec.md §6).
func pack565(col uint32) uint16 {
	r := (col >> 16) & 0xFF
	g := (col >> 8) & 0xFF
	b := col & 0xFF
	return uint16((r>>3)<<11 | (g>>2)<<5 | b>>3)
}

// swapBytes byte-swaps a 16-bit value, matching the storage order the
// engine uses for every RGB565 pixel.
func swapBytes(p uint16) uint16 {
	return (p&0xFF)<<8 | (p >> 8)
}

// unpack565 reverses pack565 for round-trip tests: given an unswapped
// 5-6-5 word, reconstruct an approximate 0x00RRGGBB colour.
func unpack565(p uint16) uint32 {
	r := uint32(p>>11) & 0x1F
	g := uint32(p>>5) & 0x3F
	b := uint32(p) & 0x1F
	return (r << 3 << 16) | (g << 2 << 8) | (b << 3)
}

// RGB reconstructs an approximate 8-bit-per-channel colour for the pixel
// at (x,y), regardless of the framebuffer's native format. This is a host
// convenience for tooling that wants to preview or export a framebuffer
// (cmd/meowbitfb's ANSI renderer) — it is not part of the
// core engine's primitive set, which only ever reads/writes the format's
// native representation.
func (fb *Framebuffer) RGB(x, y int) (r, g, b uint8) {
	v, ok := fb.GetPixel(x, y)
	if !ok {
		return 0, 0, 0
	}
	switch fb.format {
	case MonoVLSB, MonoHLSB, MonoHMSB:
		if v != 0 {
			return 0xFF, 0xFF, 0xFF
		}
		return 0, 0, 0
	case GS2HMSB:
		g8 := uint8(v) * 0x55 // 0..3 -> 0..255
		return g8, g8, g8
	case GS4HMSB:
		g8 := uint8(v) * 0x11 // 0..15 -> 0..255
		return g8, g8, g8
	case PL8:
		g8 := uint8(v)
		return g8, g8, g8
	case RGB565:
		p := swapBytes(uint16(v))
		r5 := uint8(p>>11) & 0x1F
		g6 := uint8(p>>5) & 0x3F
		b5 := uint8(p) & 0x1F
		return r5 << 3, g6 << 2, b5 << 3
	}
	return 0, 0, 0
}
