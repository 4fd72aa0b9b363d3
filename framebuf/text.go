package framebuf

// Text renders s using the built-in 8x8 font starting at (x,y). Each
// column advances x by one; pixels are only set where the glyph bit is 1,
// so the background shows through (spec.md §4.D). col defaults to 1.
func (fb *Framebuffer) Text(s string, x, y int, col ...uint32) {
	c := uint32(1)
	if len(col) > 0 {
		c = col[0]
	}
	cx := x
	for _, r := range s {
		idx := int(r) - 32
		if idx < 0 || idx >= len(font) {
			idx = 127 - 32
		}
		glyph := font[idx]
		for col8 := 0; col8 < 8; col8++ {
			bits := glyph[col8]
			for row := 0; row < 8; row++ {
				if bits&(1<<uint(row)) != 0 {
					fb.Pixel(cx+col8, y+row, c)
				}
			}
		}
		cx += 8
	}
}
