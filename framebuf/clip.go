package framebuf

// clipRect is the gateway into fillRect. Every primitive that draws a
// rectangle funnels through here so no caller can hand format.go geometry
// that steps outside the buffer (spec.md §4.C); only Fill, whose
// whole-buffer rectangle is in bounds by construction, calls fillRect
// directly.
func clipRect(fb *Framebuffer, x, y, w, h int, col uint32) {
	if w < 1 || h < 1 {
		return
	}
	if x+w <= 0 || y+h <= 0 || y >= fb.height || x >= fb.width {
		return
	}
	x0 := x
	y0 := y
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	xend := x + w
	if xend > fb.width {
		xend = fb.width
	}
	yend := y + h
	if yend > fb.height {
		yend = fb.height
	}
	fillRect(fb, x0, y0, xend-x0, yend-y0, col)
}
