package framebuf

// Fill paints the whole framebuffer col. The geometry is already known to
// be in-bounds, so this bypasses the clip router (spec.md §4.D).
func (fb *Framebuffer) Fill(col uint32) {
	fillRect(fb, 0, 0, fb.width, fb.height, col)
}

// FillRect is the public, clip-checked rectangle fill.
func (fb *Framebuffer) FillRect(x, y, w, h int, col uint32) {
	clipRect(fb, x, y, w, h, col)
}

// Pixel sets (x,y) to col, or no-ops if out of bounds.
func (fb *Framebuffer) Pixel(x, y int, col uint32) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	setPixel(fb, x, y, col)
}

// GetPixel reads (x,y), returning ok=false if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) (col uint32, ok bool) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0, false
	}
	return getPixel(fb, x, y), true
}

// HLine draws a horizontal run of length w starting at (x,y).
func (fb *Framebuffer) HLine(x, y, w int, col uint32) {
	clipRect(fb, x, y, w, 1, col)
}

// VLine draws a vertical run of length h starting at (x,y).
func (fb *Framebuffer) VLine(x, y, h int, col uint32) {
	clipRect(fb, x, y, 1, h, col)
}

// Rect draws an outline. The vertical strokes use h as supplied, spanning
// the full requested height even at the corners — this matches the source
// and is documented behaviour, not a bug to be squared off (spec.md §9).
func (fb *Framebuffer) Rect(x, y, w, h int, col uint32, fill ...bool) {
	if len(fill) > 0 && fill[0] {
		clipRect(fb, x, y, w, h, col)
		return
	}
	clipRect(fb, x, y, w, 1, col)
	clipRect(fb, x, y+h-1, w, 1, col)
	clipRect(fb, x, y, 1, h, col)
	clipRect(fb, x+w-1, y, 1, h, col)
}

// Line draws an integer Bresenham line from (x0,y0) to (x1,y1), plotting
// exactly dx+1 points where dx = max(|Δx|,|Δy|). The endpoint is always
// plotted last (spec.md §4.D).
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, col uint32) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	steep := dy > dx
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		dx, dy = dy, dx
	}
	sx := 1
	if x1 < x0 {
		sx = -1
	}
	sy := 1
	if y1 < y0 {
		sy = -1
	}
	err := dx >> 1
	x, y := x0, y0
	for i := 0; i <= dx; i++ {
		if steep {
			fb.Pixel(y, x, col)
		} else {
			fb.Pixel(x, y, col)
		}
		err -= dy
		if err < 0 {
			y += sy
			err += dx
		}
		x += sx
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Circle draws a midpoint circle, outline or filled (spec.md §4.D).
func (fb *Framebuffer) Circle(cx, cy, r int, col uint32, fill ...bool) {
	filled := len(fill) > 0 && fill[0]
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x, y := 0, r

	if filled {
		fb.VLine(cx, cy-r, 2*r+1, col)
	} else {
		fb.Pixel(cx, cy+r, col)
		fb.Pixel(cx, cy-r, col)
		fb.Pixel(cx+r, cy, col)
		fb.Pixel(cx-r, cy, col)
	}

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if filled {
			fb.VLine(cx+x, cy-y, 2*y+1, col)
			fb.VLine(cx-x, cy-y, 2*y+1, col)
			fb.VLine(cx+y, cy-x, 2*x+1, col)
			fb.VLine(cx-y, cy-x, 2*x+1, col)
		} else {
			fb.Pixel(cx+x, cy+y, col)
			fb.Pixel(cx-x, cy+y, col)
			fb.Pixel(cx+x, cy-y, col)
			fb.Pixel(cx-x, cy-y, col)
			fb.Pixel(cx+y, cy+x, col)
			fb.Pixel(cx-y, cy+x, col)
			fb.Pixel(cx+y, cy-x, col)
			fb.Pixel(cx-y, cy-x, col)
		}
	}
}

// Triangle draws an outline (three lines) or, when filled, sorts the
// vertices by y and sweeps two half-triangles using incrementally stepped
// integer edge x-coordinates, one router call per scanline (spec.md §4.D).
func (fb *Framebuffer) Triangle(x0, y0, x1, y1, x2, y2 int, col uint32, fill ...bool) {
	if len(fill) == 0 || !fill[0] {
		fb.Line(x0, y0, x1, y1, col)
		fb.Line(x1, y1, x2, y2, col)
		fb.Line(x2, y2, x0, y0, col)
		return
	}

	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 {
		minX, maxX := x0, x0
		for _, x := range []int{x1, x2} {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		fb.HLine(minX, y0, maxX-minX+1, col)
		return
	}

	// Two half-triangles, each swept with an integer-stepped incremental x
	// per edge (no floating point): sa/sb accumulate dx*dy_total_steps and
	// are divided by the edge's dy each scanline, the classic fixed-point
	// triangle fill. Edge dy values are clamped to 1 to avoid division by
	// zero on a perfectly horizontal edge (spec.md §4.D).
	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	if dy01 == 0 {
		dy01 = 1
	}
	if dy02 == 0 {
		dy02 = 1
	}
	if dy12 == 0 {
		dy12 = 1
	}

	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	sa, sb := 0, 0
	y := y0
	for ; y <= last; y++ {
		ax := x0 + sa/dy01
		bx := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if ax > bx {
			ax, bx = bx, ax
		}
		fb.HLine(ax, y, bx-ax+1, col)
	}

	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		ax := x1 + sa/dy12
		bx := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if ax > bx {
			ax, bx = bx, ax
		}
		fb.HLine(ax, y, bx-ax+1, col)
	}
}
