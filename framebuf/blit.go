package framebuf

// Blit copies src onto fb with src's top-left at (x,y). When key is given,
// source pixels whose raw stored value equals key are skipped — the
// comparison is against the format-native representation (the byte-swapped
// RGB565 word for RGB565 sources, not an unpacked colour) (spec.md §4.D).
func (fb *Framebuffer) Blit(src *Framebuffer, x, y int, key ...int64) {
	k := int64(-1)
	if len(key) > 0 {
		k = key[0]
	}

	x0, y0 := x, y
	x0end, y0end := x+src.width, y+src.height
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x0end > fb.width {
		x0end = fb.width
	}
	if y0end > fb.height {
		y0end = fb.height
	}
	if x0 >= x0end || y0 >= y0end {
		return
	}

	x1 := 0
	if -x > 0 {
		x1 = -x
	}
	y1 := 0
	if -y > 0 {
		y1 = -y
	}

	srcY := y1
	for dy := y0; dy < y0end; dy, srcY = dy+1, srcY+1 {
		srcX := x1
		for dx := x0; dx < x0end; dx, srcX = dx+1, srcX+1 {
			v := getPixel(src, srcX, srcY)
			if k >= 0 && int64(v) == k {
				continue
			}
			setPixel(fb, dx, dy, v)
		}
	}
}

// Scroll shifts the framebuffer's contents by (dx,dy). Rows and columns are
// iterated in the direction opposite the shift sign so reads always precede
// the overwrite of the cell they read from. Vacated pixels are left holding
// a copy of the source region; callers wanting a clean vacancy must
// FillRect it themselves afterward (spec.md §4.D).
func (fb *Framebuffer) Scroll(dx, dy int) {
	if dx >= 0 {
		if dy >= 0 {
			for y := fb.height - 1; y >= 0; y-- {
				for x := fb.width - 1; x >= 0; x-- {
					fb.copyScrolled(x, y, dx, dy)
				}
			}
		} else {
			for y := 0; y < fb.height; y++ {
				for x := fb.width - 1; x >= 0; x-- {
					fb.copyScrolled(x, y, dx, dy)
				}
			}
		}
	} else {
		if dy >= 0 {
			for y := fb.height - 1; y >= 0; y-- {
				for x := 0; x < fb.width; x++ {
					fb.copyScrolled(x, y, dx, dy)
				}
			}
		} else {
			for y := 0; y < fb.height; y++ {
				for x := 0; x < fb.width; x++ {
					fb.copyScrolled(x, y, dx, dy)
				}
			}
		}
	}
}

func (fb *Framebuffer) copyScrolled(x, y, dx, dy int) {
	srcX, srcY := x-dx, y-dy
	if srcX < 0 || srcX >= fb.width || srcY < 0 || srcY >= fb.height {
		return
	}
	setPixel(fb, x, y, getPixel(fb, srcX, srcY))
}
