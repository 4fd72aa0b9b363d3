package framebuf

import "testing"

func TestBlitIdenticalFormatCopiesVerbatim(t *testing.T) {
	src, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	for i := 0; i < 8; i++ {
		src.Pixel(i, i, uint32(i+1))
	}
	dst, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	dst.Blit(src, 0, 0)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want, _ := src.GetPixel(x, y)
			got, _ := dst.GetPixel(x, y)
			if got != want {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestBlitChromaKeySkipsMatchingPixels(t *testing.T) {
	src, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	src.Fill(9)
	src.Pixel(3, 3, 5)

	dst, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	dst.Fill(1)
	dst.Blit(src, 0, 0, 9)

	if v, _ := dst.GetPixel(3, 3); v != 5 {
		t.Fatalf("non-key pixel not copied: got %d, want 5", v)
	}
	if v, _ := dst.GetPixel(0, 0); v != 1 {
		t.Fatalf("key-matched pixel overwrote destination: got %d, want 1 (unchanged)", v)
	}
}

func TestBlitClipsToDestination(t *testing.T) {
	src, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	src.Fill(7)
	dst, _ := NewFrameBuffer(make([]byte, 16), 4, 4, PL8)
	dst.Blit(src, -2, -2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if v, _ := dst.GetPixel(x, y); v != 7 {
				t.Fatalf("(%d,%d) = %d, want 7", x, y, v)
			}
		}
	}
}

func TestScrollRoundTripNonVacatedRegion(t *testing.T) {
	fb, _ := NewFrameBuffer(make([]byte, 256), 16, 16, PL8)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			fb.Pixel(x, y, uint32((x*16+y)%250+1))
		}
	}
	before := make([][]uint32, 16)
	for y := range before {
		before[y] = make([]uint32, 16)
		for x := 0; x < 16; x++ {
			before[y][x], _ = fb.GetPixel(x, y)
		}
	}

	fb.Scroll(3, 0)
	fb.Scroll(-3, 0)

	// Scroll(-3, 0) vacates columns 13..15; every other column is restored.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16-3; x++ {
			got, _ := fb.GetPixel(x, y)
			if got != before[y][x] {
				t.Fatalf("(%d,%d) = %d, want %d (scroll round trip)", x, y, got, before[y][x])
			}
		}
	}
}

func TestScrollVacatedRegionHoldsSourceCopy(t *testing.T) {
	fb, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	fb.Fill(0)
	fb.Pixel(0, 0, 42)
	fb.Scroll(2, 0)
	// Vacated pixels are not cleared: columns 0 and 1 have no in-bounds
	// source, so they keep their old values, and column 2 now holds the
	// original column 0.
	if v, _ := fb.GetPixel(2, 0); v != 42 {
		t.Fatalf("scrolled pixel (2,0) = %d, want 42", v)
	}
	if v, _ := fb.GetPixel(0, 0); v != 42 {
		t.Fatalf("vacated pixel (0,0) = %d, want 42 (not cleared)", v)
	}
}
