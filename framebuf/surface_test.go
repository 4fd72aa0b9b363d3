package framebuf

import "testing"

func opByName(ops []Op, name string) (Op, bool) {
	for _, op := range ops {
		if op.Name == name {
			return op, true
		}
	}
	return Op{}, false
}

func TestSurfaceDispatchesFillRect(t *testing.T) {
	fb, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	ops := fb.Surface()
	op, ok := opByName(ops, "fill_rect")
	if !ok {
		t.Fatal("surface missing fill_rect")
	}
	op.Call([]int64{1, 1, 3, 3, 5})
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if v, _ := fb.GetPixel(x, y); v != 5 {
				t.Fatalf("fill_rect via surface: (%d,%d) = %d, want 5", x, y, v)
			}
		}
	}
}

func TestSurfacePixelGetAndSet(t *testing.T) {
	fb, _ := NewFrameBuffer(make([]byte, 64), 8, 8, PL8)
	ops := fb.Surface()
	set, _ := opByName(ops, "pixel")
	set.Call([]int64{2, 2, 7})

	get, _ := opByName(ops, "pixel")
	out := get.Call([]int64{2, 2})
	if len(out) != 1 || out[0] != 7 {
		t.Fatalf("pixel get via surface = %v, want [7]", out)
	}
}

// The triangle op is registered under its misspelled name as preserved
// from the original surface.
func TestSurfaceTriangleNamePreserved(t *testing.T) {
	fb, _ := NewFrameBuffer(make([]byte, 32*32), 32, 32, PL8)
	ops := fb.Surface()
	op, ok := opByName(ops, "traingle")
	if !ok {
		t.Fatal(`surface missing "traingle" entry`)
	}
	op.Call([]int64{2, 2, 20, 4, 10, 25, 1, 1})
	if v, _ := fb.GetPixel(10, 13); v == 0 {
		t.Fatal("traingle op drew nothing inside its bounding area")
	}
}

func TestFormatConstantsCoverAllFormats(t *testing.T) {
	want := map[string]Format{
		"MONO_VLSB": MonoVLSB, "MVLSB": MVLSB,
		"MONO_HLSB": MonoHLSB, "MHLSB": MHLSB,
		"MONO_HMSB": MonoHMSB, "MHMSB": MHMSB,
		"GS2_HMSB": GS2HMSB, "GS4_HMSB": GS4HMSB,
		"RGB565": RGB565, "PL8": PL8,
	}
	got := FormatConstants()
	for name, f := range want {
		gf, ok := got[name]
		if !ok || gf != f {
			t.Fatalf("FormatConstants()[%q] = %v, %v; want %v, true", name, gf, ok, f)
		}
	}
}
