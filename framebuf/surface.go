package framebuf

// Op is one entry of the public surface's method table: a name as the
// original firmware module exposed it, bound to a closure over a specific
// Framebuffer. Host-binding layers (symbol-registration glue) can enumerate
// this instead of hand-wiring each method; cmd/meowbitfb/script.go's Lua
// registration does not use it and wires its functions by hand. This is
// the same "one table, one binding
// loop" shape spec.md §4.H describes (spec.md §1, §9: the marshalling
// layer is a host concern, kept out of the pure engine, but the table
// itself is part of this package's public surface).
type Op struct {
	Name string
	Call func(args []int64) []int64
}

// Surface returns fb's method table. Argument/return encoding is
// deliberately primitive (signed 64-bit ints) since the table's only
// consumer is a marshalling host layer that already has to convert from
// its own argument representation; Go callers should use fb's typed
// methods directly instead of this table.
//
// "traingle" is listed, misspelled, because that is the literal name the
// original module's method table used (spec.md §4.H: "name preserved as
// is") — fixing the typo here would silently break any host script
// written against the original spelling.
func (fb *Framebuffer) Surface() []Op {
	return []Op{
		{"fill", func(a []int64) []int64 { fb.Fill(uint32(a[0])); return nil }},
		{"fill_rect", func(a []int64) []int64 {
			fb.FillRect(int(a[0]), int(a[1]), int(a[2]), int(a[3]), uint32(a[4]))
			return nil
		}},
		{"pixel", func(a []int64) []int64 {
			if len(a) >= 3 {
				fb.Pixel(int(a[0]), int(a[1]), uint32(a[2]))
				return nil
			}
			col, ok := fb.GetPixel(int(a[0]), int(a[1]))
			if !ok {
				return nil
			}
			return []int64{int64(col)}
		}},
		{"hline", func(a []int64) []int64 { fb.HLine(int(a[0]), int(a[1]), int(a[2]), uint32(a[3])); return nil }},
		{"vline", func(a []int64) []int64 { fb.VLine(int(a[0]), int(a[1]), int(a[2]), uint32(a[3])); return nil }},
		{"rect", func(a []int64) []int64 {
			fill := len(a) > 5 && a[5] != 0
			fb.Rect(int(a[0]), int(a[1]), int(a[2]), int(a[3]), uint32(a[4]), fill)
			return nil
		}},
		{"line", func(a []int64) []int64 {
			fb.Line(int(a[0]), int(a[1]), int(a[2]), int(a[3]), uint32(a[4]))
			return nil
		}},
		{"scroll", func(a []int64) []int64 { fb.Scroll(int(a[0]), int(a[1])); return nil }},
		{"text", func(a []int64) []int64 { return nil }}, // strings don't fit this int-only table; host layers call fb.Text directly
		{"circle", func(a []int64) []int64 {
			fill := len(a) > 4 && a[4] != 0
			fb.Circle(int(a[0]), int(a[1]), int(a[2]), uint32(a[3]), fill)
			return nil
		}},
		{"traingle", func(a []int64) []int64 {
			fill := len(a) > 7 && a[7] != 0
			fb.Triangle(int(a[0]), int(a[1]), int(a[2]), int(a[3]), int(a[4]), int(a[5]), uint32(a[6]), fill)
			return nil
		}},
	}
}

// FormatConstants mirrors spec.md §4.H / §6's exposed format-constant
// names, including the MONO_*/M* aliases, for host layers that need to
// enumerate them dynamically (e.g. exposing them as named constants in an
// embedded scripting language).
func FormatConstants() map[string]Format {
	return map[string]Format{
		"MONO_VLSB": MonoVLSB,
		"MVLSB":     MVLSB,
		"MONO_HLSB": MonoHLSB,
		"MHLSB":     MHLSB,
		"MONO_HMSB": MonoHMSB,
		"MHMSB":     MHMSB,
		"GS2_HMSB":  GS2HMSB,
		"GS4_HMSB":  GS4HMSB,
		"RGB565":    RGB565,
		"PL8":       PL8,
	}
}
