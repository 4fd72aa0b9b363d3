// Command fbconvert decodes a PNG or JPEG asset, resamples it to a target
// resolution with golang.org/x/image/draw, and quantizes the result into
// one of the framebuf engine's seven packed pixel formats, writing the raw
// bytes a firmware image would embed. This is host tooling, not part of
// the engine itself — the engine's own Non-goals (spec.md §1) exclude
// PNG/JPEG decoding, which is exactly the job this tool does instead, the
// same division of labour the teacher's tools/font2rgba.go drew between
// "decode a real image asset" and "emit the engine's raw byte layout".
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/qq65412857/micropython-meowbit/framebuf"
)

func formatByName(name string) (framebuf.Format, bool) {
	switch strings.ToLower(name) {
	case "mono_vlsb", "mvlsb":
		return framebuf.MonoVLSB, true
	case "mono_hlsb", "mhlsb":
		return framebuf.MonoHLSB, true
	case "mono_hmsb", "mhmsb":
		return framebuf.MonoHMSB, true
	case "gs2_hmsb", "gs2":
		return framebuf.GS2HMSB, true
	case "gs4_hmsb", "gs4":
		return framebuf.GS4HMSB, true
	case "pl8":
		return framebuf.PL8, true
	case "rgb565":
		return framebuf.RGB565, true
	}
	return 0, false
}

func main() {
	var (
		in      = flag.String("in", "", "source PNG/JPEG path")
		out     = flag.String("out", "", "destination raw file (defaults to <in>.raw)")
		width   = flag.Int("width", 0, "target width in pixels (0 = source width)")
		height  = flag.Int("height", 0, "target height in pixels (0 = source height)")
		formatS = flag.String("format", "RGB565", "destination pixel format: MONO_VLSB|MONO_HLSB|MONO_HMSB|GS2_HMSB|GS4_HMSB|PL8|RGB565")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "fbconvert: -in is required")
		os.Exit(1)
	}
	format, ok := formatByName(*formatS)
	if !ok {
		fmt.Fprintf(os.Stderr, "fbconvert: unknown -format %q\n", *formatS)
		os.Exit(1)
	}

	buf, err := convert(*in, *width, *height, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fbconvert: %v\n", err)
		os.Exit(1)
	}

	dst := *out
	if dst == "" {
		dst = *in + ".raw"
	}
	if err := os.WriteFile(dst, buf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "fbconvert: writing %s: %v\n", dst, err)
		os.Exit(1)
	}
	fmt.Printf("fbconvert: wrote %d bytes to %s\n", len(buf), dst)
}

// convert decodes the source image, resamples it to (w,h) with
// x/image/draw's bilinear scaler (falling back to the source's own
// dimensions when w or h is 0), and quantizes the result pixel-by-pixel
// into a fresh Framebuffer of the requested format, returning its raw
// backing bytes.
func convert(path string, w, h int, format framebuf.Format) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	bounds := src.Bounds()
	if w == 0 {
		w = bounds.Dx()
	}
	if h == 0 {
		h = bounds.Dy()
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Over, nil)

	scale := 1
	if format == framebuf.RGB565 {
		scale = 2
	}
	fbBuf := make([]byte, w*h*scale+64)
	fb, err := framebuf.NewFrameBuffer(fbBuf, w, h, format)
	if err != nil {
		return nil, err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := scaled.At(x, y).RGBA()
			col := (uint32(r>>8) << 16) | (uint32(g>>8) << 8) | uint32(b>>8)
			fb.Pixel(x, y, col)
		}
	}

	return fb.Buffer()[:fb.Len()], nil
}
