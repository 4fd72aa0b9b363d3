// Command meowbitfb is an interactive demo host for the framebuf engine:
// it loads a BMP or GIF asset (or starts from a blank canvas), renders it
// to the terminal as ANSI truecolor half-blocks, and lets arrow keys drive
// Scroll live. It is the concrete "host object/runtime system" spec.md §1
// calls out as an external collaborator — the engine itself never imports
// a terminal, a file path flag, or Lua.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qq65412857/micropython-meowbit/framebuf"
	"github.com/qq65412857/micropython-meowbit/framebuf/hostfs"
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
		file     = flag.String("file", "", "BMP or GIF asset to load (relative to -dir)")
		dir      = flag.String("dir", ".", "sandbox directory assets are loaded from")
		width    = flag.Int("width", 64, "canvas width for a blank or BMP/GIF canvas")
		height   = flag.Int("height", 32, "canvas height")
		formatS  = flag.String("format", "RGB565", "pixel format: MONO_VLSB|MONO_HLSB|MONO_HMSB|GS2_HMSB|GS4_HMSB|PL8|RGB565")
		script   = flag.String("script", "", "optional Lua script to run against the framebuffer before previewing")
		loop     = flag.Bool("loop", false, "keep re-opening and replaying a GIF after its trailer (original loadgif does not loop internally)")
		interact = flag.Bool("interactive", false, "enter raw-terminal mode; arrow keys Scroll the framebuffer live, q quits")
	)
	flag.Parse()

	format, ok := formatByName(*formatS)
	if !ok {
		fmt.Fprintf(os.Stderr, "meowbitfb: unknown -format %q\n", *formatS)
		os.Exit(1)
	}

	scale := 1
	if format == framebuf.RGB565 {
		scale = 2
	}
	buf := make([]byte, *width*(*height)*scale+64) // headroom for stride alignment
	fb, err := framebuf.NewFrameBuffer(buf, *width, *height, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meowbitfb: %v\n", err)
		os.Exit(1)
	}

	fs, err := hostfs.New(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "meowbitfb: %v\n", err)
		os.Exit(1)
	}

	if *file != "" {
		if err := loadAsset(fs, *file, fb, *loop); err != nil {
			fmt.Fprintf(os.Stderr, "meowbitfb: failed to load %s: %v\n", *file, err)
			os.Exit(1)
		}
	}

	if *script != "" {
		if err := runScript(*script, fb); err != nil {
			fmt.Fprintf(os.Stderr, "meowbitfb: script error: %v\n", err)
			os.Exit(1)
		}
	}

	if *interact {
		runInteractive(fb)
		return
	}

	fmt.Print(renderANSI(fb))
}

// loadAsset dispatches on file extension: .bmp to LoadBMP, anything else
// (.gif by convention) to a one-pass GIF decode. -loop re-invokes Play
// after a trailer, matching the original's division of responsibility
// between loadgif (one pass) and a caller-driven restart (spec.md §4.G).
func loadAsset(fs framebuf.FileSystem, path string, fb *framebuf.Framebuffer, loop bool) error {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return framebuf.LoadBMP(fs, path, fb, 0, 0)
	}

	dec := framebuf.NewDecoder(fs, framebuf.RealDelayer{})
	for {
		err := dec.Play(context.Background(), path, fb, 0, 0, func() {
			fmt.Print("\033[H" + renderANSI(fb))
		})
		if err != nil || !loop {
			return err
		}
	}
}

// runInteractive puts stdin into raw mode and drives Scroll from arrow
// keys until 'q' is pressed.
func runInteractive(fb *framebuf.Framebuffer) {
	host := NewTerminalHost()
	host.Start()
	defer host.Stop()

	fmt.Print("\033[2J\033[H" + renderANSI(fb))
	fmt.Println("arrow keys scroll, q quits")

	var pending []byte
	for b := range host.Keys {
		pending = append(pending, b)
		if len(pending) == 1 && pending[0] == 'q' {
			return
		}
		dx, dy, consumed := decodeArrow(pending)
		if consumed {
			pending = nil
			if dx != 0 || dy != 0 {
				fb.Scroll(dx, dy)
				fmt.Print("\033[H" + renderANSI(fb))
			}
			continue
		}
		if len(pending) > 3 {
			pending = nil
		}
	}
}

// decodeArrow recognises a 3-byte ANSI cursor escape sequence (ESC [ A-D)
// at the head of buf. consumed is true once buf is either a complete
// sequence or is provably not the start of one.
func decodeArrow(buf []byte) (dx, dy int, consumed bool) {
	if len(buf) == 0 {
		return 0, 0, true
	}
	if buf[0] != 0x1B {
		return 0, 0, true
	}
	if len(buf) < 2 {
		return 0, 0, false
	}
	if buf[1] != '[' {
		return 0, 0, true
	}
	if len(buf) < 3 {
		return 0, 0, false
	}
	switch buf[2] {
	case 'A':
		return 0, -1, true
	case 'B':
		return 0, 1, true
	case 'C':
		return 1, 0, true
	case 'D':
		return -1, 0, true
	}
	return 0, 0, true
}
