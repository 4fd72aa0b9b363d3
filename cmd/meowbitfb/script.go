package main

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/qq65412857/micropython-meowbit/framebuf"
)

// registerFB exposes a subset of *framebuf.Framebuffer's drawing methods
// as Lua globals closing over fb, the way the original firmware's
// MicroPython bytecode calls into the same C engine through its "host
// object/runtime system that marshals arguments" (spec.md §1, §9). This
// is that marshalling layer's concrete stand-in, kept outside the pure
// engine package.
func registerFB(L *lua.LState, fb *framebuf.Framebuffer) {
	L.SetGlobal("fb_pixel", L.NewFunction(func(L *lua.LState) int {
		x := L.CheckInt(1)
		y := L.CheckInt(2)
		col := uint32(L.CheckInt64(3))
		fb.Pixel(x, y, col)
		return 0
	}))

	L.SetGlobal("fb_line", L.NewFunction(func(L *lua.LState) int {
		x0, y0 := L.CheckInt(1), L.CheckInt(2)
		x1, y1 := L.CheckInt(3), L.CheckInt(4)
		col := uint32(L.CheckInt64(5))
		fb.Line(x0, y0, x1, y1, col)
		return 0
	}))

	L.SetGlobal("fb_rect", L.NewFunction(func(L *lua.LState) int {
		x, y, w, h := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
		col := uint32(L.CheckInt64(5))
		fill := L.OptBool(6, false)
		fb.Rect(x, y, w, h, col, fill)
		return 0
	}))

	L.SetGlobal("fb_circle", L.NewFunction(func(L *lua.LState) int {
		cx, cy, r := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)
		col := uint32(L.CheckInt64(4))
		fill := L.OptBool(5, false)
		fb.Circle(cx, cy, r, col, fill)
		return 0
	}))

	L.SetGlobal("fb_text", L.NewFunction(func(L *lua.LState) int {
		s := L.CheckString(1)
		x, y := L.CheckInt(2), L.CheckInt(3)
		col := uint32(L.OptInt64(4, 1))
		fb.Text(s, x, y, col)
		return 0
	}))

	L.SetGlobal("fb_fill", L.NewFunction(func(L *lua.LState) int {
		fb.Fill(uint32(L.CheckInt64(1)))
		return 0
	}))

	L.SetGlobal("fb_scroll", L.NewFunction(func(L *lua.LState) int {
		fb.Scroll(L.CheckInt(1), L.CheckInt(2))
		return 0
	}))

	L.SetGlobal("fb_width", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(fb.Width()))
		return 1
	}))
	L.SetGlobal("fb_height", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(fb.Height()))
		return 1
	}))
}

// runScript executes a Lua script file against fb and returns any error
// from the Lua runtime.
func runScript(path string, fb *framebuf.Framebuffer) error {
	L := lua.NewState()
	defer L.Close()
	registerFB(L, fb)
	return L.DoFile(path)
}
