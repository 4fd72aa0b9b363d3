//go:build windows

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// TerminalHost reads raw stdin and delivers translated key bytes over Keys.
// Windows has no non-blocking syscall.Read equivalent wired up by
// golang.org/x/term, so this mirrors the teacher's windows variant
// (terminal_host_windows.go) instead: a blocking os.Stdin.Read in its own
// goroutine, stopped by closing stdin's read being abandoned at process
// exit rather than a non-blocking poll loop.
type TerminalHost struct {
	Keys chan byte

	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter that reads raw stdin bytes.
func NewTerminalHost() *TerminalHost {
	return &TerminalHost{
		Keys:   make(chan byte, 16),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw mode and begins reading in a goroutine. Call
// Stop() to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := os.Stdin.Read(buf)
			if n > 0 {
				b := buf[0]
				if b == '\r' {
					b = '\n'
				}
				if b == 0x7F {
					b = 0x08
				}
				select {
				case h.Keys <- b:
				default:
				}
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop signals the stdin reading goroutine to exit and restores terminal
// state. It does not wait for the goroutine: a pending blocking read is
// left to return on its own.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
