package framebuf

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentDecodersDoNotInterfere runs several independent Decoder
// sessions over separate Framebuffers at once, exercising the package's
// design of carrying zero mutable state outside a *Decoder value.
func TestConcurrentDecodersDoNotInterfere(t *testing.T) {
	const sessions = 8
	fs := memFS{"a.gif": buildMinimalGIF()}

	fbs := make([]*Framebuffer, sessions)
	for i := range fbs {
		fb, err := NewFrameBuffer(make([]byte, 2*1*2), 2, 1, RGB565)
		if err != nil {
			t.Fatal(err)
		}
		fbs[i] = fb
	}

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < sessions; i++ {
		i := i
		g.Go(func() error {
			d := NewDecoder(fs, nil)
			return d.Play(ctx, "a.gif", fbs[i], 0, 0, nil)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i, fb := range fbs {
		r0, g0, b0 := fb.RGB(0, 0)
		if r0 == 0 || g0 != 0 || b0 != 0 {
			t.Fatalf("session %d: pixel (0,0) = (%d,%d,%d), want red-dominant", i, r0, g0, b0)
		}
		r1, g1, b1 := fb.RGB(1, 0)
		if r1 != 0 || g1 == 0 || b1 != 0 {
			t.Fatalf("session %d: pixel (1,0) = (%d,%d,%d), want green-dominant", i, r1, g1, b1)
		}
	}
}
