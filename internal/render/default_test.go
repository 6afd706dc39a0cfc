package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

var red = color.RGBA{255, 0, 0, 255}

func TestFlushOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, 3, 4)

	r.flush()
	if strings.Count(out.String(), " ") != 12 {
		t.Errorf("expected a full first frame, got %q", out.String())
	}

	out.Reset()
	r.flush()
	if out.Len() != 0 {
		t.Errorf("expected nothing for an unchanged frame, got %q", out.String())
	}

	r.Fill(1, 2, "x", red, color.RGBA{})
	r.flush()
	if out.String() != "\033[2;3H\033[38;2;255;0;0;49mx" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestFillOffScreen(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, 3, 4)
	r.Fill(-1, 0, "x", red, red)
	r.Fill(3, 0, "x", red, red)
	r.Fill(0, 4, "x", red, red)
	for _, c := range r.back {
		if c != blank {
			t.Fatalf("off screen fill landed in %v", c)
		}
	}
}

func TestDecorations(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, 3, 4)
	bg := color.RGBA{1, 2, 3, 255}
	r.Fill(2, 1, " ", bg, bg)
	r.AddDecoration(2, 1, "*", red, 2)

	for frame := 0; frame < 2; frame++ {
		r.tickDecorations()
		c := r.back[2*4+1]
		if c.content != "*" || c.fg != red || c.bg != bg {
			t.Fatalf("frame %v: unexpected cell %v", frame, c)
		}
		r.Clear()
		r.Fill(2, 1, " ", bg, bg)
	}

	r.tickDecorations()
	if len(r.decorations) != 0 || r.back[2*4+1].content != " " {
		t.Errorf("decoration outlived its frames")
	}
}

func TestRenderLoopStops(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, 2, 2)
	frames := 0
	r.RenderLoop(0, func(n uint64) bool {
		if n != uint64(frames) {
			t.Errorf("expected frame %v, got %v", frames, n)
		}
		frames++
		return frames < 5
	})
	if frames != 5 {
		t.Errorf("expected 5 frames, got %v", frames)
	}
}
