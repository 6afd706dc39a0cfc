package sound

import (
	"math"
	"testing"
	"time"
)

func TestClickLength(t *testing.T) {
	s := newClick(clickFreq, 10*time.Millisecond, sampleRate)
	expected := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != expected {
		t.Errorf("expected %v samples, got %v", expected, total)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained click still streaming %v %v", n, ok)
	}
}

func TestClickDecays(t *testing.T) {
	s := newClick(clickFreq, clickDuration, sampleRate)
	n := sampleRate.N(clickDuration)
	buf := make([][2]float64, n)
	if got, _ := s.Stream(buf); got != n {
		t.Fatalf("expected %v samples, got %v", n, got)
	}

	peak := func(from, to int) float64 {
		p := 0.0
		for _, sample := range buf[from:to] {
			if sample[0] != sample[1] {
				t.Fatalf("channels differ %v", sample)
			}
			p = math.Max(p, math.Abs(sample[0]))
		}
		return p
	}
	head, tail := peak(0, n/4), peak(3*n/4, n)
	if head > 1 || head <= tail {
		t.Errorf("expected decaying click, head %v tail %v", head, tail)
	}
}

func TestClickerWithoutSpeaker(t *testing.T) {
	c := NewClicker()
	c.Click()
	if c.Pending() != 0 {
		t.Errorf("uninitialized clicker queued %v clicks", c.Pending())
	}
	c.Deinit()
}
