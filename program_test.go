package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/caeli/internal/config"
	"git.lost.host/meutraa/caeli/internal/input"
	"git.lost.host/meutraa/caeli/internal/journal"
	"git.lost.host/meutraa/caeli/internal/render"
)

type fakeSource struct {
	releases bool
	started  bool
	closed   bool
}

func (s *fakeSource) Start(events chan<- input.Event) error {
	s.started = true
	return nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func (s *fakeSource) Releases() bool { return s.releases }

// fakeRenderer draws into a buffer instead of taking over the terminal
type fakeRenderer struct {
	*render.DefaultRenderer
	initialized bool
}

func (r *fakeRenderer) Init() error {
	r.initialized = true
	return nil
}

func (r *fakeRenderer) Deinit() error {
	r.initialized = false
	return nil
}

func newProgram(t *testing.T, releases bool, args ...string) *Program {
	t.Helper()
	c, err := config.Parse(append([]string{"--no-sound", "--journal", ""}, args...))
	if nil != err {
		t.Fatal(err)
	}
	p, err := NewProgram(c)
	if nil != err {
		t.Fatal(err)
	}
	p.Source = &fakeSource{releases: releases}
	p.Renderer = &fakeRenderer{DefaultRenderer: render.NewRenderer(&bytes.Buffer{}, 25, 90)}
	return p
}

func TestFrameHit(t *testing.T) {
	p := newProgram(t, true, "--speed", "0", "-n", "0:1:0.15", "-n", "4:1:0.5")

	p.events <- input.Event{Symbol: 'a', Pressed: true}
	p.events <- input.Event{Symbol: 't', Pressed: true}
	if !p.Frame(0) {
		t.Fatal("frame asked to quit")
	}
	if p.hits != 1 {
		t.Errorf("expected 1 hit, got %v", p.hits)
	}
	if len(p.activations) != 2 {
		t.Errorf("expected 2 activations, got %v", p.activations)
	}
	track := p.session.Track()
	if !track.IsActivated(0) || !track.IsActivated(4) {
		t.Error("pressed lanes not active")
	}

	p.events <- input.Event{Symbol: 'a', Pressed: false}
	p.Frame(1)
	if track.IsActivated(0) || !track.IsActivated(4) {
		t.Error("released lane still active")
	}
}

func TestFrameScrolls(t *testing.T) {
	p := newProgram(t, true, "--speed", "0.25", "-n", "0:1:1.0")
	for n := uint64(0); n < 3; n++ {
		p.Frame(n)
	}
	if p.session.TickCount() != 3 || p.session.Notes()[0].Position() != 0.25 {
		t.Errorf("unexpected session after 3 frames: tick %v position %v",
			p.session.TickCount(), p.session.Notes()[0].Position())
	}
}

func TestUnboundKey(t *testing.T) {
	// The tenth default key has no lane on a nine lane track
	p := newProgram(t, true)
	p.events <- input.Event{Symbol: 'p', Pressed: true}
	p.events <- input.Event{Symbol: 'q', Pressed: true}
	if !p.Frame(0) {
		t.Fatal("frame asked to quit")
	}
	if len(p.activations) != 0 {
		t.Errorf("unbound keys activated %v", p.activations)
	}
}

func TestQuit(t *testing.T) {
	p := newProgram(t, true)
	p.events <- input.Event{Quit: true}
	if p.Frame(0) {
		t.Error("expected frame to quit")
	}
}

func TestAutoRelease(t *testing.T) {
	p := newProgram(t, false, "--frame-period", "10ms", "--hold", "30ms")
	track := p.session.Track()

	p.events <- input.Event{Symbol: 'e', Pressed: true}
	p.Frame(0)
	for n := uint64(1); n < 3; n++ {
		p.Frame(n)
		if !track.IsActivated(2) {
			t.Fatalf("lane released early at frame %v", n)
		}
	}
	p.Frame(3)
	if track.IsActivated(2) {
		t.Error("lane not released after hold")
	}
}

func TestStartStop(t *testing.T) {
	p := newProgram(t, true)
	if err := p.Start(); nil != err {
		t.Fatal(err)
	}
	src := p.Source.(*fakeSource)
	r := p.Renderer.(*fakeRenderer)
	if !src.started || !r.initialized {
		t.Error("source or renderer not started")
	}
	p.Stop()
	if !src.closed || r.initialized {
		t.Error("source or renderer not stopped")
	}
}

func TestSave(t *testing.T) {
	p := newProgram(t, true)
	j := &journal.DefaultJournal{Path: filepath.Join(t.TempDir(), "caeli.db")}
	if err := j.Init(); nil != err {
		t.Fatal(err)
	}
	defer j.Deinit()
	p.Journal = j

	p.events <- input.Event{Symbol: 'a', Pressed: true}
	p.Frame(0)
	p.Save()

	histories, err := j.Load(p.layout)
	if nil != err {
		t.Fatal(err)
	}
	if len(histories) != 1 || len(histories[0].Activations) != 1 {
		t.Errorf("unexpected histories %+v", histories)
	}
}
