package main

import (
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/caeli/internal/config"
	"git.lost.host/meutraa/caeli/internal/game"
	"git.lost.host/meutraa/caeli/internal/input"
	"git.lost.host/meutraa/caeli/internal/journal"
	"git.lost.host/meutraa/caeli/internal/parser"
	"git.lost.host/meutraa/caeli/internal/render"
	"git.lost.host/meutraa/caeli/internal/sound"
	"git.lost.host/meutraa/caeli/internal/theme"
)

const hitDecoration = 250 * time.Millisecond

type Program struct {
	Parser   parser.Parser
	Journal  journal.Journal
	Theme    theme.Theme
	Renderer render.Renderer
	Source   input.Source
	Clicker  *sound.Clicker

	config  *config.Config
	layout  game.Layout
	session *game.Session
	keymap  input.Keymap
	events  chan input.Event
	closers []func()

	// Frame each lane was last pressed, to release lanes when the
	// source cannot tell us
	pressedAt   []uint64
	activations []game.Activation
	hits        uint64
}

func NewProgram(c *config.Config) (*Program, error) {
	p := &Program{
		Parser: &parser.DefaultParser{},
		Theme:  &theme.DefaultTheme{},
		config: c,
		events: make(chan input.Event, 128),
	}

	var err error
	p.layout, err = c.Layout(p.Parser)
	if nil != err {
		return nil, err
	}
	p.session, err = p.layout.Session(game.WithSpeed(c.Speed))
	if nil != err {
		return nil, err
	}
	p.keymap, err = input.NewKeymap(c.Keys, c.Lanes)
	if nil != err {
		return nil, err
	}
	p.pressedAt = make([]uint64, c.Lanes)
	return p, nil
}

func (p *Program) onStop(f func()) {
	p.closers = append(p.closers, f)
}

// Start opens every device. Whatever was opened is closed again by Stop,
// even if Start fails part way.
func (p *Program) Start() error {
	c := p.config

	if nil == p.Journal && c.Journal != "" {
		j := &journal.DefaultJournal{Path: c.Journal}
		if err := j.Init(); nil != err {
			log.Println("journal disabled:", err)
		} else {
			p.Journal = j
			p.onStop(j.Deinit)
		}
	}

	if nil == p.Clicker && c.Sound {
		p.Clicker = sound.NewClicker()
		if err := p.Clicker.Init(); nil != err {
			log.Println("sound disabled:", err)
		}
		p.onStop(p.Clicker.Deinit)
	}

	if nil == p.Source {
		switch c.Input {
		case "evdev":
			p.Source = &input.EvdevSource{Device: c.Device}
		default:
			p.Source = &input.TerminalSource{}
		}
	}
	if err := p.Source.Start(p.events); nil != err {
		return err
	}
	p.onStop(func() {
		if err := p.Source.Close(); nil != err {
			log.Println("unable to close input", err)
		}
	})

	if nil == p.Renderer {
		p.Renderer = &render.DefaultRenderer{}
	}
	if err := p.Renderer.Init(); nil != err {
		return err
	}
	p.onStop(func() {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	})
	return nil
}

func (p *Program) Run() {
	p.Renderer.RenderLoop(p.config.FramePeriod, p.Frame)
}

func (p *Program) Stop() {
	for i := len(p.closers) - 1; i >= 0; i-- {
		p.closers[i]()
	}
	p.closers = nil
}

// Frame runs one tick: drain input, scroll the notes, draw
func (p *Program) Frame(n uint64) bool {
	if !p.Update() {
		return false
	}
	p.session.Tick()
	p.Render()
	return true
}

// Update applies the input received since the last frame. Returns false
// when asked to quit.
func (p *Program) Update() bool {
	p.releaseHeld()

	// only take what is already pending, never wait for input
	for i := len(p.events); i > 0; i-- {
		ev := <-p.events
		if ev.Quit {
			return false
		}
		lane, ok := p.keymap.Lane(ev.Symbol)
		if !ok {
			if p.config.Verbose {
				log.Printf("key %q is not bound to a lane", rune(ev.Symbol))
			}
			continue
		}
		if ev.Pressed {
			p.activate(lane)
		} else {
			p.session.Deactivate(lane)
		}
	}
	return true
}

func (p *Program) activate(lane int) {
	tick := p.session.TickCount()
	p.pressedAt[lane] = tick
	p.activations = append(p.activations, game.Activation{Section: lane, Tick: tick})
	if p.config.Verbose {
		log.Println("activate lane", lane, "at tick", tick)
	}

	for _, hit := range p.session.Activate(lane) {
		p.hits++
		log.Println("note detected:", hit)

		if nil != p.Clicker {
			p.Clicker.Click()
		}
		if nil != p.Renderer {
			l := render.NewLayout(p.Renderer, p.session.Track().SectionCount())
			row, col := render.HitPosition(l, lane)
			p.Renderer.AddDecoration(row, col, p.Theme.HitSymbol(), p.Theme.HitColor(), int(p.config.Frames(hitDecoration)))
		}
	}
}

// releaseHeld lets go of lanes pressed on sources without key releases
func (p *Program) releaseHeld() {
	if nil == p.Source || p.Source.Releases() {
		return
	}
	track := p.session.Track()
	tick := p.session.TickCount()
	hold := p.config.HoldFrames()
	for lane, at := range p.pressedAt {
		if track.IsActivated(lane) && tick-at >= hold {
			p.session.Deactivate(lane)
		}
	}
}

func (p *Program) Render() {
	p.Renderer.Clear()
	render.DrawSession(p.Renderer, p.Theme, p.session)
	p.text(0, 1, fmt.Sprintf(" tick %v  hits %v ", p.session.TickCount(), p.hits))
}

func (p *Program) text(row, col int, s string) {
	for i, r := range []rune(s) {
		p.Renderer.Fill(row, col+i, string(r), p.Theme.SeparatorColor(), p.Theme.LaneColor(false))
	}
}

// Save stores the session in the journal and logs how it compares
func (p *Program) Save() {
	if nil == p.Journal || len(p.activations) == 0 {
		return
	}
	if err := p.Journal.Save(p.layout, p.session.Speed(), p.activations); nil != err {
		log.Println(err)
		return
	}
	histories, err := p.Journal.Load(p.layout)
	if nil != err {
		log.Println(err)
		return
	}
	log.Printf("saved session, %v sessions played on this track", len(histories))
}
