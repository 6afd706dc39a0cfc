package config

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/caeli/internal/game"
	"git.lost.host/meutraa/caeli/internal/input"
	"git.lost.host/meutraa/caeli/internal/parser"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.1.0"

type Config struct {
	Lanes       int
	Speed       float64
	Keys        string
	FramePeriod time.Duration
	Hold        time.Duration // How long a lane stays active when the input cannot report releases
	Input       string
	Device      string
	Notes       []string
	Journal     string
	LogFile     string
	Sound       bool
	Verbose     bool
}

func newApp(c *Config) *kingpin.Application {
	app := kingpin.New("caeli", "Intercept the falling notes by pressing their lanes.")
	app.Version(Version)
	app.HelpFlag.Short('h')

	app.Flag("lanes", "Number of track lanes").Default("9").Short('l').IntVar(&c.Lanes)
	app.Flag("speed", "Note scroll per frame").Default("0.00005").Short('s').Float64Var(&c.Speed)
	app.Flag("keys", "Keys for each lane, in order").Default(input.DefaultKeys).Short('k').StringVar(&c.Keys)
	app.Flag("frame-period", "Render frame period").Default("1ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("hold", "Lane hold time for inputs without key release").Default("150ms").DurationVar(&c.Hold)
	app.Flag("input", "Input source").Default("terminal").Short('i').EnumVar(&c.Input, "terminal", "evdev")
	app.Flag("device", "Keyboard device for evdev input").Default("/dev/input/event0").StringVar(&c.Device)
	app.Flag("note", "Note as begin:width:position, repeatable").Short('n').StringsVar(&c.Notes)
	app.Flag("journal", "Session journal database, empty to disable").Default("./caeli.db").Short('j').StringVar(&c.Journal)
	app.Flag("log", "Log file while the game is running").Default("./caeli.log").StringVar(&c.LogFile)
	app.Flag("sound", "Click on every hit").Default("true").BoolVar(&c.Sound)
	app.Flag("verbose", "Log every lane event").Short('v').BoolVar(&c.Verbose)
	return app
}

func Parse(args []string) (*Config, error) {
	c := &Config{}
	if _, err := newApp(c).Parse(args); nil != err {
		return nil, err
	}
	if c.Lanes < 1 {
		return nil, fmt.Errorf("need at least one lane, got %v", c.Lanes)
	}
	if c.FramePeriod <= 0 {
		return nil, fmt.Errorf("frame period must be positive, got %v", c.FramePeriod)
	}
	if c.Hold <= 0 {
		return nil, fmt.Errorf("hold must be positive, got %v", c.Hold)
	}
	return c, nil
}

// Layout uses the configured notes, or the demo notes when none were given
func (c *Config) Layout(p parser.Parser) (game.Layout, error) {
	layout := game.DefaultLayout()
	layout.Sections = c.Lanes
	if len(c.Notes) == 0 {
		return layout, nil
	}
	notes, err := p.Parse(c.Notes)
	if nil != err {
		return layout, fmt.Errorf("unable to parse notes: %w", err)
	}
	layout.Notes = notes
	return layout, nil
}

// Frames converts a duration into a number of frames, at least one
func (c *Config) Frames(d time.Duration) uint64 {
	n := uint64(d / c.FramePeriod)
	if n < 1 {
		return 1
	}
	return n
}

func (c *Config) HoldFrames() uint64 {
	return c.Frames(c.Hold)
}
