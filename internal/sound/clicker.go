package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickFreq     = 1760.0
	clickDuration = 40 * time.Millisecond
)

// Clicker plays a click for every hit. Until Init succeeds Click does nothing,
// so the game still runs without an audio device.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(newClick(clickFreq, clickDuration, sampleRate))
	speaker.Unlock()
}

// Pending is the number of clicks still playing
func (c *Clicker) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return c.mixer.Len()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return c.mixer.Len()
}

func (c *Clicker) Deinit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
