package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// click is a short sine burst with an exponential decay
type click struct {
	freq     float64
	rate     beep.SampleRate
	length   int
	position int
}

func newClick(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &click{freq: freq, rate: rate, length: rate.N(duration)}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.length {
			return i, i > 0
		}
		t := float64(c.position) / float64(c.rate)
		decay := math.Exp(-6 * float64(c.position) / float64(c.length))
		val := 0.4 * decay * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = val
		samples[i][1] = val
		c.position++
	}
	return len(samples), true
}

func (c *click) Err() error { return nil }
