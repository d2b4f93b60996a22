package synth

import (
	"time"

	"github.com/gopxl/beep"
)

// DelayConfig describes a ping-pong delay.
type DelayConfig struct {
	Time     time.Duration
	Feedback float64
	Wet      float64 // 0 dry, 1 fully wet
}

// pingPong echoes the mono sum of its input alternately left and right. The
// first echo lands left after Time, the next right after 2*Time, and so on,
// each scaled by Feedback.
type pingPong struct {
	src      beep.Streamer
	left     []float64
	right    []float64
	pos      int
	feedback float64
	wet      float64
}

func newPingPong(src beep.Streamer, cfg DelayConfig, rate beep.SampleRate) *pingPong {
	n := rate.N(cfg.Time)
	if n < 1 {
		n = 1
	}
	return &pingPong{
		src:      src,
		left:     make([]float64, n),
		right:    make([]float64, n),
		feedback: cfg.Feedback,
		wet:      cfg.Wet,
	}
}

func (d *pingPong) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.src.Stream(samples)
	dry := 1 - d.wet
	for i := range samples[:n] {
		in := (samples[i][0] + samples[i][1]) / 2
		outL := d.left[d.pos]
		outR := d.right[d.pos]
		d.left[d.pos] = in + outR*d.feedback
		d.right[d.pos] = outL * d.feedback
		d.pos++
		if d.pos == len(d.left) {
			d.pos = 0
		}
		samples[i][0] = samples[i][0]*dry + outL*d.wet
		samples[i][1] = samples[i][1]*dry + outR*d.wet
	}
	return n, ok
}

func (d *pingPong) Err() error { return d.src.Err() }
