package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// FilterConfig describes a cascaded lowpass. Each stage adds 12dB/octave.
type FilterConfig struct {
	Cutoff float64 // Hz
	Q      float64
	Stages int
}

// biquad is one second-order lowpass section with per-channel state.
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     [2]float64
}

func newLowpassBiquad(cutoff, q, rate float64) biquad {
	w0 := 2 * math.Pi * cutoff / rate
	cosw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	a0 := 1 + alpha
	return biquad{
		b0: (1 - cosw) / 2 / a0,
		b1: (1 - cosw) / a0,
		b2: (1 - cosw) / 2 / a0,
		a1: -2 * cosw / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *biquad) process(ch int, x float64) float64 {
	y := f.b0*x + f.b1*f.x1[ch] + f.b2*f.x2[ch] - f.a1*f.y1[ch] - f.a2*f.y2[ch]
	f.x2[ch] = f.x1[ch]
	f.x1[ch] = x
	f.y2[ch] = f.y1[ch]
	f.y1[ch] = y
	return y
}

type lowpass struct {
	src    beep.Streamer
	stages []biquad
}

// newLowpass wraps src in a cascade of lowpass biquads.
func newLowpass(src beep.Streamer, cfg FilterConfig, rate beep.SampleRate) *lowpass {
	stages := cfg.Stages
	if stages < 1 {
		stages = 1
	}
	q := cfg.Q
	if q <= 0 {
		q = math.Sqrt2 / 2
	}
	lp := &lowpass{src: src, stages: make([]biquad, stages)}
	for i := range lp.stages {
		lp.stages[i] = newLowpassBiquad(cfg.Cutoff, q, float64(rate))
	}
	return lp
}

func (lp *lowpass) Stream(samples [][2]float64) (int, bool) {
	n, ok := lp.src.Stream(samples)
	for i := range samples[:n] {
		for ch := 0; ch < 2; ch++ {
			v := samples[i][ch]
			for s := range lp.stages {
				v = lp.stages[s].process(ch, v)
			}
			samples[i][ch] = v
		}
	}
	return n, ok
}

func (lp *lowpass) Err() error { return lp.src.Err() }
