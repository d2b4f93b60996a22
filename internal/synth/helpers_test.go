package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// sliceStreamer plays fixed frames and then silence.
type sliceStreamer struct {
	frames [][2]float64
	pos    int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos < len(s.frames) {
			samples[i] = s.frames[s.pos]
		} else {
			samples[i] = [2]float64{}
		}
		s.pos++
	}
	return len(samples), true
}

func (s *sliceStreamer) Err() error { return nil }

func impulse(n int) *sliceStreamer {
	frames := make([][2]float64, n)
	frames[0] = [2]float64{1, 1}
	return &sliceStreamer{frames: frames}
}

type sineStreamer struct {
	freq, rate, phase float64
}

func (s *sineStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i] = [2]float64{v, v}
		s.phase += s.freq / s.rate
	}
	return len(samples), true
}

func (s *sineStreamer) Err() error { return nil }

func render(s beep.Streamer, n int) [][2]float64 {
	out := make([][2]float64, n)
	s.Stream(out)
	return out
}

func peak(frames [][2]float64, ch int) float64 {
	var p float64
	for _, f := range frames {
		p = math.Max(p, math.Abs(f[ch]))
	}
	return p
}
