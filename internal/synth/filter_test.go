package synth

import (
	"testing"

	"github.com/gopxl/beep"
)

func TestLowpassAttenuatesAboveCutoff(t *testing.T) {
	const rate = 48000
	cfg := FilterConfig{Cutoff: 1200, Q: 1, Stages: 2}

	tests := []struct {
		name     string
		freq     float64
		min, max float64
	}{
		{"passband", 100, 0.9, 1.1},
		{"stopband", 8000, 0, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp := newLowpass(&sineStreamer{freq: tt.freq, rate: rate}, cfg, beep.SampleRate(rate))
			out := render(lp, rate/5)
			// Skip the settling transient.
			tail := out[len(out)/2:]
			for ch := 0; ch < 2; ch++ {
				if p := peak(tail, ch); p < tt.min || p > tt.max {
					t.Errorf("channel %d peak = %v, want [%v, %v]", ch, p, tt.min, tt.max)
				}
			}
		})
	}
}

func TestLowpassDefaultsStagesAndQ(t *testing.T) {
	lp := newLowpass(&sineStreamer{}, FilterConfig{Cutoff: 500}, beep.SampleRate(8000))
	if len(lp.stages) != 1 {
		t.Errorf("stages = %d, want 1", len(lp.stages))
	}
}
