package synth

import "github.com/gopxl/beep"

// Bus is a shared effect destination. Voices add their signal to the bus
// input while the voice mixer streams; the bus then runs the summed input
// through its effect. The engine streams all voices before any bus.
type Bus struct {
	in     [][2]float64
	effect beep.Streamer
}

func newBus(build func(input beep.Streamer) beep.Streamer) *Bus {
	b := &Bus{}
	b.effect = build(busInput{b})
	return b
}

// send accumulates samples into the bus input.
func (b *Bus) send(samples [][2]float64) {
	if len(b.in) < len(samples) {
		grown := make([][2]float64, len(samples))
		copy(grown, b.in)
		b.in = grown
	}
	for i := range samples {
		b.in[i][0] += samples[i][0]
		b.in[i][1] += samples[i][1]
	}
}

func (b *Bus) Stream(samples [][2]float64) (int, bool) {
	return b.effect.Stream(samples)
}

func (b *Bus) Err() error { return b.effect.Err() }

// busInput drains the accumulated sends, padding with silence.
type busInput struct {
	b *Bus
}

func (in busInput) Stream(samples [][2]float64) (int, bool) {
	n := copy(samples, in.b.in)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	for i := range in.b.in[:n] {
		in.b.in[i] = [2]float64{}
	}
	return len(samples), true
}

func (in busInput) Err() error { return nil }
