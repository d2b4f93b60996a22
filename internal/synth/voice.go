package synth

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform selects the oscillator shape of a voice.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSawtooth
)

// ParseWaveform maps a waveform name onto a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sine":
		return WaveSine, nil
	case "triangle":
		return WaveTriangle, nil
	case "square":
		return WaveSquare, nil
	case "sawtooth", "saw":
		return WaveSawtooth, nil
	}
	return 0, fmt.Errorf("unknown waveform %q", name)
}

func (w Waveform) sample(phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// VoiceOptions configures a new voice.
type VoiceOptions struct {
	Waveform Waveform
	Envelope Envelope
	Pan      float64
	VolumeDB float64
}

// oscillator renders the raw enveloped tone of a voice.
type oscillator struct {
	wave  Waveform
	freq  float64
	phase float64
	rate  float64
	env   envelopeGen
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.env.idle() {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}
	for i := range samples {
		v := o.wave.sample(o.phase) * o.env.next()
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / o.rate
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// tap copies the pre-pan signal into every connected bus.
type tap struct {
	src   beep.Streamer
	sends []*Bus
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	for _, b := range t.sends {
		b.send(samples[:n])
	}
	return n, ok
}

func (t *tap) Err() error { return t.src.Err() }

// Voice is a single synthesizer voice: oscillator, envelope, volume and
// panner, with optional sends into effect buses. All methods are safe to call
// while the engine is streaming.
type Voice struct {
	engine   *Engine
	osc      *oscillator
	volume   *effects.Volume
	tap      *tap
	out      *effects.Pan
	disposed bool
}

func newVoice(e *Engine, opts VoiceOptions) *Voice {
	osc := &oscillator{
		wave: opts.Waveform,
		rate: float64(e.rate),
		env:  newEnvelopeGen(opts.Envelope, e.rate),
	}
	vol := &effects.Volume{Streamer: osc, Base: 10, Volume: opts.VolumeDB / 20}
	t := &tap{src: vol}
	return &Voice{
		engine: e,
		osc:    osc,
		volume: vol,
		tap:    t,
		out:    &effects.Pan{Streamer: t, Pan: clampPan(opts.Pan)},
	}
}

// SetVolume sets the voice level in decibels.
func (v *Voice) SetVolume(db float64) {
	v.engine.mu.Lock()
	v.volume.Volume = db / 20
	v.engine.mu.Unlock()
}

// Connect adds a pre-pan send from the voice into b.
func (v *Voice) Connect(b *Bus) {
	v.engine.mu.Lock()
	defer v.engine.mu.Unlock()
	for _, s := range v.tap.sends {
		if s == b {
			return
		}
	}
	v.tap.sends = append(v.tap.sends, b)
}

// TriggerAttack starts a note at freq that sustains until TriggerRelease.
func (v *Voice) TriggerAttack(freq float64) {
	v.engine.mu.Lock()
	v.osc.freq = freq
	v.osc.env.gateOn()
	v.engine.mu.Unlock()
}

// TriggerRelease releases the sounding note.
func (v *Voice) TriggerRelease() {
	v.engine.mu.Lock()
	v.osc.env.gateOff()
	v.engine.mu.Unlock()
}

// TriggerAttackRelease plays freq and releases it after d.
func (v *Voice) TriggerAttackRelease(freq float64, d time.Duration) {
	v.engine.mu.Lock()
	v.osc.freq = freq
	v.osc.env.gateFor(v.engine.rate.N(d))
	v.engine.mu.Unlock()
}

// Dispose marks the voice for removal. It keeps sounding until its envelope
// has finished, then drops out of the mix.
func (v *Voice) Dispose() {
	v.engine.mu.Lock()
	v.disposed = true
	v.engine.mu.Unlock()
}

// Active reports whether the envelope is producing sound.
func (v *Voice) Active() bool {
	v.engine.mu.Lock()
	defer v.engine.mu.Unlock()
	return !v.osc.env.idle()
}

// Stream is called by the engine mixer with the engine lock held.
func (v *Voice) Stream(samples [][2]float64) (int, bool) {
	if v.disposed && v.osc.env.idle() {
		return 0, false
	}
	return v.out.Stream(samples)
}

func (v *Voice) Err() error { return nil }

func clampPan(p float64) float64 {
	return math.Max(-1, math.Min(1, p))
}
