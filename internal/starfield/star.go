package starfield

import (
	"image/color"
	"math"
	"time"
)

// Tone is the colour state of a star.
type Tone int

const (
	// ToneNeutral is the translucent pre-activation colour.
	ToneNeutral Tone = iota
	// ToneHighlight is the solid colour of a star spawned already past the midpoint.
	ToneHighlight
	// ToneFading is the highlight colour with the star's current opacity as alpha.
	ToneFading
)

// AudioParams are fixed when a star spawns and never recomputed.
type AudioParams struct {
	Note      Note
	Intensity float64 // 0-1, from size
	Pan       float64 // -1 (left) to 1 (right)
	VolumeDB  float64
}

// Voice is the synthesizer voice bound to a single star.
type Voice interface {
	// ConnectEffects routes the voice into the shared effects chain.
	ConnectEffects()
	TriggerAttackRelease(note Note, d time.Duration)
	// Dispose hands the voice back to the backend. It may finish sounding.
	Dispose()
}

// Backend creates one voice per star.
type Backend interface {
	NewVoice(p AudioParams) Voice
}

// Star is a single drifting particle with one bound voice.
type Star struct {
	X, Y      float64
	Size      float64
	Opacity   float64
	Tone      Tone
	Activated bool
	Manual    bool
	Audio     AudioParams

	voice Voice
}

// Color returns the draw colour for the star's current tone.
func (s *Star) Color(p Palette) color.NRGBA {
	switch s.Tone {
	case ToneHighlight:
		return toNRGBA(p.Highlight, 1)
	case ToneFading:
		return toNRGBA(p.Highlight, s.Opacity)
	default:
		return toNRGBA(p.Neutral, p.NeutralAlpha)
	}
}

// fade advances the opacity counter, saturating at 1.
func (s *Star) fade(step float64) {
	if s.Opacity >= 1 {
		return
	}
	s.Opacity = math.Min(1, s.Opacity+step)
	s.Tone = ToneFading
}

// trigger fires the star's note once. It reports whether a note was played.
func (s *Star) trigger(d time.Duration) bool {
	if s.Activated {
		return false
	}
	s.voice.ConnectEffects()
	s.voice.TriggerAttackRelease(s.Audio.Note, d)
	s.Activated = true
	return true
}

type nopVoice struct{}

func (nopVoice) ConnectEffects() {}

func (nopVoice) TriggerAttackRelease(Note, time.Duration) {}

func (nopVoice) Dispose() {}
