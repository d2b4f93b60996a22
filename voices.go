package main

import (
	"time"

	"starsynth/internal/starfield"
	"starsynth/internal/synth"
)

// engineBackend gives every star its own synth voice.
type engineBackend struct {
	engine *synth.Engine
}

func (b engineBackend) NewVoice(p starfield.AudioParams) starfield.Voice {
	return &starVoice{
		voice: b.engine.NewStarVoice(p.Pan, p.VolumeDB),
		delay: b.engine.Delay(),
	}
}

type starVoice struct {
	voice *synth.Voice
	delay *synth.Bus
}

func (v *starVoice) ConnectEffects() { v.voice.Connect(v.delay) }

func (v *starVoice) TriggerAttackRelease(n starfield.Note, d time.Duration) {
	v.voice.TriggerAttackRelease(n.Frequency(), d)
}

func (v *starVoice) Dispose() { v.voice.Dispose() }
