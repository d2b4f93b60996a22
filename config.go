package main

import (
	"fmt"
	"time"

	"starsynth/internal/config"
	"starsynth/internal/starfield"
	"starsynth/internal/synth"
)

// Runtime constants that are not worth exposing in the YAML config.
const (
	pgoRecordDuration     = 15 * time.Second
	pgoProfilePath        = "default.pgo"
	statsWindowTicks      = 600
	autoplayMinGap        = 4 // ticks between scripted injections
	autoplayMaxGap        = 24
	autoplaySpeedChance   = 40 // one speed change per this many injections
	defaultAudioBufferDur = 50 * time.Millisecond
)

// fieldOptions maps the config onto the star field settings.
func fieldOptions(cfg *config.Config) starfield.Options {
	f := cfg.Field
	return starfield.Options{
		Width:              float64(cfg.Window.Width),
		Height:             float64(cfg.Window.Height),
		MinSize:            f.MinSize,
		MaxSize:            f.MaxSize,
		StarCount:          f.StarCount,
		Speed:              f.Speed,
		SpeedIncrement:     f.SpeedIncrement,
		Octaves:            f.Octaves,
		InitialOpacity:     f.InitialOpacity,
		OpacityStep:        f.OpacityStep,
		ManualPadding:      f.ManualPadding,
		ManualTopOffset:    f.ManualTopOffset,
		ManualBottomOffset: f.ManualBottomOffset,
		MinVolumeDB:        cfg.Voice.MinVolumeDB,
		MaxVolumeDB:        cfg.Voice.MaxVolumeDB,
		NoteLength:         cfg.Voice.NoteLength,
	}
}

// engineConfig maps the config onto the synth engine settings.
func engineConfig(cfg *config.Config) (synth.Config, error) {
	voiceWave, err := synth.ParseWaveform(cfg.Voice.Waveform)
	if err != nil {
		return synth.Config{}, fmt.Errorf("voice: %w", err)
	}
	droneWave, err := synth.ParseWaveform(cfg.Drone.Waveform)
	if err != nil {
		return synth.Config{}, fmt.Errorf("drone: %w", err)
	}

	drones := make([]synth.DroneVoice, 0, len(cfg.Drone.Voices))
	for _, dv := range cfg.Drone.Voices {
		drones = append(drones, synth.DroneVoice{Note: dv.Note, Pan: dv.Pan})
	}

	return synth.Config{
		SampleRate:     cfg.Audio.SampleRate,
		MasterVolumeDB: cfg.Audio.MasterVolumeDB,
		Voice: synth.VoiceTemplate{
			Waveform: voiceWave,
			Envelope: synth.Envelope{
				Attack:  cfg.Voice.Attack,
				Decay:   cfg.Voice.Decay,
				Sustain: cfg.Voice.Sustain,
				Release: cfg.Voice.Release,
			},
		},
		Drone: synth.DroneConfig{
			Voices:   drones,
			Waveform: droneWave,
			Envelope: synth.Envelope{Attack: cfg.Drone.Attack, Sustain: 1, Release: cfg.Drone.Release},
			VolumeDB: cfg.Drone.VolumeDB,
		},
		Filter: synth.FilterConfig{
			Cutoff: cfg.Effects.Filter.Cutoff,
			Q:      cfg.Effects.Filter.Q,
			Stages: cfg.Effects.Filter.Stages,
		},
		Delay: synth.DelayConfig{
			Time:     cfg.Effects.Delay.Time,
			Feedback: cfg.Effects.Delay.Feedback,
			Wet:      cfg.Effects.Delay.Wet,
		},
	}, nil
}

func paletteFromConfig(cfg *config.Config) (starfield.Palette, error) {
	p := cfg.Palette
	return starfield.ParsePalette(p.Background, p.Neutral, p.Highlight, p.NeutralAlpha, p.MidpointAlpha)
}
