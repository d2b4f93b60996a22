// Package synth is the audio backend: star voices, a sustained drone layer and
// a shared effects chain, rendered as beep streamers.
package synth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// DroneVoice is one sustained voice of the drone layer.
type DroneVoice struct {
	Note string
	Pan  float64
}

// DroneConfig describes the drone layer.
type DroneConfig struct {
	Voices   []DroneVoice
	Waveform Waveform
	Envelope Envelope
	VolumeDB float64
}

// VoiceTemplate is the sound shared by every star voice.
type VoiceTemplate struct {
	Waveform Waveform
	Envelope Envelope
}

// Config describes the whole engine.
type Config struct {
	SampleRate     int
	MasterVolumeDB float64

	Voice VoiceTemplate

	Drone  DroneConfig
	Filter FilterConfig
	Delay  DelayConfig
}

// DefaultConfig returns the stock sound: sine stars into a ping-pong delay
// over four filtered sine drones.
func DefaultConfig() Config {
	return Config{
		SampleRate:     48000,
		MasterVolumeDB: -8,
		Voice: VoiceTemplate{
			Waveform: WaveSine,
			Envelope: Envelope{
				Attack:  5 * time.Millisecond,
				Decay:   100 * time.Millisecond,
				Sustain: 0.3,
				Release: time.Second,
			},
		},
		Drone: DroneConfig{
			Voices: []DroneVoice{
				{Note: "g2", Pan: -1},
				{Note: "c2", Pan: 1},
				{Note: "c3"},
				{Note: "e3"},
			},
			Waveform: WaveSine,
			Envelope: Envelope{Attack: 2 * time.Second, Sustain: 1, Release: 2 * time.Second},
			VolumeDB: -20,
		},
		Filter: FilterConfig{Cutoff: 1200, Q: 1, Stages: 2},
		Delay:  DelayConfig{Time: 500 * time.Millisecond, Feedback: 0.6, Wet: 0.3},
	}
}

type drone struct {
	voice *Voice
	freq  float64
}

// Engine owns the mix graph:
//
//	drones -> panners -> lowpass ----\
//	star voices -> panners ----------+-> master volume -> out
//	star voices (sends) -> ping-pong /
//
// Engine is safe for concurrent use: the game goroutine creates and triggers
// voices while the audio goroutine calls Stream.
type Engine struct {
	mu   sync.Mutex
	rate beep.SampleRate
	cfg  Config

	voices   *beep.Mixer
	droneMix *beep.Mixer
	drones   []drone
	delay    *Bus
	master   *effects.Volume
}

// NewEngine builds the effects chain and drone layer.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.SampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	e := &Engine{
		rate:     beep.SampleRate(cfg.SampleRate),
		cfg:      cfg,
		voices:   &beep.Mixer{},
		droneMix: &beep.Mixer{},
	}
	for _, dv := range cfg.Drone.Voices {
		midi, err := ParseNote(dv.Note)
		if err != nil {
			return nil, fmt.Errorf("drone voice: %w", err)
		}
		v := newVoice(e, VoiceOptions{
			Waveform: cfg.Drone.Waveform,
			Envelope: cfg.Drone.Envelope,
			Pan:      dv.Pan,
			VolumeDB: cfg.Drone.VolumeDB,
		})
		e.droneMix.Add(v)
		e.drones = append(e.drones, drone{voice: v, freq: MIDIToFreq(midi)})
	}
	e.delay = newBus(func(in beep.Streamer) beep.Streamer {
		return newPingPong(in, cfg.Delay, e.rate)
	})

	mix := &beep.Mixer{}
	// Order matters: voices feed the delay bus during their own Stream call.
	mix.Add(newLowpass(e.droneMix, cfg.Filter, e.rate), e.voices, e.delay)
	e.master = &effects.Volume{Streamer: mix, Base: 10, Volume: cfg.MasterVolumeDB / 20}
	return e, nil
}

// SampleRate reports the output sample rate.
func (e *Engine) SampleRate() beep.SampleRate { return e.rate }

// NewVoice creates a voice routed to the master output.
func (e *Engine) NewVoice(opts VoiceOptions) *Voice {
	v := newVoice(e, opts)
	e.mu.Lock()
	e.voices.Add(v)
	e.mu.Unlock()
	return v
}

// NewStarVoice creates a voice using the configured star template.
func (e *Engine) NewStarVoice(pan, volumeDB float64) *Voice {
	return e.NewVoice(VoiceOptions{
		Waveform: e.cfg.Voice.Waveform,
		Envelope: e.cfg.Voice.Envelope,
		Pan:      pan,
		VolumeDB: volumeDB,
	})
}

// Delay returns the shared ping-pong delay bus.
func (e *Engine) Delay() *Bus { return e.delay }

// AttackDrones starts every drone voice at its note.
func (e *Engine) AttackDrones() {
	for _, d := range e.drones {
		d.voice.TriggerAttack(d.freq)
	}
}

// ReleaseDrones releases every drone voice.
func (e *Engine) ReleaseDrones() {
	for _, d := range e.drones {
		d.voice.TriggerRelease()
	}
}

// ActiveVoices reports how many star voices are still in the mix.
func (e *Engine) ActiveVoices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voices.Len()
}

// SetMasterVolume sets the output level in decibels.
func (e *Engine) SetMasterVolume(db float64) {
	e.mu.Lock()
	e.master.Volume = db / 20
	e.mu.Unlock()
}

// Stream renders the next block of the mix. It never runs dry.
func (e *Engine) Stream(samples [][2]float64) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.master.Stream(samples)
}

func (e *Engine) Err() error { return nil }
