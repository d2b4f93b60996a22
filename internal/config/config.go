// Package config loads the starsynth settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable setting.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Field   FieldConfig   `yaml:"field"`
	Palette PaletteConfig `yaml:"palette"`
	Voice   VoiceConfig   `yaml:"voice"`
	Drone   DroneConfig   `yaml:"drone"`
	Effects EffectsConfig `yaml:"effects"`
	Audio   AudioConfig   `yaml:"audio"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// FieldConfig holds the star field parameters.
type FieldConfig struct {
	StarCount          int     `yaml:"star_count"`
	MinSize            float64 `yaml:"min_size"`
	MaxSize            float64 `yaml:"max_size"`
	Speed              float64 `yaml:"speed"`           // pixels per tick
	SpeedIncrement     float64 `yaml:"speed_increment"` // per key press
	Octaves            int     `yaml:"octaves"`
	InitialOpacity     float64 `yaml:"initial_opacity"`
	OpacityStep        float64 `yaml:"opacity_step"`
	ManualPadding      float64 `yaml:"manual_padding"`
	ManualTopOffset    int     `yaml:"manual_top_offset"`
	ManualBottomOffset int     `yaml:"manual_bottom_offset"`
}

// PaletteConfig holds hex colours for the canvas and stars.
type PaletteConfig struct {
	Background    string  `yaml:"background"`
	Neutral       string  `yaml:"neutral"`
	NeutralAlpha  float64 `yaml:"neutral_alpha"`
	Highlight     string  `yaml:"highlight"`
	MidpointAlpha float64 `yaml:"midpoint_alpha"`
}

// VoiceConfig holds the sound of a single star.
type VoiceConfig struct {
	Waveform    string        `yaml:"waveform"`
	Attack      time.Duration `yaml:"attack"`
	Decay       time.Duration `yaml:"decay"`
	Sustain     float64       `yaml:"sustain"`
	Release     time.Duration `yaml:"release"`
	NoteLength  time.Duration `yaml:"note_length"`
	MinVolumeDB float64       `yaml:"min_volume_db"` // smallest star
	MaxVolumeDB float64       `yaml:"max_volume_db"` // largest star
}

// DroneVoiceConfig is one sustained drone note.
type DroneVoiceConfig struct {
	Note string  `yaml:"note"`
	Pan  float64 `yaml:"pan"`
}

// DroneConfig holds the ambient layer.
type DroneConfig struct {
	Waveform string             `yaml:"waveform"`
	VolumeDB float64            `yaml:"volume_db"`
	Attack   time.Duration      `yaml:"attack"`
	Release  time.Duration      `yaml:"release"`
	Voices   []DroneVoiceConfig `yaml:"voices"`
}

// EffectsConfig holds the shared effects chain.
type EffectsConfig struct {
	Filter FilterConfig `yaml:"filter"`
	Delay  DelayConfig  `yaml:"delay"`
}

type FilterConfig struct {
	Cutoff float64 `yaml:"cutoff"`
	Q      float64 `yaml:"q"`
	Stages int     `yaml:"stages"`
}

type DelayConfig struct {
	Time     time.Duration `yaml:"time"`
	Feedback float64       `yaml:"feedback"`
	Wet      float64       `yaml:"wet"`
}

// AudioConfig holds output device settings.
type AudioConfig struct {
	Enabled        bool          `yaml:"enabled"`
	SampleRate     int           `yaml:"sample_rate"`
	Buffer         time.Duration `yaml:"buffer"`
	MasterVolumeDB float64       `yaml:"master_volume_db"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only keys present in the file overwrite the defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the field or audio engine cannot work with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.TPS > 0, "window.tps must be positive")

	f := c.Field
	check(f.StarCount >= 0, "field.star_count must not be negative")
	check(f.MinSize > 0 && f.MinSize < f.MaxSize, "field sizes need 0 < min_size < max_size, got %v and %v", f.MinSize, f.MaxSize)
	check(f.Speed >= 0, "field.speed must not be negative")
	check(f.SpeedIncrement > 0, "field.speed_increment must be positive")
	check(f.Octaves >= 1, "field.octaves must be at least 1")
	check(f.InitialOpacity >= 0 && f.InitialOpacity <= 1, "field.initial_opacity must be within [0, 1]")
	check(f.OpacityStep > 0, "field.opacity_step must be positive")
	check(f.ManualPadding >= 0 && f.ManualPadding < 0.5, "field.manual_padding must be within [0, 0.5)")
	check(f.ManualTopOffset >= 0 && f.ManualTopOffset <= 8*f.Octaves, "field.manual_top_offset out of range")
	check(f.ManualBottomOffset >= 0 && f.ManualBottomOffset < 8*f.Octaves, "field.manual_bottom_offset out of range")

	v := c.Voice
	check(v.Sustain >= 0 && v.Sustain <= 1, "voice.sustain must be within [0, 1]")
	check(v.Attack >= 0 && v.Decay >= 0 && v.Release >= 0, "voice envelope times must not be negative")
	check(v.NoteLength > 0, "voice.note_length must be positive")

	d := c.Drone
	check(d.Attack >= 0 && d.Release >= 0, "drone envelope times must not be negative")
	for i, dv := range d.Voices {
		check(dv.Pan >= -1 && dv.Pan <= 1, "drone.voices[%d].pan must be within [-1, 1]", i)
	}

	e := c.Effects
	check(e.Filter.Cutoff > 0, "effects.filter.cutoff must be positive")
	check(e.Filter.Q > 0, "effects.filter.q must be positive")
	check(e.Filter.Stages >= 1, "effects.filter.stages must be at least 1")
	check(e.Delay.Time > 0, "effects.delay.time must be positive")
	check(e.Delay.Feedback >= 0 && e.Delay.Feedback < 1, "effects.delay.feedback must be within [0, 1)")
	check(e.Delay.Wet >= 0 && e.Delay.Wet <= 1, "effects.delay.wet must be within [0, 1]")

	a := c.Audio
	check(a.SampleRate > 0, "audio.sample_rate must be positive")
	if a.SampleRate > 0 {
		check(e.Filter.Cutoff < float64(a.SampleRate)/2, "effects.filter.cutoff must be below the Nyquist frequency")
	}
	check(a.Buffer >= 0, "audio.buffer must not be negative")

	return errors.Join(errs...)
}

// WriteYAML writes the config to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
