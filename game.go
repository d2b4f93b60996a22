package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"starsynth/internal/config"
	"starsynth/internal/starfield"
	"starsynth/internal/synth"
	"starsynth/internal/telemetry"
)

// Game owns the star field, its controller and the audio pipeline.
type Game struct {
	cfg     *config.Config
	field   *starfield.Field
	ctrl    *starfield.Controller
	palette starfield.Palette

	engine   *synth.Engine
	audio    *audioOutput
	recorder *synth.Recorder

	triggerLog *telemetry.TriggerLog
	stats      *telemetry.Collector

	touchIDs []ebiten.TouchID

	autoplay          bool
	autoplayDeadline  time.Time
	autoplayRand      *rand.Rand
	autoplayCountdown int
	profile           *telemetry.AutoplayProfile

	lastUpdateDuration time.Duration
}

// newGame builds the audio engine, the field and the optional outputs
// selected by flags.
func newGame(cfg *config.Config) (*Game, error) {
	palette, err := paletteFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		palette: palette,
		stats:   telemetry.NewCollector(statsWindowTicks),
	}

	var backend starfield.Backend
	var drone starfield.Drone
	if cfg.Audio.Enabled && !*muteFlag {
		if err := g.initAudio(); err != nil {
			g.Close()
			return nil, err
		}
		backend = engineBackend{engine: g.engine}
		drone = g.engine
	} else if *recordFlag != "" {
		log.Printf("Audio disabled; ignoring -record %s", *recordFlag)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.field = starfield.NewField(fieldOptions(cfg), backend, rand.New(rand.NewSource(seed)))
	g.field.SetTriggerHandler(g.onTrigger)
	g.ctrl = starfield.NewController(g.field, drone)
	log.Printf("Field of %d stars over %d notes (seed %d)", g.field.Len(), g.field.Scale().Len(), seed)

	if g.triggerLog, err = telemetry.NewTriggerLog(*triggerLogFlag); err != nil {
		g.Close()
		return nil, err
	}
	if g.triggerLog != nil {
		log.Printf("Logging triggers to %s", *triggerLogFlag)
	}

	if *autoStartFlag {
		g.ctrl.Start()
	}
	return g, nil
}

func (g *Game) initAudio() error {
	ecfg, err := engineConfig(g.cfg)
	if err != nil {
		return err
	}
	if g.engine, err = synth.NewEngine(ecfg); err != nil {
		return fmt.Errorf("audio engine: %w", err)
	}
	if *recordFlag != "" {
		if g.recorder, err = synth.NewRecorder(*recordFlag, ecfg.SampleRate); err != nil {
			return err
		}
		log.Printf("Recording audio to %s", *recordFlag)
	}
	if g.audio, err = startAudio(g.engine, g.recorder, g.cfg.Audio.Buffer); err != nil {
		return err
	}
	return nil
}

// Update handles input, runs the scripted autoplay and advances the field.
func (g *Game) Update() error {
	start := time.Now()
	if err := g.handleInput(); err != nil {
		return err
	}
	if !g.autoplayStep() {
		log.Printf("Autoplay finished")
		if g.profile.Active() {
			if err := g.profile.Stop(); err != nil {
				return err
			}
			log.Printf("Wrote %s", g.profile.Path())
			return ebiten.Termination
		}
	}

	if g.ctrl.Tick() {
		if tick := g.field.Tick(); g.stats.ShouldFlush(tick) {
			s := g.stats.Flush(tick, g.field.Len(), g.field.Speed())
			if *debugFlag {
				log.Printf("%s (voices %d)", s, g.activeVoices())
			}
		}
	}
	g.lastUpdateDuration = time.Since(start)
	return nil
}

func (g *Game) onTrigger(ev starfield.TriggerEvent) {
	g.stats.RecordTrigger(ev)
	if g.triggerLog == nil {
		return
	}
	if err := g.triggerLog.Write(telemetry.NewTriggerRecord(ev)); err != nil {
		log.Printf("Trigger log disabled: %v", err)
		_ = g.triggerLog.Close()
		g.triggerLog = nil
	}
}

func (g *Game) activeVoices() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.ActiveVoices()
}

// Close stops audio and flushes every output file.
func (g *Game) Close() error {
	var errs []error
	if err := g.profile.Stop(); err != nil {
		errs = append(errs, err)
	}
	if g.ctrl != nil {
		g.ctrl.Pause()
	}
	if g.field != nil {
		g.field.Close()
	}
	if err := g.audio.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing audio: %w", err))
	}
	if g.recorder != nil {
		if err := g.recorder.Close(); err != nil {
			errs = append(errs, err)
		} else {
			log.Printf("Recorded %d frames", g.recorder.Frames())
		}
	}
	if g.triggerLog != nil {
		n := g.triggerLog.Count()
		if err := g.triggerLog.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing trigger log: %w", err))
		} else {
			log.Printf("Logged %d triggers", n)
		}
	}
	return errors.Join(errs...)
}
