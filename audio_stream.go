package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"starsynth/internal/synth"
)

// audioOutput plays the engine through ebiten's audio device.
type audioOutput struct {
	ctx    *audio.Context
	stream *synth.PCMReader
	player *audio.Player
}

// startAudio opens the device and starts playing engine. Rendered audio is
// also written to rec when it is not nil.
func startAudio(engine *synth.Engine, rec *synth.Recorder, buffer time.Duration) (*audioOutput, error) {
	ctx := audio.NewContext(int(engine.SampleRate()))
	stream := synth.NewPCMReader(engine, rec)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	if buffer <= 0 {
		buffer = defaultAudioBufferDur
	}
	player.SetBufferSize(buffer)
	player.Play()
	log.Printf("Audio output at %d Hz (buffer %v)", engine.SampleRate(), buffer)
	return &audioOutput{ctx: ctx, stream: stream, player: player}, nil
}

func (a *audioOutput) Close() error {
	if a == nil {
		return nil
	}
	a.player.Pause()
	return a.player.Close()
}
