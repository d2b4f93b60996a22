package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"starsynth/internal/config"
	"starsynth/internal/telemetry"
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if *configPathFlag != "" {
		log.Printf("Loaded config from %s", *configPathFlag)
	}
	if *writeConfigFlag != "" {
		if err := cfg.WriteYAML(*writeConfigFlag); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("Wrote config to %s", *writeConfigFlag)
		return
	}

	g, err := newGame(cfg)
	if err != nil {
		log.Fatalf("Starting: %v", err)
	}

	if *recordDefaultPGO {
		profile, err := telemetry.StartAutoplayProfile(pgoProfilePath)
		if err != nil {
			g.Close()
			log.Fatalf("PGO recording failed: %v", err)
		}
		g.profile = profile
		g.enableAutoplay(pgoRecordDuration)
		log.Printf("Recording %s for %v", pgoProfilePath, pgoRecordDuration)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatalf("%v", runErr)
	}
}
