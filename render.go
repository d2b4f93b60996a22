package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starsynth/internal/starfield"
)

const helpText = "Enter: start  P: pause  Up/Down: speed  Click right of the line: add star  Space+move: draw stars  Esc: quit"

// Draw renders the midpoint line, every star and optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.BackgroundColor())

	opts := g.field.Options()
	vector.DrawFilledRect(screen, float32(g.field.Midpoint()), 0,
		float32(opts.MinSize), float32(opts.Height), g.palette.MidpointColor(), false)

	for _, s := range g.field.Stars() {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y),
			float32(s.Size), float32(s.Size), s.Color(g.palette), false)
	}

	switch g.ctrl.State() {
	case starfield.StateIdle:
		ebitenutil.DebugPrintAt(screen, helpText, 8, int(opts.Height)-20)
	case starfield.StatePaused:
		ebitenutil.DebugPrintAt(screen, "paused", 8, int(opts.Height)-20)
	}

	if *debugFlag {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		debugMsg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nStars: %d  Speed: %.2f  State: %s\nVoices: %d  Tick: %d\nUpdate: %.2f ms",
			ebiten.ActualFPS(), tps, g.field.Len(), g.field.Speed(), g.ctrl.State(),
			g.activeVoices(), g.field.Tick(), g.lastUpdateDuration.Seconds()*1000)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.cfg.Window.Width, g.cfg.Window.Height }
