package main

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput maps keyboard and pointer events onto the controller.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.ctrl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ctrl.TogglePause()
	}
	if anyJustPressed(ebiten.KeyArrowUp, ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		g.ctrl.SpeedUp()
	}
	if anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		g.ctrl.SpeedDown()
	}

	g.ctrl.SetPlacing(ebiten.IsKeyPressed(ebiten.KeySpace))
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	g.ctrl.PointerMoved(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(x, y)
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		g.ctrl.Click(float64(tx), float64(ty))
	}
	return nil
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// enableAutoplay starts the field and schedules scripted star injection for a
// limited duration.
func (g *Game) enableAutoplay(duration time.Duration) {
	g.autoplay = true
	g.autoplayDeadline = time.Now().Add(duration)
	if g.autoplayRand == nil {
		g.autoplayRand = rand.New(rand.NewSource(time.Now().UnixNano() + 3))
	}
	g.autoplayCountdown = 0
	g.ctrl.Start()
}

// autoplayStep injects a star right of the midpoint every few ticks and now
// and then nudges the speed. It reports false once the deadline has passed.
func (g *Game) autoplayStep() bool {
	if !g.autoplay {
		return true
	}
	if time.Now().After(g.autoplayDeadline) {
		g.autoplay = false
		return false
	}
	g.autoplayCountdown--
	if g.autoplayCountdown > 0 {
		return true
	}
	r := g.autoplayRand
	g.autoplayCountdown = autoplayMinGap + r.Intn(autoplayMaxGap-autoplayMinGap)

	opts := g.field.Options()
	mid := g.field.Midpoint()
	g.ctrl.Click(mid+1+r.Float64()*(opts.Width-mid-1), r.Float64()*opts.Height)

	if r.Intn(autoplaySpeedChance) == 0 {
		if r.Intn(2) == 0 {
			g.ctrl.SpeedUp()
		} else {
			g.ctrl.SpeedDown()
		}
	}
	return true
}
