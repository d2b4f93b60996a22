package starfield

import (
	"math"
	"testing"
)

type fakeDrone struct {
	attacks, releases int
}

func (d *fakeDrone) AttackDrones() { d.attacks++ }

func (d *fakeDrone) ReleaseDrones() { d.releases++ }

func newTestController() (*Controller, *Field, *fakeDrone) {
	opts := testOptions()
	opts.Speed = 2
	f, _ := newTestField(opts)
	d := &fakeDrone{}
	return NewController(f, d), f, d
}

func TestControllerIdleDoesNotTick(t *testing.T) {
	c, f, d := newTestController()
	s := place(f, 700, 100)
	if c.Tick() {
		t.Error("idle controller ticked")
	}
	if s.X != 700 || f.Tick() != 0 {
		t.Errorf("field advanced while idle: x=%v tick=%d", s.X, f.Tick())
	}
	if d.attacks != 0 {
		t.Errorf("drone attacked %d times before start", d.attacks)
	}
}

func TestControllerStart(t *testing.T) {
	c, _, d := newTestController()
	c.Start()
	c.Start()
	if c.State() != StateRunning {
		t.Fatalf("state = %v, want running", c.State())
	}
	if d.attacks != 1 {
		t.Errorf("drone attacks = %d, want 1", d.attacks)
	}
	if !c.Tick() {
		t.Error("running controller did not tick")
	}
}

func TestControllerPauseResumeKeepsState(t *testing.T) {
	c, f, d := newTestController()
	s := place(f, 700, 100)
	c.Start()
	c.Tick()
	c.Tick()

	c.TogglePause()
	if c.State() != StatePaused {
		t.Fatalf("state = %v, want paused", c.State())
	}
	if d.releases != 1 {
		t.Errorf("drone releases = %d, want 1", d.releases)
	}
	x := s.X
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	if s.X != x {
		t.Errorf("paused field moved star from %v to %v", x, s.X)
	}

	c.TogglePause()
	if c.State() != StateRunning || d.attacks != 2 {
		t.Errorf("resume: state=%v attacks=%d", c.State(), d.attacks)
	}
	c.Tick()
	if s.X != x-2 {
		t.Errorf("after resume x = %v, want %v", s.X, x-2)
	}
}

func TestControllerTogglePauseFromIdleStarts(t *testing.T) {
	c, _, d := newTestController()
	c.TogglePause()
	if c.State() != StateRunning || d.attacks != 1 {
		t.Errorf("state=%v attacks=%d", c.State(), d.attacks)
	}
}

func TestControllerSpeed(t *testing.T) {
	c, f, _ := newTestController()
	c.SpeedUp()
	if math.Abs(f.Speed()-2.2) > 1e-9 {
		t.Errorf("speed = %v, want 2.2", f.Speed())
	}
	for i := 0; i < 20; i++ {
		c.SpeedDown()
	}
	if f.Speed() != 0 {
		t.Errorf("speed = %v, want 0", f.Speed())
	}
}

func TestControllerClick(t *testing.T) {
	c, f, _ := newTestController()
	if c.Click(400, 100) {
		t.Error("click on the midpoint placed a star")
	}
	if c.Click(120, 100) {
		t.Error("click left of the midpoint placed a star")
	}
	if !c.Click(401, 100) {
		t.Error("click right of the midpoint was ignored")
	}
	if f.Len() != 1 || !f.Stars()[0].Manual {
		t.Errorf("Len() = %d, want one manual star", f.Len())
	}
}

func TestControllerDragPlacement(t *testing.T) {
	c, f, _ := newTestController()
	c.PointerMoved(100, 100)
	c.PointerMoved(110, 100)
	if f.Len() != 0 {
		t.Fatalf("placed %d stars without the modifier", f.Len())
	}

	c.SetPlacing(true)
	if c.PointerMoved(110, 100) {
		t.Error("stationary pointer placed a star")
	}
	c.PointerMoved(120, 105)
	c.PointerMoved(130, 110)
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
	// Drag placement is not limited to the right half.
	if f.Stars()[0].X != 120 {
		t.Errorf("first dragged star x = %v, want 120", f.Stars()[0].X)
	}

	c.SetPlacing(false)
	c.PointerMoved(140, 115)
	if f.Len() != 2 {
		t.Errorf("placed a star after releasing the modifier")
	}
}

func TestControllerNilDrone(t *testing.T) {
	opts := testOptions()
	f, _ := newTestField(opts)
	c := NewController(f, nil)
	c.Start()
	c.Pause()
	c.TogglePause()
	if !c.Running() {
		t.Error("controller without drone did not resume")
	}
}
