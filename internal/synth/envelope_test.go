package synth

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func testEnvelope() envelopeGen {
	return newEnvelopeGen(Envelope{
		Attack:  10 * time.Millisecond,
		Decay:   10 * time.Millisecond,
		Sustain: 0.5,
		Release: 10 * time.Millisecond,
	}, beep.SampleRate(1000))
}

func advance(e *envelopeGen, n int) float64 {
	var v float64
	for i := 0; i < n; i++ {
		v = e.next()
	}
	return v
}

func TestEnvelopeIdleUntilGated(t *testing.T) {
	e := testEnvelope()
	if v := advance(&e, 50); v != 0 || !e.idle() {
		t.Errorf("ungated envelope level %v idle=%v", v, e.idle())
	}
}

func TestEnvelopeStages(t *testing.T) {
	e := testEnvelope()
	e.gateOn()

	prev := -1.0
	for i := 0; i < 10; i++ {
		v := e.next()
		if v <= prev {
			t.Fatalf("attack not rising at sample %d: %v <= %v", i, v, prev)
		}
		prev = v
	}
	if v := e.next(); v != 1 {
		t.Errorf("peak = %v, want 1", v)
	}
	if v := advance(&e, 20); v != 0.5 || e.stage != envSustain {
		t.Errorf("after decay level=%v stage=%v, want sustain 0.5", v, e.stage)
	}
	if v := advance(&e, 1000); v != 0.5 {
		t.Errorf("sustain drifted to %v", v)
	}

	e.gateOff()
	if v := e.next(); v != 0.5 {
		t.Errorf("release should start from sustain, got %v", v)
	}
	advance(&e, 10)
	if !e.idle() {
		t.Errorf("envelope not idle after release, level %v", e.level)
	}
}

func TestEnvelopeGateFor(t *testing.T) {
	e := testEnvelope()
	e.gateFor(30)
	advance(&e, 29)
	if e.stage != envSustain {
		t.Fatalf("stage = %v before the hold elapsed, want sustain", e.stage)
	}
	advance(&e, 1)
	if e.stage != envRelease {
		t.Fatalf("stage = %v after the hold, want release", e.stage)
	}
	advance(&e, 11)
	if !e.idle() {
		t.Error("envelope did not finish after gateFor")
	}
}

func TestEnvelopeReleaseMidAttack(t *testing.T) {
	e := testEnvelope()
	e.gateOn()
	mid := advance(&e, 5)
	e.gateOff()
	if v := e.next(); math.Abs(v-mid) > 1e-9 {
		t.Errorf("release started at %v, want %v", v, mid)
	}
	advance(&e, 10)
	if !e.idle() {
		t.Error("envelope not idle")
	}
}

func TestEnvelopeZeroDecayHoldsFullLevel(t *testing.T) {
	e := newEnvelopeGen(Envelope{Attack: 5 * time.Millisecond, Sustain: 1, Release: 5 * time.Millisecond}, beep.SampleRate(1000))
	e.gateOn()
	if v := advance(&e, 100); v != 1 {
		t.Errorf("level = %v, want 1", v)
	}
}

func TestEnvelopeHoldCountsEverySampleOnce(t *testing.T) {
	tests := []struct {
		name   string
		attack time.Duration
		hold   int
	}{
		{"hold past attack", 5 * time.Millisecond, 20},
		{"hold ends on the peak sample", 5 * time.Millisecond, 6},
		{"no attack", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnvelopeGen(Envelope{
				Attack:  tt.attack,
				Decay:   10 * time.Millisecond,
				Sustain: 0.5,
				Release: 10 * time.Millisecond,
			}, beep.SampleRate(1000))
			e.gateFor(tt.hold)

			n := 0
			for e.stage != envRelease && n < 1000 {
				e.next()
				n++
			}
			if n != tt.hold {
				t.Errorf("release began after %d samples, want %d", n, tt.hold)
			}
		})
	}
}
