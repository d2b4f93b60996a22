package synth

import (
	"time"

	"github.com/gopxl/beep"
)

// Envelope describes an ADSR amplitude contour.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64 // level 0-1
	Release time.Duration
}

type envStage int

const (
	envIdle envStage = iota
	envAttack
	envDecay
	envSustain
	envRelease
)

// envelopeGen steps an Envelope one sample at a time.
type envelopeGen struct {
	attack, decay, release int // samples
	sustain                float64

	stage envStage
	level float64
	pos   int
	from  float64 // level at the start of the current ramp
	hold  int     // samples until an automatic release, 0 for none
}

func newEnvelopeGen(e Envelope, rate beep.SampleRate) envelopeGen {
	return envelopeGen{
		attack:  rate.N(e.Attack),
		decay:   rate.N(e.Decay),
		sustain: e.Sustain,
		release: rate.N(e.Release),
	}
}

// gateOn starts the attack from the current level.
func (e *envelopeGen) gateOn() {
	e.stage = envAttack
	e.from = e.level
	e.pos = 0
	e.hold = 0
}

// gateOff starts the release from the current level.
func (e *envelopeGen) gateOff() {
	if e.stage == envIdle {
		return
	}
	e.stage = envRelease
	e.from = e.level
	e.pos = 0
	e.hold = 0
}

// gateFor opens the gate and schedules a release after n samples.
func (e *envelopeGen) gateFor(n int) {
	e.gateOn()
	if n < 1 {
		n = 1
	}
	e.hold = n
}

func (e *envelopeGen) idle() bool { return e.stage == envIdle }

// next returns the level for the current sample and advances.
func (e *envelopeGen) next() float64 {
	if e.hold > 0 {
		e.hold--
		if e.hold == 0 {
			e.gateOff()
		}
	}
	return e.step()
}

// step computes the level for the current stage. It may move through several
// stages within one sample but never touches the hold countdown.
func (e *envelopeGen) step() float64 {
	switch e.stage {
	case envAttack:
		if e.pos >= e.attack {
			e.level = 1
			e.enter(envDecay)
			return e.step()
		}
		e.level = e.from + (1-e.from)*float64(e.pos)/float64(e.attack)
	case envDecay:
		if e.pos >= e.decay {
			e.level = e.sustain
			e.enter(envSustain)
			return e.level
		}
		e.level = 1 - (1-e.sustain)*float64(e.pos)/float64(e.decay)
	case envSustain:
		e.level = e.sustain
	case envRelease:
		if e.pos >= e.release {
			e.level = 0
			e.stage = envIdle
			return 0
		}
		e.level = e.from * (1 - float64(e.pos)/float64(e.release))
	default:
		e.level = 0
		return 0
	}
	e.pos++
	return e.level
}

func (e *envelopeGen) enter(s envStage) {
	e.stage = s
	e.pos = 0
	e.from = e.level
}
