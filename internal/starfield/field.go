package starfield

import (
	"math"
	"math/rand"
	"time"
)

// Options configures a Field.
type Options struct {
	Width, Height    float64
	MinSize, MaxSize float64
	StarCount        int
	Speed            float64
	SpeedIncrement   float64
	Octaves          int

	InitialOpacity float64
	OpacityStep    float64

	// Manual placement maps y across a band inset by ManualPadding (a fraction
	// of the height) onto [Len()-ManualTopOffset, ManualBottomOffset].
	ManualPadding      float64
	ManualTopOffset    int
	ManualBottomOffset int

	// Organic spawns map volume across [MinVolumeDB, MaxVolumeDB] by size.
	MinVolumeDB float64
	MaxVolumeDB float64

	NoteLength time.Duration
}

// DefaultOptions returns the stock field settings.
func DefaultOptions() Options {
	return Options{
		Width:              1280,
		Height:             720,
		MinSize:            2,
		MaxSize:            5,
		StarCount:          50,
		Speed:              0.6,
		SpeedIncrement:     0.2,
		Octaves:            2,
		InitialOpacity:     0.5,
		OpacityStep:        0.04,
		ManualPadding:      0.05,
		ManualTopOffset:    8,
		ManualBottomOffset: 4,
		MinVolumeDB:        -24,
		MaxVolumeDB:        -12,
		NoteLength:         250 * time.Millisecond,
	}
}

// Direction selects a speed adjustment.
type Direction int

const (
	SpeedUp Direction = iota
	SpeedDown
)

// TriggerEvent describes a note fired by a star crossing the midpoint.
type TriggerEvent struct {
	Tick   uint64
	X, Y   float64
	Size   float64
	Audio  AudioParams
	Manual bool
}

type pitchPolicy int

const (
	pitchOrganic pitchPolicy = iota
	pitchManual
)

// Field owns the live stars and advances them one tick at a time. It is not
// safe for concurrent use; callers drive it from a single goroutine.
type Field struct {
	opts    Options
	stars   []*Star
	speed   float64
	scale   *Scale
	rng     *rand.Rand
	backend Backend
	tick    uint64

	onTrigger func(TriggerEvent)
}

// NewField spawns opts.StarCount stars uniformly over the canvas. A nil
// backend yields a silent field; a nil rng is seeded from the clock.
func NewField(opts Options, backend Backend, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{
		opts:    opts,
		speed:   opts.Speed,
		scale:   NewScale(opts.Octaves),
		rng:     rng,
		backend: backend,
	}
	f.stars = make([]*Star, 0, opts.StarCount)
	for i := 0; i < opts.StarCount; i++ {
		x := math.Floor(f.rng.Float64() * opts.Width)
		y := math.Floor(f.rng.Float64() * opts.Height)
		f.stars = append(f.stars, f.spawnInitial(x, y))
	}
	return f
}

// SetTriggerHandler registers fn to be called for every note fired.
func (f *Field) SetTriggerHandler(fn func(TriggerEvent)) {
	f.onTrigger = fn
}

// Stars returns the live stars in spawn order. The slice is owned by the
// field and only valid until the next Update or AddStarAt.
func (f *Field) Stars() []*Star { return f.stars }

// Len reports the number of live stars.
func (f *Field) Len() int { return len(f.stars) }

// Speed reports the current leftward speed per tick.
func (f *Field) Speed() float64 { return f.speed }

// Scale returns the field's note table.
func (f *Field) Scale() *Scale { return f.scale }

// Tick reports how many updates have run.
func (f *Field) Tick() uint64 { return f.tick }

// Midpoint is the x coordinate of the trigger line.
func (f *Field) Midpoint() float64 { return f.opts.Width / 2 }

// Options returns the settings the field was built with.
func (f *Field) Options() Options { return f.opts }

// Update advances every star by the current speed. Stars crossing the
// midpoint fade toward the highlight colour and fire their note once; stars
// leaving the left edge release their voice and are replaced by a star
// entering from the right. Every star present when Update begins is evaluated
// exactly once; replacements first move on the following tick.
func (f *Field) Update() {
	f.tick++
	mid := f.Midpoint()
	n := len(f.stars)
	live := f.stars[:0]
	exited := 0
	for _, s := range f.stars {
		s.X -= f.speed
		if s.X <= mid {
			s.fade(f.opts.OpacityStep)
			if s.trigger(f.opts.NoteLength) {
				f.notify(s)
			}
		}
		if s.X < 0 {
			s.voice.Dispose()
			exited++
			continue
		}
		live = append(live, s)
	}
	for i := len(live); i < n; i++ {
		f.stars[i] = nil
	}
	f.stars = live
	for i := 0; i < exited; i++ {
		f.stars = append(f.stars, f.spawnRecycled())
	}
}

// AddStarAt places a star at (x, y) using the manual pitch band. It starts
// inactive wherever it is placed.
func (f *Field) AddStarAt(x, y float64) *Star {
	s := f.newStar(x, y, f.randomSize(), f.pitchIndex(y, pitchManual))
	s.Manual = true
	f.stars = append(f.stars, s)
	return s
}

// ChangeSpeed nudges the speed by the configured increment. Speed never drops
// below zero.
func (f *Field) ChangeSpeed(d Direction) {
	switch d {
	case SpeedUp:
		f.speed += f.opts.SpeedIncrement
	case SpeedDown:
		if f.speed > 0 {
			f.speed = math.Max(0, f.speed-f.opts.SpeedIncrement)
		}
	}
}

// Close disposes every live voice.
func (f *Field) Close() {
	for _, s := range f.stars {
		s.voice.Dispose()
	}
	f.stars = nil
}

// spawnInitial creates a star for the opening field. Stars already at or left
// of the midpoint start activated and highlighted and never sound.
func (f *Field) spawnInitial(x, y float64) *Star {
	s := f.newStar(x, y, f.randomSize(), f.pitchIndex(y, pitchOrganic))
	if x <= f.Midpoint() {
		s.Activated = true
		s.Tone = ToneHighlight
	}
	return s
}

// spawnRecycled creates a star fully off-screen on the right edge.
func (f *Field) spawnRecycled() *Star {
	size := f.randomSize()
	y := math.Floor(f.rng.Float64() * f.opts.Height)
	return f.newStar(f.opts.Width+size, y, size, f.pitchIndex(y, pitchOrganic))
}

func (f *Field) pitchIndex(y float64, policy pitchPolicy) float64 {
	if policy == pitchManual {
		pad := f.opts.Height * f.opts.ManualPadding
		return MapRange(y, pad, f.opts.Height-pad,
			float64(f.scale.Len()-f.opts.ManualTopOffset), float64(f.opts.ManualBottomOffset))
	}
	return MapRange(y, 0, f.opts.Height, float64(f.scale.Len()), 0)
}

func (f *Field) newStar(x, y, size, pitchIndex float64) *Star {
	audio := AudioParams{
		Note:      f.scale.NoteAt(f.scale.clampIndex(pitchIndex)),
		Intensity: MapRange(size, f.opts.MinSize, f.opts.MaxSize, 0, 1),
		Pan:       f.rng.Float64()*2 - 1,
		VolumeDB:  MapRange(size, f.opts.MinSize, f.opts.MaxSize, f.opts.MinVolumeDB, f.opts.MaxVolumeDB),
	}
	var voice Voice = nopVoice{}
	if f.backend != nil {
		voice = f.backend.NewVoice(audio)
	}
	return &Star{
		X:       x,
		Y:       y,
		Size:    size,
		Opacity: f.opts.InitialOpacity,
		Tone:    ToneNeutral,
		Audio:   audio,
		voice:   voice,
	}
}

func (f *Field) randomSize() float64 {
	return f.rng.Float64()*(f.opts.MaxSize-f.opts.MinSize) + f.opts.MinSize
}

func (f *Field) notify(s *Star) {
	if f.onTrigger == nil {
		return
	}
	f.onTrigger(TriggerEvent{
		Tick:   f.tick,
		X:      s.X,
		Y:      s.Y,
		Size:   s.Size,
		Audio:  s.Audio,
		Manual: s.Manual,
	})
}
