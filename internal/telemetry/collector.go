package telemetry

import (
	"fmt"

	"starsynth/internal/starfield"
)

// WindowStats summarizes the notes fired during one window of ticks.
type WindowStats struct {
	StartTick uint64
	EndTick   uint64

	Triggers int
	Manual   int
	LowNote  starfield.Note
	HighNote starfield.Note

	Stars int
	Speed float64
}

func (s WindowStats) String() string {
	if s.Triggers == 0 {
		return fmt.Sprintf("ticks %d-%d: no notes, %d stars, speed %.2f",
			s.StartTick, s.EndTick, s.Stars, s.Speed)
	}
	return fmt.Sprintf("ticks %d-%d: %d notes (%d manual) range %d-%d, %d stars, speed %.2f",
		s.StartTick, s.EndTick, s.Triggers, s.Manual, s.LowNote, s.HighNote, s.Stars, s.Speed)
}

// Collector accumulates trigger events within windows of ticks.
type Collector struct {
	windowTicks uint64
	windowStart uint64

	triggers int
	manual   int
	low      starfield.Note
	high     starfield.Note
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks uint64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordTrigger counts a fired note.
func (c *Collector) RecordTrigger(ev starfield.TriggerEvent) {
	n := ev.Audio.Note
	if c.triggers == 0 || n < c.low {
		c.low = n
	}
	if c.triggers == 0 || n > c.high {
		c.high = n
	}
	c.triggers++
	if ev.Manual {
		c.manual++
	}
}

// ShouldFlush reports whether the current window is complete.
func (c *Collector) ShouldFlush(tick uint64) bool {
	return tick-c.windowStart >= c.windowTicks
}

// Flush returns the window summary and starts a new window at tick.
func (c *Collector) Flush(tick uint64, stars int, speed float64) WindowStats {
	s := WindowStats{
		StartTick: c.windowStart,
		EndTick:   tick,
		Triggers:  c.triggers,
		Manual:    c.manual,
		LowNote:   c.low,
		HighNote:  c.high,
		Stars:     stars,
		Speed:     speed,
	}
	c.windowStart = tick
	c.triggers = 0
	c.manual = 0
	c.low, c.high = 0, 0
	return s
}
