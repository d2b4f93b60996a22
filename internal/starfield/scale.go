package starfield

import "math"

// Note is a MIDI note number.
type Note int

// Frequency returns the equal-tempered frequency of n with A4 (69) at 440Hz.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, (float64(n)-69)/12)
}

// scaleDegrees are the semitone offsets of one octave, octave repeat included.
var scaleDegrees = [...]int{0, 2, 4, 6, 7, 9, 11, 12}

// Scale is an immutable, ascending table of notes spanning a number of octaves.
type Scale struct {
	notes []Note
}

// NewScale builds the note table for the given octave count. Octave i (from 1)
// contributes 12*i + 48 + d for every scale degree d.
func NewScale(octaves int) *Scale {
	if octaves < 0 {
		octaves = 0
	}
	notes := make([]Note, 0, octaves*len(scaleDegrees))
	for i := 1; i <= octaves; i++ {
		for _, d := range scaleDegrees {
			notes = append(notes, Note(12*i+48+d))
		}
	}
	return &Scale{notes: notes}
}

// Len reports the number of entries in the table.
func (s *Scale) Len() int { return len(s.notes) }

// Notes returns a copy of the table.
func (s *Scale) Notes() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// NoteAt floors index and returns the note stored there. The floored index
// must lie within [0, Len()-1]; NoteAt does not clamp.
func (s *Scale) NoteAt(index float64) Note {
	return s.notes[int(math.Floor(index))]
}

// clampIndex floors index and pins it into the valid table range.
func (s *Scale) clampIndex(index float64) float64 {
	i := math.Floor(index)
	if i < 0 {
		return 0
	}
	if last := float64(len(s.notes) - 1); i > last {
		return last
	}
	return i
}
