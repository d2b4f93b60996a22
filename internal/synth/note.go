package synth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var pitchClasses = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// ParseNote converts scientific pitch notation such as "g2", "C#4" or "eb3"
// into a MIDI note number, with C4 = 60.
func ParseNote(name string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if len(s) < 2 {
		return 0, fmt.Errorf("note %q: too short", name)
	}
	pc, ok := pitchClasses[s[0]]
	if !ok {
		return 0, fmt.Errorf("note %q: unknown pitch class", name)
	}
	rest := s[1:]
	switch rest[0] {
	case '#':
		pc++
		rest = rest[1:]
	case 'b':
		pc--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("note %q: bad octave: %w", name, err)
	}
	midi := (octave+1)*12 + pc
	if midi < 0 || midi > 127 {
		return 0, fmt.Errorf("note %q: outside MIDI range", name)
	}
	return midi, nil
}

// MIDIToFreq returns the equal-tempered frequency of a MIDI note, A4 = 440Hz.
func MIDIToFreq(midi int) float64 {
	return 440 * math.Pow(2, (float64(midi)-69)/12)
}

// DBToGain converts decibels to a linear amplitude factor.
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}
