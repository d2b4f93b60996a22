package synth

import (
	"math"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"c4", 60, false},
		{"C2", 36, false},
		{"g2", 43, false},
		{"c3", 48, false},
		{"e3", 52, false},
		{"a4", 69, false},
		{"c#4", 61, false},
		{"eb3", 51, false},
		{" b-1 ", 11, false},
		{"h2", 0, true},
		{"c", 0, true},
		{"cx", 0, true},
		{"a9", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNote(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNote(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNote(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestMIDIToFreq(t *testing.T) {
	if f := MIDIToFreq(69); f != 440 {
		t.Errorf("MIDIToFreq(69) = %v, want 440", f)
	}
	if f := MIDIToFreq(36); math.Abs(f-65.406) > 1e-3 {
		t.Errorf("MIDIToFreq(36) = %v, want 65.406", f)
	}
}

func TestDBToGain(t *testing.T) {
	tests := []struct {
		db, want float64
	}{
		{0, 1},
		{-20, 0.1},
		{20, 10},
		{-6, 0.501187},
	}
	for _, tt := range tests {
		if got := DBToGain(tt.db); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("DBToGain(%v) = %v, want %v", tt.db, got, tt.want)
		}
	}
}

func TestParseWaveform(t *testing.T) {
	for name, want := range map[string]Waveform{
		"sine": WaveSine, "": WaveSine, "Triangle": WaveTriangle,
		"square": WaveSquare, "saw": WaveSawtooth, "sawtooth": WaveSawtooth,
	} {
		got, err := ParseWaveform(name)
		if err != nil || got != want {
			t.Errorf("ParseWaveform(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseWaveform("sine2"); err == nil {
		t.Error("expected error for unknown waveform")
	}
}
