package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"starsynth/internal/starfield"
)

func event(tick uint64, note starfield.Note, manual bool) starfield.TriggerEvent {
	return starfield.TriggerEvent{
		Tick:   tick,
		X:      399.5,
		Y:      120,
		Size:   3,
		Audio:  starfield.AudioParams{Note: note, Intensity: 0.5, Pan: -0.25, VolumeDB: -18},
		Manual: manual,
	}
}

func TestNewTriggerRecord(t *testing.T) {
	r := NewTriggerRecord(event(7, 69, true))
	if r.Tick != 7 || r.Note != 69 || r.Frequency != 440 || !r.Manual {
		t.Errorf("record = %+v", r)
	}
	if r.Pan != -0.25 || r.VolumeDB != -18 || r.Intensity != 0.5 {
		t.Errorf("audio fields = %+v", r)
	}
}

func TestTriggerLogWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triggers.csv")
	l, err := NewTriggerLog(path)
	if err != nil {
		t.Fatalf("NewTriggerLog: %v", err)
	}
	for i, note := range []starfield.Note{60, 64, 67} {
		if err := l.Write(NewTriggerRecord(event(uint64(i+1), note, false))); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if l.Count() != 3 {
		t.Errorf("Count() = %d, want 3", l.Count())
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "tick,x,y,size,note,frequency_hz") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Count(string(data), "tick,") != 1 {
		t.Errorf("header written more than once:\n%s", data)
	}
	if !strings.HasPrefix(lines[2], "2,") || !strings.Contains(lines[2], ",64,") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestTriggerLogAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triggers.csv")
	sessions := [][]starfield.Note{{60, 62}, {71}}
	for i, notes := range sessions {
		l, err := NewTriggerLog(path)
		if err != nil {
			t.Fatalf("session %d: NewTriggerLog: %v", i, err)
		}
		for _, n := range notes {
			if err := l.Write(NewTriggerRecord(event(1, n, false))); err != nil {
				t.Fatalf("session %d: Write: %v", i, err)
			}
		}
		if l.Count() != len(notes) {
			t.Errorf("session %d: Count() = %d, want %d", i, l.Count(), len(notes))
		}
		if err := l.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3 rows:\n%s", len(lines), data)
	}
	if strings.Count(string(data), "tick,") != 1 {
		t.Errorf("header repeated on reopen:\n%s", data)
	}
	if !strings.Contains(lines[3], ",71,") {
		t.Errorf("last row = %q, want the second session's note", lines[3])
	}
}

func TestTriggerLogDisabled(t *testing.T) {
	l, err := NewTriggerLog("")
	if err != nil || l != nil {
		t.Fatalf("NewTriggerLog(\"\") = %v, %v; want nil, nil", l, err)
	}
	if err := l.Write(TriggerRecord{}); err != nil {
		t.Errorf("nil log Write: %v", err)
	}
	if l.Count() != 0 {
		t.Error("nil log counted a record")
	}
	if err := l.Close(); err != nil {
		t.Errorf("nil log Close: %v", err)
	}
}

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(60)
	if c.ShouldFlush(59) {
		t.Error("flush before the window elapsed")
	}
	c.RecordTrigger(event(10, 67, false))
	c.RecordTrigger(event(20, 62, true))
	c.RecordTrigger(event(30, 81, false))
	if !c.ShouldFlush(60) {
		t.Fatal("window not complete at tick 60")
	}

	s := c.Flush(60, 50, 0.6)
	want := WindowStats{StartTick: 0, EndTick: 60, Triggers: 3, Manual: 1, LowNote: 62, HighNote: 81, Stars: 50, Speed: 0.6}
	if s != want {
		t.Errorf("Flush = %+v, want %+v", s, want)
	}
	if !strings.Contains(s.String(), "3 notes (1 manual) range 62-81") {
		t.Errorf("String() = %q", s.String())
	}

	if c.ShouldFlush(119) {
		t.Error("new window flushed early")
	}
	empty := c.Flush(120, 50, 0.6)
	if empty.Triggers != 0 || empty.StartTick != 60 {
		t.Errorf("empty window = %+v", empty)
	}
	if !strings.Contains(empty.String(), "no notes") {
		t.Errorf("String() = %q", empty.String())
	}
}
