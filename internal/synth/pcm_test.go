package synth

import (
	"encoding/binary"
	"path/filepath"
	"testing"
)

func TestPCMReaderWholeFrames(t *testing.T) {
	src := &sliceStreamer{frames: [][2]float64{{0.5, -0.5}, {1, -1}, {2, 0}}}
	r := NewPCMReader(src, nil)

	p := make([]byte, 14)
	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 12 {
		t.Fatalf("Read = %d bytes, want 12", n)
	}
	want := []int16{16384, -16384, 32767, -32767, 32767, 0}
	for i, w := range want {
		if got := int16(binary.LittleEndian.Uint16(p[2*i:])); got != w {
			t.Errorf("sample %d = %d, want %d", i, got, w)
		}
	}

	if n, _ := r.Read(make([]byte, 3)); n != 0 {
		t.Errorf("partial frame read %d bytes", n)
	}
}

func TestPCMReaderRecords(t *testing.T) {
	rec, err := NewRecorder(filepath.Join(t.TempDir(), "tee.wav"), testRate)
	if err != nil {
		t.Fatal(err)
	}
	r := NewPCMReader(&sliceStreamer{}, rec)
	r.Read(make([]byte, 400))
	r.Read(make([]byte, 40))
	if rec.Frames() != 110 {
		t.Errorf("recorded %d frames, want 110", rec.Frames())
	}

	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if n, err := r.Read(make([]byte, 40)); n != 40 || err != nil {
		t.Errorf("Read after recorder closed = %d, %v", n, err)
	}
	if r.rec != nil {
		t.Error("reader kept a closed recorder")
	}
}
