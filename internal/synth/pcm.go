package synth

import (
	"errors"
	"log"

	"github.com/gopxl/beep"
)

const pcmFrameBytes = 4 // two channels of signed 16-bit

// PCMReader renders a streamer as signed 16-bit little-endian stereo, the
// format ebiten's audio player consumes. Every rendered frame is also written
// to the optional recorder.
type PCMReader struct {
	src beep.Streamer
	rec *Recorder
	buf [][2]float64
}

// NewPCMReader reads from src. rec may be nil.
func NewPCMReader(src beep.Streamer, rec *Recorder) *PCMReader {
	return &PCMReader{src: src, rec: rec}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	// Only whole stereo frames.
	frames := len(p) / pcmFrameBytes
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]
	n, ok := r.src.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	if !ok {
		if err := r.src.Err(); err != nil {
			log.Printf("Audio source failed: %v", err)
		}
	}

	for i, s := range buf {
		l := int16(toPCM16(s[0]))
		rr := int16(toPCM16(s[1]))
		off := i * pcmFrameBytes
		p[off] = byte(l)
		p[off+1] = byte(l >> 8)
		p[off+2] = byte(rr)
		p[off+3] = byte(rr >> 8)
	}

	if r.rec != nil {
		if err := r.rec.Write(buf); err != nil {
			if !errors.Is(err, ErrRecorderClosed) {
				log.Printf("Recording stopped: %v", err)
			}
			r.rec = nil
		}
	}
	return frames * pcmFrameBytes, nil
}

func (r *PCMReader) Close() error { return nil }
