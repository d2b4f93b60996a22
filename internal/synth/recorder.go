package synth

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const recorderBitDepth = 16

// ErrRecorderClosed is returned by Write once the recorder has been closed.
var ErrRecorderClosed = errors.New("recorder closed")

// Recorder writes stereo float frames to a 16-bit PCM WAV file.
type Recorder struct {
	mu     sync.Mutex
	f      *os.File
	enc    *wav.Encoder
	buf    *audio.IntBuffer
	frames int
	closed bool
}

// NewRecorder creates path and prepares a WAV stream at sampleRate.
func NewRecorder(path string, sampleRate int) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating recording: %w", err)
	}
	return &Recorder{
		f:   f,
		enc: wav.NewEncoder(f, sampleRate, recorderBitDepth, 2, 1),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: recorderBitDepth,
		},
	}, nil
}

// Write appends frames to the recording.
func (r *Recorder) Write(samples [][2]float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	if cap(r.buf.Data) < 2*len(samples) {
		r.buf.Data = make([]int, 2*len(samples))
	}
	r.buf.Data = r.buf.Data[:2*len(samples)]
	for i, s := range samples {
		r.buf.Data[2*i] = toPCM16(s[0])
		r.buf.Data[2*i+1] = toPCM16(s[1])
	}
	if err := r.enc.Write(r.buf); err != nil {
		return fmt.Errorf("writing recording: %w", err)
	}
	r.frames += len(samples)
	return nil
}

// Frames reports how many stereo frames have been written.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close finalizes the WAV header and closes the file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	encErr := r.enc.Close()
	fileErr := r.f.Close()
	if encErr != nil {
		return fmt.Errorf("finalizing recording: %w", encErr)
	}
	return fileErr
}

// toPCM16 clamps v to [-1, 1] and scales it to a signed 16-bit sample.
func toPCM16(v float64) int {
	v = math.Max(-1, math.Min(1, v))
	return int(math.Round(v * math.MaxInt16))
}
