// Package telemetry records fired notes and per-window trigger statistics.
package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"starsynth/internal/starfield"
)

// TriggerRecord is one row of the trigger log.
type TriggerRecord struct {
	Tick      uint64  `csv:"tick"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Size      float64 `csv:"size"`
	Note      int     `csv:"note"`
	Frequency float64 `csv:"frequency_hz"`
	Pan       float64 `csv:"pan"`
	VolumeDB  float64 `csv:"volume_db"`
	Intensity float64 `csv:"intensity"`
	Manual    bool    `csv:"manual"`
}

// NewTriggerRecord flattens a trigger event into a log row.
func NewTriggerRecord(ev starfield.TriggerEvent) TriggerRecord {
	return TriggerRecord{
		Tick:      ev.Tick,
		X:         ev.X,
		Y:         ev.Y,
		Size:      ev.Size,
		Note:      int(ev.Audio.Note),
		Frequency: ev.Audio.Note.Frequency(),
		Pan:       ev.Audio.Pan,
		VolumeDB:  ev.Audio.VolumeDB,
		Intensity: ev.Audio.Intensity,
		Manual:    ev.Manual,
	}
}

// TriggerLog appends TriggerRecords to a CSV file.
type TriggerLog struct {
	f             *os.File
	headerWritten bool
	count         int
}

// NewTriggerLog opens the CSV file at path for appending, creating it if
// needed. The header is only written to an empty file.
// Returns nil if path is empty (logging disabled).
func NewTriggerLog(path string) (*TriggerLog, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening trigger log: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening trigger log: %w", err)
	}
	return &TriggerLog{f: f, headerWritten: info.Size() > 0}, nil
}

// Write appends one record.
func (l *TriggerLog) Write(r TriggerRecord) error {
	if l == nil {
		return nil
	}

	records := []TriggerRecord{r}

	if !l.headerWritten {
		if err := gocsv.Marshal(records, l.f); err != nil {
			return fmt.Errorf("writing trigger log: %w", err)
		}
		l.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, l.f); err != nil {
			return fmt.Errorf("writing trigger log: %w", err)
		}
	}
	l.count++
	return nil
}

// Count reports how many records have been written.
func (l *TriggerLog) Count() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Close closes the underlying file.
func (l *TriggerLog) Close() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
