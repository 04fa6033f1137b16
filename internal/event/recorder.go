package event

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/EmojiBattler_Go/internal/logger"
)

// Record is one line of a recorded event log
type Record struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
}

// Recorder appends every event it handles to a JSON lines stream
type Recorder struct {
	w   io.Writer
	c   io.Closer
	now func() time.Time
	mu  sync.Mutex
}

// NewRecorder creates a Recorder writing to w
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w, now: time.Now}
}

// NewFileRecorder creates a Recorder appending to the file at path
func NewFileRecorder(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, RecordFilePermissions)
	if err != nil {
		return nil, err
	}
	return &Recorder{w: f, c: f, now: time.Now}, nil
}

// Register subscribes the recorder to every game event on bus
func (r *Recorder) Register(bus Bus) {
	SubscribeAll(bus, r.Handle)
}

// Handle writes evt as one JSON line
func (r *Recorder) Handle(ctx context.Context, evt Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)
	data, err := json.Marshal(Record{
		SchemaVersion: RecordSchemaVersion,
		Timestamp:     r.now(),
		Event:         evt,
	})
	if err != nil {
		log.Warn(LogMsgRecordWriteFailed, "event_type", evt.Type, "error", err)
		return err
	}
	if _, err := r.w.Write(append(data, '\n')); err != nil {
		log.Warn(LogMsgRecordWriteFailed, "event_type", evt.Type, "error", err)
		return err
	}
	log.Debug(LogMsgEventRecorded, "event_type", evt.Type)
	return nil
}

// Close closes the underlying file, if the recorder owns one
func (r *Recorder) Close() error {
	if r.c == nil {
		return nil
	}
	return r.c.Close()
}
