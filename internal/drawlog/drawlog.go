// Package drawlog records the values drawn from a random source as JSON
// lines, and replays a recorded stream as a source.
package drawlog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// LocalOutputEnvVar names the file that draws are recorded to when no
// explicit path is given.
const LocalOutputEnvVar = "RANDKIT_LOCAL_OUTPUT"

const errorLogLinePrefix = "[* randkit *]"

// Draw is one recorded value. Seq counts from zero.
type Draw struct {
	Seq   uint64  `json:"seq"`
	Value float64 `json:"value"`
}

// Recorder writes draws to an underlying writer, one JSON object per line.
// It is safe for concurrent use. A nil *Recorder records nothing.
type Recorder struct {
	mu     sync.Mutex
	enc    *json.Encoder
	seq    uint64
	failed bool
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

// Record appends v to the log. After the first write error the recorder
// logs the failure and drops every later draw.
func (r *Recorder) Record(v float64) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failed {
		return
	}
	if err := r.enc.Encode(Draw{Seq: r.seq, Value: v}); err != nil {
		log.Printf("%s Failed to record draw %d: %v", errorLogLinePrefix, r.seq, err)
		r.failed = true
		return
	}
	r.seq++
}

// Count returns the number of draws recorded so far.
func (r *Recorder) Count() uint64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// Wrap returns a source yielding the values of src and recording each one.
// On a nil *Recorder it returns src unchanged.
func (r *Recorder) Wrap(src func() float64) func() float64 {
	if r == nil {
		return src
	}
	return func() float64 {
		v := src()
		r.Record(v)
		return v
	}
}

// OpenFile opens path for recording, creating it if needed and truncating
// any previous contents.
func OpenFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open draw log %s: %w", path, err)
	}
	if err = file.Truncate(0); err != nil {
		file.Close()
		return nil, fmt.Errorf("truncate draw log %s: %w", path, err)
	}
	return file, nil
}

// FromEnv returns a recorder writing to the file named by LocalOutputEnvVar,
// along with the file to close once recording is done.
// If the variable is unset or empty, both are nil.
func FromEnv() (*Recorder, io.Closer, error) {
	path, isSet := os.LookupEnv(LocalOutputEnvVar)
	if !isSet || len(path) == 0 {
		return nil, nil, nil
	}
	file, err := OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	return NewRecorder(file), file, nil
}
