package tracking

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// movementLayout matches the timestamp format of the historical log files so
// existing logs stay uniform.
const movementLayout = "2006-01-02 15:04:05.000000"

// MovementLog is the append-only audit trail of recognized-name sightings.
// Lines are never rewritten or rotated.
type MovementLog struct {
	mu sync.Mutex
	w  io.Writer
	f  *os.File
}

// NewMovementLog wraps an arbitrary writer, mainly for tests.
func NewMovementLog(w io.Writer) *MovementLog {
	return &MovementLog{w: w}
}

// OpenMovementLog opens (creating if necessary) the log file in append mode.
func OpenMovementLog(path string) (*MovementLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening movement log: %w", err)
	}
	return &MovementLog{w: f, f: f}, nil
}

// Record appends one sighting line for name at the given time.
func (l *MovementLog) Record(name string, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintf(l.w, "%s: %s moved in front of camera\n", at.Format(movementLayout), name); err != nil {
		return fmt.Errorf("appending movement log entry: %w", err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (l *MovementLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	return l.f.Close()
}
