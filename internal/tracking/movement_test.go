package tracking

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMovementLog_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewMovementLog(&buf)

	at := time.Date(2024, 3, 15, 9, 30, 45, 123456000, time.UTC)
	if err := l.Record("alice", at); err != nil {
		t.Fatalf("record: %v", err)
	}

	expected := "2024-03-15 09:30:45.123456: alice moved in front of camera\n"
	if buf.String() != expected {
		t.Errorf("unexpected line:\n got %q\nwant %q", buf.String(), expected)
	}
}

func TestMovementLog_AppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movement_log.txt")

	// Two separate opens must append, not truncate.
	for _, name := range []string{"alice", "bob"} {
		l, err := OpenMovementLog(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if err := l.Record(name, time.Now()); err != nil {
			t.Fatalf("record: %v", err)
		}
		if err := l.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(data))
	}
	if !strings.Contains(lines[0], "alice") || !strings.Contains(lines[1], "bob") {
		t.Errorf("unexpected log contents: %q", string(data))
	}
}
