package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"renomeia/internal/config"
)

type memSink struct {
	entries []memEntry
	closed  bool
	failOn  string
}

type memEntry struct {
	name string
	data string
}

func (m *memSink) Add(name string, data []byte) error {
	if m.failOn != "" && name == m.failOn {
		return errors.New("sink full")
	}
	m.entries = append(m.entries, memEntry{name: name, data: string(data)})
	return nil
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}

// commitSession builds a session over real temp files so Commit can read
// their bytes back.
func commitSession(t *testing.T, refCSV string, files map[string]string) *Session {
	t.Helper()
	dir := t.TempDir()
	var descs []FileDescriptor
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	var err error
	descs, err = Discover(dir)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSession("matricula", "{nome}.{extensao}")
	if err := s.LoadReference(writeRef(t, refCSV), ""); err != nil {
		t.Fatal(err)
	}
	s.Preview(descs)
	return s
}

func TestCommit_MarkPolicy(t *testing.T) {
	s := commitSession(t, "matricula,nome\n1,Ana\n", map[string]string{
		"1.pdf":    "matched bytes",
		"nope.pdf": "stray bytes",
	})
	sink := &memSink{}

	var events []CommitEvent
	stats, err := s.Commit(context.Background(), sink, config.PolicyMark, 2, func(e CommitEvent) {
		events = append(events, e)
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(sink.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(sink.entries))
	}
	if sink.entries[0].name != "Ana.pdf" || sink.entries[0].data != "matched bytes" {
		t.Errorf("entry[0] = %+v", sink.entries[0])
	}
	if sink.entries[1].name != UnmatchedPrefix+"nope.pdf" {
		t.Errorf("entry[1].name = %q, want marked original", sink.entries[1].name)
	}
	if !sink.closed {
		t.Error("sink not closed")
	}
	if stats.Packaged != 2 || stats.Skipped != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalBytes != int64(len("matched bytes")+len("stray bytes")) {
		t.Errorf("TotalBytes = %d", stats.TotalBytes)
	}
	if s.State != StateDone {
		t.Errorf("State = %q, want %q", s.State, StateDone)
	}

	for i, e := range events {
		if e.Done != i+1 {
			t.Errorf("events[%d].Done = %d, want %d", i, e.Done, i+1)
		}
		if e.Total != 2 {
			t.Errorf("events[%d].Total = %d", i, e.Total)
		}
	}
}

func TestCommit_KeepPolicy(t *testing.T) {
	s := commitSession(t, "matricula,nome\n1,Ana\n", map[string]string{
		"nope.pdf": "x",
	})
	sink := &memSink{}

	stats, err := s.Commit(context.Background(), sink, config.PolicyKeep, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.entries) != 1 || sink.entries[0].name != "nope.pdf" {
		t.Fatalf("entries = %+v, want original name kept", sink.entries)
	}
	if stats.Packaged != 1 {
		t.Errorf("Packaged = %d", stats.Packaged)
	}
}

func TestCommit_SkipPolicy(t *testing.T) {
	s := commitSession(t, "matricula,nome\n1,Ana\n", map[string]string{
		"1.pdf":    "x",
		"nope.pdf": "y",
	})
	sink := &memSink{}

	var skipped []string
	stats, err := s.Commit(context.Background(), sink, config.PolicySkip, 1, func(e CommitEvent) {
		if e.Skipped {
			skipped = append(skipped, e.OriginalName)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.entries) != 1 || sink.entries[0].name != "Ana.pdf" {
		t.Fatalf("entries = %+v", sink.entries)
	}
	if stats.Packaged != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if len(skipped) != 1 || skipped[0] != "nope.pdf" {
		t.Errorf("skipped files observed = %v", skipped)
	}
}

func TestCommit_CollidingNamesGetDupSuffix(t *testing.T) {
	// Two matricula values map to the same nome, so both files render to the
	// same new name.
	s := commitSession(t, "matricula,nome\n1,Ana\n2,Ana\n", map[string]string{
		"1.pdf": "first",
		"2.pdf": "second",
	})
	sink := &memSink{}

	if _, err := s.Commit(context.Background(), sink, config.PolicyMark, 1, nil); err != nil {
		t.Fatal(err)
	}

	names := []string{sink.entries[0].name, sink.entries[1].name}
	if names[0] != "Ana.pdf" || names[1] != "Ana - dup1.pdf" {
		t.Errorf("names = %v, want dup suffix on the second claimant", names)
	}
}

func TestCommit_Cancelled(t *testing.T) {
	s := commitSession(t, "matricula,nome\n1,Ana\n", map[string]string{
		"1.pdf": "x",
	})
	sink := &memSink{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Commit(ctx, sink, config.PolicyMark, 1, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Commit() error = %v, want context.Canceled", err)
	}
	if !sink.closed {
		t.Error("sink must be closed on abort")
	}
	if s.State != StateError {
		t.Errorf("State = %q, want %q", s.State, StateError)
	}
}

func TestCommit_SinkFailureAborts(t *testing.T) {
	s := commitSession(t, "matricula,nome\n1,Ana\n", map[string]string{
		"1.pdf": "x",
	})
	sink := &memSink{failOn: "Ana.pdf"}

	_, err := s.Commit(context.Background(), sink, config.PolicyMark, 1, nil)
	if err == nil || !strings.Contains(err.Error(), "sink full") {
		t.Fatalf("Commit() error = %v, want wrapped sink error", err)
	}
	if s.State != StateError {
		t.Errorf("State = %q", s.State)
	}
}
