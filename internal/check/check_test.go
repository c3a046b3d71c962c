package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"renomeia/internal/config"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) log(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+": "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Info(f string, a ...interface{})    { r.log("INFO", f, a...) }
func (r *recordingLogger) Success(f string, a ...interface{}) { r.log("SUCCESS", f, a...) }
func (r *recordingLogger) Warn(f string, a ...interface{})    { r.log("WARN", f, a...) }
func (r *recordingLogger) Error(f string, a ...interface{})   { r.log("ERROR", f, a...) }
func (r *recordingLogger) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.log("DEBUG", f, a...)
	}
}

func (r *recordingLogger) contains(substr string) bool {
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func writeRef(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ref.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCheck_HealthyReference(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RefPath = writeRef(t, "matricula,nome\n1,Ana\n2,Bruno\n")
	cfg.MatchColumn = "matricula"
	log := &recordingLogger{}

	if !RunCheck(&cfg, log) {
		t.Fatalf("RunCheck = false, lines:\n%s", strings.Join(log.lines, "\n"))
	}
	if !log.contains("<- match column") {
		t.Error("match column not marked in the column listing")
	}
	if !log.contains("code-like") {
		t.Error("classification not reported")
	}
	if !log.contains("Indexed 2 rows") {
		t.Errorf("index stats missing, lines:\n%s", strings.Join(log.lines, "\n"))
	}
}

func TestRunCheck_MissingColumnFails(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RefPath = writeRef(t, "nome\nAna\n")
	cfg.MatchColumn = "matricula"
	log := &recordingLogger{}

	if RunCheck(&cfg, log) {
		t.Error("RunCheck should fail when the match column is absent")
	}
}

func TestRunCheck_NoColumnConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RefPath = writeRef(t, "nome\nAna\n")
	log := &recordingLogger{}

	if !RunCheck(&cfg, log) {
		t.Error("RunCheck without a match column should still succeed")
	}
	if !log.contains("No match column configured") {
		t.Error("missing hint about --match-column")
	}
}

func TestRunCheck_UnreadableReference(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RefPath = filepath.Join(t.TempDir(), "missing.xlsx")
	log := &recordingLogger{}

	if RunCheck(&cfg, log) {
		t.Error("RunCheck should fail for an unreadable reference")
	}
}

func TestRunCheck_DuplicateKeysWarn(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RefPath = writeRef(t, "matricula,nome\n1,Ana\n1,Bruno\n")
	cfg.MatchColumn = "matricula"
	log := &recordingLogger{}

	if !RunCheck(&cfg, log) {
		t.Fatal("duplicates are a warning, not a failure")
	}
	if !log.contains("duplicate") {
		t.Error("duplicate keys not reported")
	}
}
