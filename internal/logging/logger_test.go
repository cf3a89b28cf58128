package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kino/internal/config"
	"kino/internal/logging"
)

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf, Color: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "resolver").Info("game accepted",
		logging.String("title", "The Matrix"),
		logging.Int64("tmdb_id", 603),
		logging.Any("genre_ids", []int{99, 10770}),
	)

	line := buf.String()
	for _, want := range []string{" INFO resolver: game accepted", `title="The Matrix"`, "tmdb_id=603", "genre_ids=99,10770"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no colour codes for non-terminal output, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be rendered as a prefix, got %q", line)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("message without caller")
	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warning", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "WARN shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf, RunID: "run-1"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.With(logging.String(logging.FieldComponent, "batch")).Info("batch complete", logging.Int("accepted", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" || entry["msg"] != "batch complete" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["run_id"] != "run-1" || entry["component"] != "batch" || entry["accepted"] != float64(3) {
		t.Fatalf("unexpected fields %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts field, got %v", entry)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestRunIDOnEveryLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf, RunID: "abc"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("one")
	logging.NewComponentLogger(logger, "resolver").Warn("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "run_id=abc") {
			t.Fatalf("expected run id on %q", line)
		}
	}
}

func TestFileOutputIsJSON(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "kino.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf, FilePath: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("exported", logging.String("output", "actors.json"))

	if !strings.Contains(buf.String(), "INFO exported") {
		t.Fatalf("expected console line, got %q", buf.String())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(content, &entry); err != nil {
		t.Fatalf("expected JSON log file, got %q: %v", content, err)
	}
	if entry["output"] != "actors.json" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.TMDB.APIToken = "test"
	cfg.Logging.Dir = t.TempDir()

	logger, err := logging.NewFromConfig(&cfg, "run-2")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("check file")

	content, err := os.ReadFile(filepath.Join(cfg.Logging.Dir, logging.LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"run_id":"run-2"`) {
		t.Fatalf("expected run id in log file, got %q", content)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "game rejected", "game_rejected", logging.String(logging.FieldImpact, "candidate dropped"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["event_type"] != "game_rejected" || entry["error_hint"] == nil || entry["impact"] != "candidate dropped" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestErrorWithContextKeepsHint(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.ErrorWithContext(logger, "tmdb find failed", "tmdb_request_failed",
		logging.String(logging.FieldErrorHint, "check TMDB_API_TOKEN"),
		logging.Error(errors.New("tmdb find returned 401")),
	)
	out := buf.String()
	if strings.Count(out, "error_hint") != 1 || !strings.Contains(out, "check TMDB_API_TOKEN") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, `"impact"`) {
		t.Fatalf("errors should not carry a default impact, got %q", out)
	}
}

func TestWithContextAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithKind(logging.WithExternalID(context.Background(), "nm0000001"), "person")
	logging.WithContext(ctx, logger).Info("resolving")

	if !strings.Contains(buf.String(), "external_id=nm0000001 kind=person") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected logger to be returned unchanged without context fields")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "test")
	logger.Error("discarded")
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("no-op logger should be disabled at every level")
	}
}
