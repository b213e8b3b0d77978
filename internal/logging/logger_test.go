package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edlparser/internal/config"
	"edlparser/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "edlparser.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("configured logger")

	if !strings.Contains(readLog(t, cfg.Logging.File), "configured logger") {
		t.Fatal("expected message in configured log file")
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller", logging.String("file", "cut.edl"))

	content := readLog(t, logPath)
	if strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
	if !strings.Contains(content, "INFO") || !strings.Contains(content, "- file: cut.edl") {
		t.Fatalf("unexpected console output %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-debug.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if content := readLog(t, logPath); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerShowsComponentAndRunID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	base, err := logging.New(logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithRunID(context.Background(), "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	logger := logging.NewComponentLogger(logging.WithContext(ctx, base), "edl")

	logger.Info("edl file parsed", logging.Int("records", 3))

	content := readLog(t, logPath)
	if !strings.Contains(content, "[edl] run 1b4e28ba – edl file parsed") {
		t.Fatalf("unexpected header in %q", content)
	}
	if !strings.Contains(content, "- records: 3") {
		t.Fatalf("expected records field in %q", content)
	}
	if strings.Contains(content, "correlation_id") {
		t.Fatalf("run id should be folded into the header: %q", content)
	}
}

func TestJSONLoggerFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "skipping malformed edl line", "edl_malformed_line", logging.Int("line", 7))

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, logPath))), &payload); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if payload["level"] != "warn" {
		t.Fatalf("level = %v, want warn", payload["level"])
	}
	if payload["msg"] != "skipping malformed edl line" {
		t.Fatalf("msg = %v", payload["msg"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("expected ts key")
	}
	if payload[logging.FieldEventType] != "edl_malformed_line" {
		t.Fatalf("event_type = %v", payload[logging.FieldEventType])
	}
	if payload[logging.FieldErrorHint] == nil || payload[logging.FieldImpact] == nil {
		t.Fatalf("expected default hint and impact, got %v", payload)
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "level.log")
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden") || !strings.Contains(content, "shown") {
		t.Fatalf("expected info level filtering, got %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerAndErrorAttr(t *testing.T) {
	logging.NewNop().Info("discarded")
	if attr := logging.Error(nil); attr.Value.String() != "<nil>" {
		t.Fatalf("unexpected nil error attr: %v", attr)
	}
	if attr := logging.Error(errors.New("boom")); attr.Key != "error" {
		t.Fatalf("unexpected error attr key %q", attr.Key)
	}
}

func TestConsoleLoggerMirrorsJSONToFile(t *testing.T) {
	dir := t.TempDir()
	consolePath := filepath.Join(dir, "console.log")
	filePath := filepath.Join(dir, "edlparser.jsonl")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{consolePath},
		FilePath:    filePath,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("folder generation finished", logging.Int("created", 4))

	if content := readLog(t, consolePath); !strings.Contains(content, "- created: 4") {
		t.Fatalf("expected console formatting, got %q", content)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, filePath))), &payload); err != nil {
		t.Fatalf("file output should be JSON: %v", err)
	}
	if payload["created"] != float64(4) {
		t.Fatalf("created = %v, want 4", payload["created"])
	}
}
