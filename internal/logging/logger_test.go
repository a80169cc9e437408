package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fansort/internal/logging"
)

func TestNewWritesToLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "fansort.log")

	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "console",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("renamed file", logging.String("old", "a.mkv"), logging.String("new", "b.mkv"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "renamed file") {
		t.Fatalf("unexpected log line %q", line)
	}
	if !strings.Contains(line, "old=a.mkv") || !strings.Contains(line, "new=b.mkv") {
		t.Fatalf("expected key=value attrs in %q", line)
	}
}

func TestConsoleHandlerPrefixesComponent(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logging.NewComponentLogger(logger, "rename").Info("hello")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "rename: hello") {
		t.Fatalf("expected component prefix in %q", data)
	}
	if strings.Contains(string(data), "component=") {
		t.Fatalf("component should not appear as attribute in %q", data)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")

	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "json",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("visible")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug record leaked into %q", data)
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatalf("info record missing from %q", data)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("goes nowhere", logging.Error(os.ErrNotExist))
}
