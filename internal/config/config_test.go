package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"fansort/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogDir := filepath.Join(tempHome, ".local", "share", "fansort", "logs")
	if cfg.Paths.LogDir != wantLogDir {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogDir)
	}
	if cfg.Logging.Format != "auto" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
	if cfg.Rename.TitleCase {
		t.Fatal("expected title_case disabled by default")
	}
	if cfg.LockPath() != filepath.Join(wantLogDir, "fansort.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestLoadParsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		`[paths]`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		``,
		`[logging]`,
		`format = "JSON"`,
		`level = "Debug"`,
		``,
		`[registry]`,
		`extra_groups = ["MyFavSub", "  ", "OtherSub"]`,
		``,
		`[keywords]`,
		`extra = ["480p", ""]`,
		``,
		`[rename]`,
		`title_case = true`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected resolved existing path %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected lowercased logging values, got %+v", cfg.Logging)
	}
	if want := []string{"MyFavSub", "OtherSub"}; !reflect.DeepEqual(cfg.Registry.ExtraGroups, want) {
		t.Fatalf("extra groups: got %v want %v", cfg.Registry.ExtraGroups, want)
	}
	if want := []string{"480p"}; !reflect.DeepEqual(cfg.Keywords.Extra, want) {
		t.Fatalf("extra keywords: got %v want %v", cfg.Keywords.Extra, want)
	}
	if !cfg.Rename.TitleCase {
		t.Fatal("expected title_case enabled")
	}
}

func TestLoadRejectsBadLoggingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log level")
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to report exists=false")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected defaults, got %+v", cfg.Logging)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample config failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	defaults := config.Default()
	if cfg.Logging.Format != defaults.Logging.Format || cfg.Logging.Level != defaults.Logging.Level {
		t.Fatalf("sample config deviates from defaults: %+v", cfg.Logging)
	}
}
