package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"fansort/internal/fileutil"
)

func TestRenameMovesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := fileutil.Rename(src, dst); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected source removed, err=%v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected destination content %q", data)
	}
}

func TestRenameMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fileutil.Rename(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFilePreservesContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	if err := os.WriteFile(src, []byte("copy me"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(data) != "copy me" {
		t.Fatalf("unexpected destination content %q", data)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("expected source untouched: %v", err)
	}
}
