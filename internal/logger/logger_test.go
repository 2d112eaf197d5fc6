package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestResolveLogFilePathDefaults(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveLogFilePath(Options{Dir: dir})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	want := filepath.Join(dir, defaultLogFilename)
	if got != want {
		t.Fatalf("path want %s got %s", want, got)
	}
	if _, err := os.Stat(got); err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
}

func TestResolveLogFilePathCustomFilename(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveLogFilePath(Options{Dir: filepath.Join(dir, "nested"), Filename: "app.log"})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if filepath.Base(got) != "app.log" {
		t.Fatalf("filename want app.log got %s", filepath.Base(got))
	}
	if _, err := os.Stat(filepath.Join(dir, "nested")); err != nil {
		t.Fatalf("log dir should be created: %v", err)
	}
}

func TestNewReleaseModeWritesFile(t *testing.T) {
	dir := t.TempDir()

	log := New("release", Options{Dir: dir, Filename: "release.log"})
	if log == nil {
		t.Fatalf("logger should not be nil")
	}
	log.Info("startup", zap.String("component", "test"))
	_ = log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "release.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file should not be empty")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	if got := normalizePositiveInt(0, 7); got != 7 {
		t.Fatalf("zero should fall back, got %d", got)
	}
	if got := normalizePositiveInt(-1, 7); got != 7 {
		t.Fatalf("negative should fall back, got %d", got)
	}
	if got := normalizePositiveInt(3, 7); got != 3 {
		t.Fatalf("positive should pass through, got %d", got)
	}
}
