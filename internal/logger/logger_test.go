package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDebugModeWritesToStdout(t *testing.T) {
	log := New("debug", Options{})
	if log == nil {
		t.Fatal("expected logger instance")
	}
	log.Debug("debug message")
}

func TestNewReleaseModeCreatesLogFile(t *testing.T) {
	dir := t.TempDir()

	log := New("release", Options{Dir: dir, Filename: "test.log"})
	if log == nil {
		t.Fatal("expected logger instance")
	}
	log.Info("release message")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(dir, "test.log")); err != nil {
		t.Fatalf("expected log file, got error: %v", err)
	}
}

func TestZReturnsFallbackWhenUninitialized(t *testing.T) {
	saved := L
	L = nil
	defer func() { L = saved }()

	if Z() == nil {
		t.Fatal("expected fallback logger")
	}
	if S() == nil {
		t.Fatal("expected fallback sugared logger")
	}
}

func TestResolveLogFilePathDefaults(t *testing.T) {
	dir := t.TempDir()

	path, err := resolveLogFilePath(Options{Dir: dir})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if filepath.Base(path) != defaultLogFilename {
		t.Fatalf("expected default filename, got %s", path)
	}
}
