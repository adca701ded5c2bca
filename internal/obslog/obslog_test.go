package obslog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWithEmptyPathIsSafeNoop(t *testing.T) {
	logger, flush, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error: %v", err)
	}
	defer flush()

	logger.Info("this must not panic or touch disk")
	logger.Error("neither must this")
}

func TestNewWithPathWritesSessionTaggedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goedit.log")

	logger, flush, err := New(path)
	if err != nil {
		t.Fatalf("New(%q) error: %v", path, err)
	}
	logger.Info("hello")
	flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log file to contain at least one record")
	}
}
