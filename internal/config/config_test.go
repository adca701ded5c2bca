package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadMissingPathReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	got, err := Load(filepath.Join(dir, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if !reflect.DeepEqual(got, Tunables{}) {
		t.Fatalf("got %+v, want zero value", got)
	}
}

func TestLoadEmptyPathReturnsZeroValue(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if !reflect.DeepEqual(got, Tunables{}) {
		t.Fatalf("got %+v, want zero value", got)
	}
}

func TestLoadMalformedFileReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tab_stop: [this is not an int"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestLoadWellFormedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "tab_stop: 4\nquit_times: 1\nmessage_ttl: 5s\nextra_keywords:\n  go:\n    - defer\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.TabStop != 4 {
		t.Fatalf("TabStop = %d, want 4", got.TabStop)
	}
	if got.QuitTimes != 1 {
		t.Fatalf("QuitTimes = %d, want 1", got.QuitTimes)
	}
	if got.MessageTTL != 5*time.Second {
		t.Fatalf("MessageTTL = %v, want 5s", got.MessageTTL)
	}
	if len(got.ExtraKeywords["go"]) != 1 || got.ExtraKeywords["go"][0] != "defer" {
		t.Fatalf("ExtraKeywords[go] = %v, want [defer]", got.ExtraKeywords["go"])
	}
}

func TestDefaultPathHonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdgtest")
	want := filepath.Join("/tmp/xdgtest", "goedit", "config.yaml")
	if got := DefaultPath(); got != want {
		t.Fatalf("DefaultPath() = %q, want %q", got, want)
	}
}
