package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ch, stop, err := Watch(path, 30*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatalf("no event after writing the watched file")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ch, stop, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data.csv.swp"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-ch:
		t.Fatalf("got event for unrelated files")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStopClosesChannel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ch, stop, err := Watch(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	stop()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("unexpected event after stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("channel not closed after stop")
	}
}
