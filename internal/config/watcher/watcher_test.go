package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitEvent blocks until the watcher delivers an event or the timeout
// expires.
func waitEvent(t *testing.T, w *Watcher, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(timeout):
		t.Fatal("no event before timeout")
		return Event{}
	}
}

// wantQuiet fails if the watcher delivers an event within the window.
func wantQuiet(t *testing.T, w *Watcher, window time.Duration) {
	t.Helper()
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event for %q", ev.Path)
	case <-time.After(window):
	}
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.conf")

	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Close again should be idempotent.
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "parley.conf")

	if _, err := New(path); err == nil {
		t.Error("New() with missing parent directory: want error, got nil")
	}
}

func TestWatcher_ReportsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.conf")
	if err := os.WriteFile(path, []byte("[look]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[look]\nlogo = off\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w, 2*time.Second)
	if ev.Path != path {
		t.Errorf("event path = %q, want %q", ev.Path, path)
	}
}

func TestWatcher_ReportsCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.conf")

	w, err := New(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[look]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	waitEvent(t, w, 2*time.Second)
}

func TestWatcher_ReportsRenameReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parley.conf")
	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Replace the file the way the atomic save does.
	tmp := filepath.Join(dir, "parley.conf.tmp-1")
	if err := os.WriteFile(tmp, []byte("new\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w, 2*time.Second)
	if ev.Path != path {
		t.Errorf("event path = %q, want %q", ev.Path, path)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parley.conf")
	if err := os.WriteFile(path, []byte("watched\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	sibling := filepath.Join(dir, "other.conf")
	if err := os.WriteFile(sibling, []byte("noise\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	wantQuiet(t, w, 300*time.Millisecond)
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parley.conf")
	if err := os.WriteFile(path, []byte("initial\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(150*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("burst\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	waitEvent(t, w, 2*time.Second)
	wantQuiet(t, w, 400*time.Millisecond)
}
