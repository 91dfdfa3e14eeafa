package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name := <-w.Events:
		return name
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
	return ""
}

func TestWatcherReportsFrameWrites(t *testing.T) {
	root := t.TempDir()
	seq := filepath.Join(root, "load")
	if err := os.Mkdir(seq, 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	frame := filepath.Join(seq, "1.png")
	if err := os.WriteFile(frame, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := waitEvent(t, w); got != frame {
		t.Fatalf("event = %q, want %q", got, frame)
	}
}

func TestWatcherPicksUpNewSequence(t *testing.T) {
	root := t.TempDir()
	w, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	seq := filepath.Join(root, "spin")
	if err := os.Mkdir(seq, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := waitEvent(t, w); got != seq {
		t.Fatalf("event = %q, want %q", got, seq)
	}

	frame := filepath.Join(seq, "1.png")
	if err := os.WriteFile(frame, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := waitEvent(t, w); got != frame {
		t.Fatalf("event = %q, want %q", got, frame)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	seq := filepath.Join(root, "load")
	if err := os.Mkdir(seq, 0o755); err != nil {
		t.Fatal(err)
	}
	w, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(seq, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if w.Changed() {
		t.Fatal("non-image file should not be reported")
	}
}

func TestNewMissingRoot(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestIsFrameFile(t *testing.T) {
	cases := map[string]bool{
		"a.png":         true,
		"b.JPG":         true,
		"c.webp":        true,
		"d.bmp":         true,
		"e.txt":         false,
		"noext":         false,
		"dir/f.gif":     true,
		"dir/.DS_Store": false,
	}
	for path, want := range cases {
		if got := IsFrameFile(path); got != want {
			t.Errorf("IsFrameFile(%q) = %v, want %v", path, got, want)
		}
	}
}
