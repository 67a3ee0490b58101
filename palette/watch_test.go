package palette

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	if err := os.WriteFile(path, []byte("[colors]\n"), 0600); err != nil {
		t.Fatal(err)
	}
	ch := make(chan struct{}, 8)
	w, err := Watch(path, ch)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := os.WriteFile(path, []byte("[colors]\nrose = \"#FF007F\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ch:
	case err := <-w.Errors():
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("no notification within 5s of modifying the watched file")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.toml")
	if err := os.WriteFile(path, []byte("[colors]\n"), 0600); err != nil {
		t.Fatal(err)
	}
	ch := make(chan struct{}, 8)
	w, err := Watch(path, ch)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ch:
		t.Fatal("got a notification for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
