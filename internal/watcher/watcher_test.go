package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// collector records settled document paths.
type collector struct {
	mu    sync.Mutex
	paths []string
}

func (c *collector) add(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *collector) get() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

func (c *collector) waitFor(t *testing.T, n int, timeout time.Duration) []string {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if got := c.get(); len(got) >= n {
			return got
		}
		time.Sleep(10 * time.Millisecond)
	}
	return c.get()
}

func TestWatcherReportsNewDocument(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	w := New(dir, []string{".html"}, c.add, WithDebounce(50*time.Millisecond))
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "PMC1.html")
	if err := os.WriteFile(path, []byte("<html></html>"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got := c.waitFor(t, 1, 2*time.Second)
	if len(got) != 1 || got[0] != path {
		t.Fatalf("expected callback for %s, got %v", path, got)
	}
}

func TestWatcherFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	w := New(dir, []string{".html", ".pdf"}, c.add, WithDebounce(50*time.Millisecond))
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	matched := filepath.Join(dir, "PMC1.pdf")
	if err := os.WriteFile(matched, []byte("%PDF-1.4"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "PMC1_images.json"), []byte("[]"), 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got := c.waitFor(t, 1, 2*time.Second)
	// Settle long enough for a spurious sidecar callback to have fired.
	time.Sleep(200 * time.Millisecond)
	got = c.get()
	if len(got) != 1 || got[0] != matched {
		t.Fatalf("expected only %s reported, got %v", matched, got)
	}
}

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	w := New(dir, nil, c.add, WithDebounce(150*time.Millisecond))
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "PMC1.html")
	// A burst of writes within the settle window collapses to one callback.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("<html></html>"), 0600); err != nil {
			t.Fatalf("write file: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	got := c.waitFor(t, 1, 2*time.Second)
	time.Sleep(300 * time.Millisecond)
	got = c.get()
	if len(got) != 1 {
		t.Fatalf("expected 1 debounced callback, got %d: %v", len(got), got)
	}
}

func TestWatcherCreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "not-yet")
	w := New(root, nil, func(string) {})
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if _, err := os.Stat(root); err != nil {
		t.Errorf("expected root created: %v", err)
	}
}

func TestWatcherIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	c := &collector{}
	w := New(dir, nil, c.add, WithDebounce(50*time.Millisecond))
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := c.get(); len(got) != 0 {
		t.Fatalf("expected no callback for directory, got %v", got)
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	w := New(t.TempDir(), nil, func(string) {})
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	w.Stop()
	w.Stop()
}

func TestWatcherContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := New(t.TempDir(), nil, func(string) {})
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()
	// Stop after cancel must not panic or deadlock.
	time.Sleep(50 * time.Millisecond)
	w.Stop()
}
