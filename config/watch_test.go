package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherReportsEditsToTheFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "debug:\n  showCollision: false\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("debug:\n  showCollision: true\n"), 0o644))

	select {
	case got := <-w.Events:
		want, err := filepath.Abs(path)
		require.NoError(t, err)
		require.Equal(t, want, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}
}

func TestWatcherReportsOnceAfterABurstOfWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "camera:\n  zoom: 0.5\n")

	w, err := newWatcher(path, 500*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	for _, zoom := range []string{"0.75", "1.0", "1.25"} {
		require.NoError(t, os.WriteFile(path, []byte("camera:\n  zoom: "+zoom+"\n"), 0o644))
	}

	select {
	case got := <-w.Events:
		data, err := os.ReadFile(got)
		require.NoError(t, err)
		require.Equal(t, "camera:\n  zoom: 1.25\n", string(data))
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}

	select {
	case <-w.Events:
		t.Fatal("burst reported more than once")
	case <-time.After(time.Second):
	}
}
