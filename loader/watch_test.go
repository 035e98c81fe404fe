package loader

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcherFiresOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	writeDoc(t, path, "diagram: usecase\n")

	var fired atomic.Int32
	w, err := NewWatcher(path, func() { fired.Add(1) })
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	writeDoc(t, path, "diagram: usecase\ntitle: changed\n")

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 25*time.Millisecond)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	writeDoc(t, path, "diagram: usecase\n")

	var fired atomic.Int32
	w, err := NewWatcher(path, func() { fired.Add(1) })
	require.NoError(t, err)
	w.debounce = 300 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	// A burst of writes inside one debounce window collapses to one call.
	for i := 0; i < 5; i++ {
		writeDoc(t, path, "diagram: usecase\n")
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 25*time.Millisecond)
	require.EqualValues(t, 1, fired.Load())
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	writeDoc(t, path, "diagram: usecase\n")

	var fired atomic.Int32
	w, err := NewWatcher(path, func() { fired.Add(1) })
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	writeDoc(t, filepath.Join(dir, "other.yaml"), "diagram: usecase\n")
	time.Sleep(200 * time.Millisecond)
	require.EqualValues(t, 0, fired.Load())
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "doc.yaml"), func() {})
	require.Error(t, err)
}
