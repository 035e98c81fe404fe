package loader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher runs a callback whenever a document file settles after a change.
// Editors fire bursts of filesystem events on save, so events are debounced
// and the callback sees one call per burst.
type Watcher struct {
	path     string
	callback func()
	debounce time.Duration

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher watches the document at path. The callback runs on the watch
// goroutine, so a slow callback delays later change notifications but never
// overlaps itself.
func NewWatcher(path string, callback func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory, not the file. Editors that save through a
	// rename-and-replace would silently kill a watch on the file itself.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &Watcher{
		path:     filepath.Clean(path),
		callback: callback,
		debounce: 250 * time.Millisecond,
		fsw:      fsw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns immediately; the watch loop runs until
// ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop ends the watch and waits for the loop to exit. Only call Stop after
// Start.
func (w *Watcher) Stop() {
	w.fsw.Close()
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	timer := time.NewTimer(w.debounce)
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("document changed", "path", w.path, "op", event.Op.String())
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "path", w.path, "error", err)

		case <-timer.C:
			// The timer also fires once shortly after Start; pending
			// keeps that from reaching the callback.
			if pending {
				pending = false
				w.callback()
			}
		}
	}
}
