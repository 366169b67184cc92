// Package watcher implements the TreeWatcher port using fsnotify.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/plansift/plansift-cli/internal/core/ports/driven"
	"github.com/plansift/plansift-cli/internal/logger"
)

// Ensure FSNotifyWatcher implements the interface.
var _ driven.TreeWatcher = (*FSNotifyWatcher)(nil)

// FSNotifyWatcher monitors a plan tree for changes to JSON leaf files.
// It watches the root and every immediate subdirectory, adding watches
// for subdirectories created while running.
type FSNotifyWatcher struct {
	watcher *fsnotify.Watcher
}

// New creates a tree watcher.
func New() (*FSNotifyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FSNotifyWatcher{watcher: w}, nil
}

// Watch starts monitoring root and emits events until ctx is cancelled.
func (w *FSNotifyWatcher) Watch(ctx context.Context, root string) (<-chan driven.TreeEvent, error) {
	if err := w.watcher.Add(root); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := w.watcher.Add(filepath.Join(root, entry.Name())); err != nil {
				return nil, err
			}
		}
	}

	events := make(chan driven.TreeEvent, 100)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				// New subdirectories need their own watch.
				if event.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := w.watcher.Add(event.Name); err != nil {
							logger.Warn("watch %s: %v", event.Name, err)
						}
					}
				}

				if !strings.HasSuffix(event.Name, ".json") {
					continue
				}

				var op driven.TreeOp
				switch {
				case event.Op.Has(fsnotify.Create):
					op = driven.TreeCreated
				case event.Op.Has(fsnotify.Write):
					op = driven.TreeModified
				case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
					op = driven.TreeDeleted
				default:
					continue
				}

				select {
				case events <- driven.TreeEvent{Path: event.Name, Op: op}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()

	return events, nil
}

// Close releases the underlying watches.
func (w *FSNotifyWatcher) Close() error {
	return w.watcher.Close()
}
