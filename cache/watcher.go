package cache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/boralg/shadersense/logging"
)

// Watcher marks a Handle Dirty whenever its backing file changes on
// disk outside the handle's own edit path — an include changed by
// another process, or a file touched from outside the editor session.
// The event loop's select-over-Events/Errors/ctx.Done() shape is
// repointed from directory mirroring to cache invalidation.
type Watcher struct {
	fsWatcher *fsnotify.Watcher

	mu      sync.Mutex
	handles map[string]*Handle
}

func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{fsWatcher: fsWatcher, handles: make(map[string]*Handle)}, nil
}

// Watch registers h to be marked Dirty on changes to its FilePath.
func (w *Watcher) Watch(h *Handle) error {
	if err := w.fsWatcher.Add(h.FilePath); err != nil {
		return err
	}
	w.mu.Lock()
	w.handles[h.FilePath] = h
	w.mu.Unlock()
	return nil
}

// Unwatch stops tracking a path, called from Handle.Close's caller once
// a file is released.
func (w *Watcher) Unwatch(path string) {
	w.mu.Lock()
	delete(w.handles, path)
	w.mu.Unlock()
	w.fsWatcher.Remove(path)
}

// Run drains fsnotify events until ctx is cancelled, marking the
// matching handle Dirty on every Write/Create/Rename event.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.mu.Lock()
				h := w.handles[event.Name]
				w.mu.Unlock()
				if h != nil {
					h.MarkDirty()
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Error("cache watcher error", slog.Any("err", err))
		case <-ctx.Done():
			w.fsWatcher.Close()
			return
		}
	}
}
