package workspace

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent reports that some path under a watched workspace changed.
// Op mirrors fsnotify's operation bitmask so callers can distinguish
// creates from removes without importing fsnotify themselves.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Watch recursively watches the workspace's directory tree and emits a
// ChangeEvent for every filesystem notification until ctx is cancelled.
// Newly created subdirectories are added to the watch automatically; the
// caller owns the returned channel and must keep draining it (or cancel
// ctx) to avoid blocking the watcher goroutine.
func (w *Workspace) Watch(ctx context.Context) (<-chan ChangeEvent, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := addRecursive(watcher, w.root); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan ChangeEvent)
	go func() {
		defer watcher.Close()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&fsnotify.Create != 0 {
					if info, err := statIsDir(ev.Name); err == nil && info {
						if err := watcher.Add(ev.Name); err != nil {
							slog.Warn("workspace: failed to watch new directory", "path", ev.Name, "error", err)
						}
					}
				}
				select {
				case out <- ChangeEvent{Path: ev.Name, Op: ev.Op}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("workspace: watcher error", "error", err)
			}
		}
	}()

	return out, nil
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return walkDirs(root, func(dir string) error {
		return watcher.Add(dir)
	})
}
