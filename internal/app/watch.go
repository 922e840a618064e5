package app

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchFile runs runOnce immediately, then again every time path is written,
// until ctx is cancelled. It watches path's parent directory rather than
// the file itself since many editors replace a file on save rather than
// writing it in place, which would otherwise drop the fsnotify watch.
func watchFile(ctx context.Context, path string, runOnce func() error) error {
	if err := runOnce(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := runOnce(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
