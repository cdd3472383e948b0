package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcher reports changes to a single file. It watches the file's
// directory so editors that replace the file on save are still seen.
type watcher struct {
	fs   *fsnotify.Watcher
	path string
}

// newWatcher starts watching path. Events that happen after it returns
// are delivered by run.
func newWatcher(path string) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &watcher{fs: fw, path: abs}, nil
}

// run calls fn after every burst of writes to the file, once the file has
// been quiet for debounce. It returns ctx.Err() when ctx is done.
func (w *watcher) run(ctx context.Context, debounce time.Duration, fn func()) error {
	defer w.fs.Close()

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			fn()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			loggerFromContext(ctx).Warn("watcher error", "err", err)
		}
	}
}
