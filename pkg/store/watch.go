package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay coalesces bursts of writes; a full rewrite shows up as several events.
const WatchDelay = 100 * time.Millisecond

// Watch signals on the returned channel whenever the file at path changes, until
// ctx is cancelled. The containing directory is created if missing so a store
// without its first entry can be watched. Signals are dropped while the consumer
// is busy, a later one follows the next write.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Op: "create directory", Path: dir, Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn("store: watcher close", "err", err)
			}
		})
	}

	// The directory is watched rather than the file so a recreated file is still seen.
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, &Error{Op: "watch", Path: dir, Err: err}
	}

	target := filepath.Clean(path)
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer closeWatcher()

		var timer *time.Timer
		fire := make(chan struct{}, 1)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-fire:
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("store: watch", "path", path, "err", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				log.Debug("store: change", "path", evt.Name, "op", evt.Op.String())
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(WatchDelay, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			}
		}
	}()

	return changes, nil
}
