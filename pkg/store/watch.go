package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the persisted snapshot changed underneath us, e.g.
// another moodlog process wrote an entry.
type Event struct{}

// Watch streams change events for the local snapshot until ctx is cancelled.
// Callers should drain the returned channel; events are dropped rather than
// blocking the watcher when the consumer is not ready. Only the diskv
// backend supports watching.
func Watch(ctx context.Context, p Persistence) (<-chan Event, error) {
	dp, ok := p.(*diskvPersistence)
	if !ok {
		return nil, errors.New("store: watch requires the local backend")
	}
	if dp.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(dp.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dp.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dp.basePath, err)
	}

	events := make(chan Event, 1)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		// Coalesce bursts of filesystem events into a single refresh.
		var pending *time.Timer
		var fire <-chan time.Time

		send := func() {
			select {
			case events <- Event{}:
			default:
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != snapshotKey() {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(100 * time.Millisecond)
					fire = pending.C
				}
			case <-fire:
				pending = nil
				fire = nil
				send()
			}
		}
	}()

	return events, nil
}
