// Package watcher reports when the game rewrites its state file.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single state dump produces.
const DefaultDebounce = 100 * time.Millisecond

// StateWatcher watches one file. It watches the containing directory so
// that write-then-rename replacements are seen too.
type StateWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	dir      string
	debounce time.Duration
	pending  time.Time
	changes  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New creates a watcher for path. Call Start to begin receiving changes.
func New(path string, debounce time.Duration) (*StateWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &StateWatcher{
		watcher:  w,
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Changes receives one value per debounced burst of writes. Bursts that
// arrive before the previous value is consumed are merged.
func (sw *StateWatcher) Changes() <-chan struct{} {
	return sw.changes
}

// Start watches in a goroutine until ctx is cancelled or Stop is called.
func (sw *StateWatcher) Start(ctx context.Context) error {
	sw.mu.Lock()
	if sw.running {
		sw.mu.Unlock()
		return nil
	}
	sw.running = true
	sw.mu.Unlock()

	if err := sw.watcher.Add(sw.dir); err != nil {
		sw.mu.Lock()
		sw.running = false
		sw.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", sw.dir, err)
	}
	slog.Debug("Watching state file", "path", sw.path)

	go sw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (sw *StateWatcher) Stop() {
	sw.mu.Lock()
	wasRunning := sw.running
	sw.running = false
	sw.mu.Unlock()

	if wasRunning {
		close(sw.stopCh)
		<-sw.doneCh
	}
	if err := sw.watcher.Close(); err != nil {
		slog.Error("Failed to close state watcher", "error", err)
	}
}

func (sw *StateWatcher) run(ctx context.Context) {
	defer close(sw.doneCh)

	ticker := time.NewTicker(sw.debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-sw.stopCh:
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			sw.handleEvent(event)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("State watcher error", "error", err)

		case now := <-ticker.C:
			sw.flush(now)
		}
	}
}

func (sw *StateWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != sw.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	sw.pending = time.Now()
}

// flush emits a change once the file has been quiet for the debounce period.
func (sw *StateWatcher) flush(now time.Time) {
	if sw.pending.IsZero() || now.Sub(sw.pending) < sw.debounce {
		return
	}
	sw.pending = time.Time{}

	select {
	case sw.changes <- struct{}{}:
	default:
	}
}
