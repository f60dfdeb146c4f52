package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fund-directory/pkg/logger"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long the file must stay quiet before it is re-read.
const watchDebounce = 250 * time.Millisecond

// SnapshotWatcher refreshes the snapshot cache whenever the snapshot file on
// disk is written, replaced or removed. Events are debounced, and a re-read
// that fails (a half-written or missing file) keeps the cached snapshot.
type SnapshotWatcher struct {
	path     string
	store    SnapshotStore
	watcher  *fsnotify.Watcher
	logger   *logger.Logger
	debounce time.Duration
	done     chan struct{}
}

// NewSnapshotWatcher watches the directory holding path, so atomic
// rename-into-place publishes are seen as well as in-place writes.
func NewSnapshotWatcher(path string, store SnapshotStore, logger *logger.Logger) (*SnapshotWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to resolve snapshot path: %w", err)
	}
	return &SnapshotWatcher{
		path:     abs,
		store:    store,
		watcher:  watcher,
		logger:   logger,
		debounce: watchDebounce,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns immediately; the watcher stops and
// releases its resources when ctx is cancelled.
func (w *SnapshotWatcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = w.watcher.Close()
		close(w.done)
		return fmt.Errorf("failed to watch snapshot directory: %w", err)
	}
	w.logger.Info("Watching snapshot file", logger.StringField("path", w.path))
	go w.run(ctx)
	return nil
}

// Done is closed once the watcher has stopped.
func (w *SnapshotWatcher) Done() <-chan struct{} {
	return w.done
}

func (w *SnapshotWatcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				timer.Reset(w.debounce)
			}
		case <-timer.C:
			w.refresh(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Snapshot watcher error", logger.ErrorField(err))
		}
	}
}

func (w *SnapshotWatcher) refresh(ctx context.Context) {
	snap, err := w.store.Refresh(ctx)
	if err != nil {
		w.logger.Warn("Snapshot file changed but could not be read, keeping cached snapshot",
			logger.StringField("path", w.path),
			logger.ErrorField(err),
		)
		return
	}
	w.logger.Info("Snapshot file changed, cache refreshed",
		logger.StringField("path", w.path),
		logger.Field("generated_at", snap.GeneratedAt),
	)
}
