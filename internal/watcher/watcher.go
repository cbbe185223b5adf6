// Package watcher reports changes to the harness database file.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses bursts of writes into one notification
const DefaultDebounce = 500 * time.Millisecond

// sidecars are SQLite companion files whose changes also mean new data
var sidecars = []string{"", "-wal", "-journal"}

// Watcher watches a database file for changes
type Watcher struct {
	path     string
	onChange func(ctx context.Context)
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a new file watcher
func New(path string, onChange func(ctx context.Context), logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: DefaultDebounce,
		logger:   logger,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Watch blocks until the context is cancelled or the watcher fails to start.
// onChange runs at most once per debounce window and never concurrently,
// and Watch does not return while a call is still running.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watch the directory so replaced files (editors, cp over) are still seen
	absPath, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	names := make(map[string]bool, len(sidecars))
	for _, suffix := range sidecars {
		names[filepath.Base(absPath)+suffix] = true
	}

	w.logger.Info("watching database", zap.String("path", absPath), zap.Duration("debounce", w.debounce))

	var (
		mu    sync.Mutex
		timer *time.Timer
		run   sync.Mutex
	)
	fire := func() {
		run.Lock()
		defer run.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.logger.Info("database changed", zap.String("path", absPath))
		w.onChange(ctx)
	}

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !names[filepath.Base(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, fire)
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			// Wait out an onChange already in flight; later fires see ctx done
			run.Lock()
			run.Unlock() //nolint:staticcheck
			return ctx.Err()
		}
	}
}
