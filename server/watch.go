package server

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sse-mib/instviz/errors"
	"github.com/sse-mib/instviz/logger"
)

// DatasetWatcher reloads the dataset when either JSON file changes.
// A failed reload keeps the previous dataset; a running server never dies
// on a bad edit.
type DatasetWatcher struct {
	server  *Server
	watcher *fsnotify.Watcher

	mu            sync.Mutex
	debounceTimer *time.Timer

	done chan struct{}
}

// debouncePeriod coalesces the burst of write events editors produce for a
// single save.
const debouncePeriod = 500 * time.Millisecond

// NewDatasetWatcher creates a watcher over the configured dataset files
func NewDatasetWatcher(s *Server) (*DatasetWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	for _, path := range []string{s.cfg.Data.AxesPath, s.cfg.Data.ReadingsPath} {
		if err := watcher.Add(path); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "watch dataset file %s", path)
		}
	}

	return &DatasetWatcher{
		server:  s,
		watcher: watcher,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching for dataset file changes
func (w *DatasetWatcher) Start() {
	go w.watchLoop()
}

// Stop ends the watch loop, cancels any pending debounced reload, and
// releases the fsnotify watcher.
func (w *DatasetWatcher) Stop() {
	close(w.done)
	w.watcher.Close()

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
}

func (w *DatasetWatcher) watchLoop() {
	log := w.server.logger
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debugw("Dataset file changed",
				logger.FieldPath, event.Name,
			)
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("Dataset watch error",
				logger.FieldError, err.Error(),
			)
		}
	}
}

// scheduleReload debounces rapid file changes into a single reload
func (w *DatasetWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debouncePeriod, w.reload)
}

// reload loads both files fresh and swaps them in atomically. Validation
// failures leave the running dataset untouched.
func (w *DatasetWatcher) reload() {
	ds, err := LoadDataset(w.server.cfg)
	if err != nil {
		w.server.logger.Warnw("Dataset reload failed, keeping previous dataset",
			logger.FieldError, err.Error(),
		)
		return
	}
	w.server.SwapDataset(ds)
}
