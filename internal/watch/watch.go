// Package watch re-asserts fact snapshots into a running engine whenever a watched directory's
// YAML files change (spec §11/§12's supplemented live-reload feature), grounded on the teacher's
// internal/core/mangle_watcher.go event-loop idiom: mutex-guarded state, a stop/done channel
// pair, and a debounce map drained by a ticker rather than acting on every raw fsnotify event.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/jgrey4296/elgo/internal/dispatch"
	"github.com/jgrey4296/elgo/internal/replay"
)

// Watcher watches a directory of `.yaml` fact snapshots and re-asserts each one's facts into a
// dispatcher whenever it changes.
type Watcher struct {
	mu          sync.Mutex
	fsw         *fsnotify.Watcher
	disp        *dispatch.Dispatcher
	dir         string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	log         *zap.Logger

	loadCount int
	errCount  int
}

// New builds a Watcher over dir, re-asserting into disp. log may be nil (a no-op logger is used).
func New(dir string, disp *dispatch.Dispatcher, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		fsw:         fsw,
		disp:        disp,
		dir:         dir,
		debounceMap: make(map[string]time.Time),
		debounceDur: 300 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		log:         log,
	}, nil
}

// Start begins watching in the background. Non-blocking.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsw.Add(w.dir); err != nil {
		return err
	}
	go w.run()
	return nil
}

// Stop halts the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

// Stats reports how many snapshots have loaded successfully, and how many errors occurred
// (snapshots that failed to load or convert, plus fsnotify error events).
func (w *Watcher) Stats() (loaded, errored int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loadCount, w.errCount
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.errCount++
			w.mu.Unlock()
		case <-ticker.C:
			w.processDebounced()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processDebounced() {
	w.mu.Lock()
	now := time.Now()
	var ready []string
	for path, t := range w.debounceMap {
		if now.Sub(t) >= w.debounceDur {
			ready = append(ready, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		w.reassert(path)
	}
}

func (w *Watcher) reassert(path string) {
	doc, err := replay.LoadFile(path)
	if err != nil {
		w.log.Warn("watch: failed to load snapshot", zap.String("path", path), zap.Error(err))
		w.mu.Lock()
		w.errCount++
		w.mu.Unlock()
		return
	}
	facts, err := doc.ToFacts()
	if err != nil {
		w.log.Warn("watch: failed to convert snapshot", zap.String("path", path), zap.Error(err))
		w.mu.Lock()
		w.errCount++
		w.mu.Unlock()
		return
	}
	for _, f := range facts {
		w.disp.Dispatch(f)
	}
	w.log.Info("watch: reasserted snapshot", zap.String("path", filepath.Base(path)), zap.Int("facts", len(facts)))
	w.mu.Lock()
	w.loadCount++
	w.mu.Unlock()
}
