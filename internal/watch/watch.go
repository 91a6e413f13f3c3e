// Package watch reports changes to palette source files so an open viewer can
// reload them.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/pview/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// Change reports that a watched source was written, replaced or removed.
type Change struct {
	Path    string
	Removed bool
}

// Watcher monitors a fixed set of palette files. Parent directories are
// watched rather than the files so atomic rename-on-save is seen.
type Watcher struct {
	files    map[string]struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *logger.Logger

	fire     chan Change
	done     chan struct{}
	stopOnce sync.Once

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New watches every path in files. A debounce of zero uses DefaultDebounce.
func New(files []string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(files)),
		watcher:  fw,
		debounce: debounce,
		log:      log,
		fire:     make(chan Change),
		done:     make(chan struct{}),
		timers:   make(map[string]*time.Timer),
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		log.WithFields(map[string]any{"dir": dir}).Debug("watching directory")
	}

	return w, nil
}

// Start begins delivering changes. The channel is closed when ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) <-chan Change {
	events := make(chan Change, 16)
	go w.loop(ctx, events)
	return events
}

// Stop releases the underlying watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop(ctx context.Context, events chan<- Change) {
	defer close(events)
	defer w.stopTimers()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, event)

		case change := <-w.fire:
			select {
			case events <- change:
				w.log.WithFields(map[string]any{"path": change.Path, "removed": change.Removed}).Debug("palette source changed")
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "watcher error")

		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		change := Change{Path: path, Removed: !exists(path)}
		select {
		case w.fire <- change:
		case <-ctx.Done():
		case <-w.done:
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
