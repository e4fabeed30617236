// Package watch reports changes to the configuration file.
//
// Editors rarely write a file in place: most save to a scratch file and
// rename it over the original, which drops a watch on the file itself. The
// watcher therefore watches the containing directory and forwards only
// events naming the config file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/zjhints/internal/event"
	"github.com/chatter/zjhints/internal/ignore"
	"github.com/chatter/zjhints/internal/logger"
)

// DefaultSettle is how long a burst of writes must go quiet before a
// reload is requested.
const DefaultSettle = 100 * time.Millisecond

// Watcher watches a single file through its directory.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	filtered chan fsnotify.Event
	done     chan struct{}
	log      *logger.Logger
	ignore   *ignore.Matcher
}

// New starts watching path. The directory must exist; the file need not.
func New(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	dir := filepath.Dir(abs)

	log.Debug("creating config watcher", "path", abs)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create fsnotify watcher", "err", err)

		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		log.Error("failed to watch config directory", "path", dir, "err", err)
		watcher.Close()

		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	log.Info("watcher started", "path", abs)

	self := &Watcher{
		watcher:  watcher,
		path:     abs,
		filtered: make(chan fsnotify.Event, 1),
		done:     make(chan struct{}),
		log:      log,
		ignore:   ignore.NewMatcher(dir),
	}

	go self.filterEvents()

	return self, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the channel of events for the watched file.
func (w *Watcher) Events() <-chan fsnotify.Event {
	return w.filtered
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}

	return nil
}

// Reloads sends a reload event on out once each burst of file events has
// been quiet for settle. It returns when ctx is done or the watcher closes.
func (w *Watcher) Reloads(ctx context.Context, out chan<- event.Event, settle time.Duration) {
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-w.filtered:
			if !ok {
				return
			}
			timer.Reset(settle)
		case <-timer.C:
			w.log.Info("config changed", "path", w.path)
			select {
			case out <- event.Reload{}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *Watcher) filterEvents() {
	defer close(w.filtered)

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if !w.shouldForward(ev) {
				continue
			}

			w.log.Debug("config change detected", "path", ev.Name, "op", ev.Op.String())

			// Non-blocking send: one pending event is enough to trigger a
			// reload, the rest are coalesced.
			select {
			case w.filtered <- ev:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.log.Warn("watcher error", "err", err)
			}
		}
	}
}

// shouldForward reports whether ev concerns the watched file.
func (w *Watcher) shouldForward(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if w.ignore.Match(ev.Name, false) {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}
