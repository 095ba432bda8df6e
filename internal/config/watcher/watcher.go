// Package watcher reports changes to the saved configuration file so
// the application can reload it.
//
// The watcher registers the file's parent directory with fsnotify and
// filters events down to the one file. Watching the directory instead
// of the file survives editors and the atomic save path, both of which
// replace the file by rename and would orphan a file-level watch.
// Bursts of events settle through a debounce window before a single
// Event is delivered.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Event reports that the watched file changed.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Time is when the debounce window closed.
	Time time.Time
}

// Watcher watches one configuration file.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *logrus.Logger

	fsw    *fsnotify.Watcher
	events chan Event

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle window for bursts of file events.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch errors.
func WithLogger(log *logrus.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// New starts watching path. The parent directory must exist; the file
// itself may not, in which case its creation is reported like any
// other change.
func New(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		log:      logrus.StandardLogger(),
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	if err := w.fsw.Add(dir); err != nil {
		_ = w.fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the change channel. At most one event is pending at a
// time; changes that land while one waits coalesce into it, since a
// reload always reads the latest file content anyway.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and releases the underlying watch. Close is
// idempotent.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
	})
	w.wg.Wait()
	return w.fsw.Close()
}

// run drains fsnotify and applies the debounce window.
func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var settle <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			settle = timer.C

		case now := <-settle:
			timer = nil
			settle = nil
			select {
			case w.events <- Event{Path: w.path, Time: now}:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("configuration watch error")
		}
	}
}

// relevant reports whether ev describes new content for the watched
// file. A rename of the file itself means it was moved away, not
// replaced, so only creates and writes count.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write)
}
