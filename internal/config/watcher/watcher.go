// Package watcher reports edits of the configuration file.
//
// The containing directory is watched rather than the file itself so that
// editors which save by writing a temporary file and renaming it over the
// original are still observed. Bursts of events are debounced into one
// notification.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrClosed is returned when registering with a closed watcher.
var ErrClosed = errors.New("watcher closed")

// Event represents a file change event.
type Event struct {
	// Path is the absolute path to the changed file.
	Path string

	// Op is the operation that triggered the event.
	Op Operation

	// Time is when the last underlying event arrived.
	Time time.Time
}

// Operation represents the type of file operation.
type Operation int

const (
	// OpWrite indicates the file was modified.
	OpWrite Operation = iota

	// OpCreate indicates a new file was created.
	OpCreate

	// OpRemove indicates the file was deleted.
	OpRemove

	// OpRename indicates the file was renamed.
	OpRename
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Handler is called when a file change is detected. Handlers run on the
// watcher's goroutine.
type Handler func(event Event)

// Watcher monitors a single file for changes.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	path     string
	handlers []Handler
	debounce time.Duration
	logger   *zap.Logger

	timer   *time.Timer
	pending *Event

	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce duration for rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch errors.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New starts watching path. The file does not have to exist yet but its
// directory does.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		debounce: 100 * time.Millisecond,
		logger:   zap.NewNop(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// OnChange registers a handler for file change events.
func (w *Watcher) OnChange(handler Handler) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	w.handlers = append(w.handlers, handler)
	return nil
}

// Close stops watching. Pending debounced events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if op, ok := translate(ev.Op); ok {
				w.queue(Event{Path: w.path, Op: op, Time: time.Now()})
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", zap.String("path", w.path), zap.Error(err))
		}
	}
}

// translate maps fsnotify operations. Chmod alone is not a change.
func translate(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	}
	return 0, false
}

// coalesce merges a new event into a pending one:
// remove wins over everything, create survives later writes, and
// otherwise the newest operation is kept.
func coalesce(pending *Event, next Event) Event {
	if pending == nil {
		return next
	}
	merged := next
	switch {
	case next.Op == OpRemove:
	case pending.Op == OpRemove && next.Op == OpWrite:
		merged.Op = OpRemove
	case pending.Op == OpCreate && next.Op == OpWrite:
		merged.Op = OpCreate
	}
	return merged
}

func (w *Watcher) queue(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	merged := coalesce(w.pending, ev)
	w.pending = &merged

	if w.debounce == 0 {
		w.pending = nil
		handlers := append([]Handler(nil), w.handlers...)
		w.mu.Unlock()
		emit(handlers, merged)
		w.mu.Lock()
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || w.pending == nil {
		w.mu.Unlock()
		return
	}
	ev := *w.pending
	w.pending = nil
	handlers := append([]Handler(nil), w.handlers...)
	w.mu.Unlock()

	emit(handlers, ev)
}

// emit calls each handler, recovering from panics so one bad handler
// cannot stop the watcher.
func emit(handlers []Handler, ev Event) {
	for _, h := range handlers {
		func() {
			defer func() { _ = recover() }()
			h(ev)
		}()
	}
}
