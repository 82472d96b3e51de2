package cabinet

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventOp is the kind of change a watcher Event reports.
type EventOp int

const (
	// OpCreate reports a record file that appeared.
	OpCreate EventOp = iota
	// OpModify reports a record file that was rewritten.
	OpModify
	// OpDelete reports a record file that went away.
	OpDelete
)

func (op EventOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Event is one record-level change observed in the store directory.
type Event struct {
	// Name is the record name, without directory or extension.
	Name string

	// Op is the kind of change.
	Op EventOp
}

// Watcher emits an Event for every record file change in the store
// directory. It wraps fsnotify, filters out non-record files, and
// translates paths back to record names.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	events  chan Event
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// Watch returns a Watcher over the store directory. The watcher emits
// nothing until Start is called.
func (s *Store) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &Watcher{
		dir:     s.dir,
		watcher: fw,
		events:  make(chan Event, 100),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start registers the store directory with the underlying watcher and
// begins emitting events. Starting an already-running watcher is an error.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.running = true
	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts the watcher down and closes the Events and Errors channels.
// It blocks until the event loop has exited. Stopping a watcher that is
// not running is a no-op.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)

	// Closing the fsnotify watcher unblocks the event loop.
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}

	w.wg.Wait()

	close(w.events)
	close(w.errors)

	return nil
}

// Events returns the channel record change events arrive on. The channel
// is closed by Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel watch errors arrive on. The channel is
// closed by Stop.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// IsRunning reports whether Start has been called and Stop has not.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// processEvents drains the fsnotify channels until shutdown, forwarding
// whatever convertEvent accepts.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if converted, ok := w.convertEvent(event); ok {
				select {
				case w.events <- converted:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

// convertEvent maps an fsnotify event onto a record Event. Events for
// files without the record suffix are dropped, as are chmod-only events.
// A rename surfaces as a delete of the old name; the new name arrives as
// its own create event.
func (w *Watcher) convertEvent(event fsnotify.Event) (Event, bool) {
	if !strings.HasSuffix(event.Name, recordSuffix) {
		return Event{}, false
	}

	var op EventOp
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove):
		op = OpDelete
	case event.Has(fsnotify.Rename):
		op = OpDelete
	default:
		return Event{}, false
	}

	name := strings.TrimSuffix(filepath.Base(event.Name), recordSuffix)
	return Event{Name: name, Op: op}, true
}
