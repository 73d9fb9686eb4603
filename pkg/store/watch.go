package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventFavoritesChanged indicates a dish was added to the favorites.
	EventFavoritesChanged EventType = iota

	// EventCommentsChanged indicates the comments of ItemID changed.
	EventCommentsChanged

	// EventInvalidated signals a change that could not be classified;
	// callers should refresh everything.
	EventInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventFavoritesChanged:
		return "favorites-changed"
	case EventCommentsChanged:
		return "comments-changed"
	default:
		return "invalidated"
	}
}

// AnyItem is the ItemID of events that are not tied to one dish.
const AnyItem = -1

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type   EventType
	ItemID int
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; the next event triggers a refresh anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventInvalidated, ItemID: AnyItem}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						// diskv creates nested directories and writes the file
						// before this event arrives, so catch up on the whole tree.
						for _, path := range p.watchTree(watcher, watched, filepath.Clean(evt.Name)) {
							throttle.Enqueue(p.eventForPath(path), send)
						}
						continue
					}
				}

				throttle.Enqueue(p.eventForPath(evt.Name), send)
			}
		}
	}()

	return events, nil
}

// watchTree adds a watch for dir and every directory below it that is not
// already watched. It returns the files found, which were written before
// the watches existed.
func (p *persistence) watchTree(watcher *fsnotify.Watcher, watched map[string]struct{}, dir string) []string {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
			return nil
		}
		if _, found := watched[path]; found {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", path, err)
			return nil
		}
		watched[path] = struct{}{}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: walk %s: %v\n", dir, err)
	}
	return files
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventForPath classifies a diskv file path.
func (p *persistence) eventForPath(path string) Event {
	invalidated := Event{Type: EventInvalidated, ItemID: AnyItem}
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return invalidated
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	switch {
	case len(parts) == 2 && parts[0] == favoritesBucket:
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			return invalidated
		}
		return Event{Type: EventFavoritesChanged, ItemID: id}
	case len(parts) >= 2 && parts[0] == commentsBucket:
		id, err := strconv.Atoi(parts[1])
		if err != nil {
			return invalidated
		}
		return Event{Type: EventCommentsChanged, ItemID: id}
	}
	return invalidated
}

// eventThrottle coalesces rapid change notifications so the UI can redraw once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[int]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[int]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[int]struct{})
	}
	t.pending[ev.Type][ev.ItemID] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding mu so that Stop waits for it; send must not
// block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[EventType]map[int]struct{})
	t.timer = nil
	if t.stopped {
		return
	}

	for eventType, items := range pending {
		for item := range items {
			send(Event{Type: eventType, ItemID: item})
		}
	}
}

// Stop cancels the pending flush. No send happens after Stop returns.
func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
