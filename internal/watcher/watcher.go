// Package watcher monitors the data file backing the grid and notifies the
// TUI to reload. It watches the file's parent directory rather than the
// file itself: most editors and exporters save atomically (write temp file,
// rename over the original), which replaces the inode and would silently
// detach a direct file watch.
package watcher

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects a relevant change to the data file.
type Event struct{}

// Watch monitors path for writes, renames, and recreation, and sends Event
// values on the returned channel. Rapid bursts (exporters rewriting the
// file in chunks) are coalesced via the debounce window.
//
// Call the returned stop function to tear down the watcher.
func Watch(path string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, nil, err
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// jitterRange adds randomness to the debounce so several viewer
	// instances watching the same export don't all re-read the file at the
	// same instant.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base || shouldIgnore(ev.Name) {
					continue
				}
				jitter := time.Duration(rand.Int64N(int64(jitterRange) + 1))
				d := debounce + jitter
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore filters editor droppings that share the watched name prefix.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#")
}
