package game

import (
	"os"
	"sync"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on change.
// A file appearing or disappearing also counts as a change.
type FileWatcher struct {
	Paths    []string
	Interval time.Duration
	onChange func(string) // called with path that changed

	stopCh   chan struct{}
	stopOnce sync.Once
	seen     map[string]fileState
}

type fileState struct {
	exists bool
	mtime  time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &FileWatcher{
		Paths:    paths,
		Interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		seen:     make(map[string]fileState),
	}
}

// Start records the current state of every path and begins polling in a goroutine.
func (w *FileWatcher) Start() {
	w.scan(true)
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher. It is safe to call more than once.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// scan compares each path against the last observation. Only the polling
// goroutine calls it after Start, so seen needs no lock.
func (w *FileWatcher) scan(prime bool) {
	for _, p := range w.Paths {
		cur := fileState{}
		if fi, err := os.Stat(p); err == nil {
			cur = fileState{exists: true, mtime: fi.ModTime()}
		}
		last, ok := w.seen[p]
		w.seen[p] = cur
		if prime || !ok {
			continue
		}
		if cur.exists != last.exists || cur.mtime.After(last.mtime) {
			if w.onChange != nil {
				w.onChange(p)
			}
		}
	}
}
