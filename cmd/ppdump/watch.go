package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of write events an editor's save
// produces into a single re-tokenise.
const debounce = 150 * time.Millisecond

// fileWatcher watches a single file for writes/creates, debounced,
// by watching its containing directory and filtering fsnotify events
// down to that one path.
type fileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	events   chan struct{}
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

func newFileWatcher(path string) (*fileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &fileWatcher{
		watcher:  fw,
		filePath: absPath,
		events:   make(chan struct{}, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *fileWatcher) Events() <-chan struct{} { return w.events }
func (w *fileWatcher) Errors() <-chan error    { return w.errors }

func (w *fileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	return w.watcher.Close()
}

func (w *fileWatcher) loop() {
	var (
		timer     *time.Timer
		timerChan <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			timer, timerChan = w.handleEvent(event, timer, timerChan)

		case <-timerChan:
			w.send()
			timer = nil
			timerChan = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		}
	}
}

func (w *fileWatcher) handleEvent(event fsnotify.Event, timer *time.Timer, timerChan <-chan time.Time) (*time.Timer, <-chan time.Time) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || abs != w.filePath {
		return timer, timerChan
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return timer, timerChan
	}
	if timer == nil {
		timer = time.NewTimer(debounce)
		return timer, timer.C
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(debounce)
	return timer, timerChan
}

func (w *fileWatcher) send() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}

func (w *fileWatcher) sendErr(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
