package watch

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher collects change notifications for model files. fsnotify delivers events
// on its own goroutine; the frame loop drains them with Changed, which never blocks.
// Directories are watched rather than files so editors that save by rename are seen.
type Watcher struct {
	w *fsnotify.Watcher

	mu      sync.Mutex
	files   map[string]string // cleaned path -> path as registered
	dirs    map[string]int
	pending map[string]struct{}
	errs    []error
	done    chan struct{}
	closed  bool
}

// New starts a watcher with no files registered.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		w:       fw,
		files:   make(map[string]string),
		dirs:    make(map[string]int),
		pending: make(map[string]struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			if orig, ok := w.files[filepath.Clean(ev.Name)]; ok {
				w.pending[orig] = struct{}{}
			}
			w.mu.Unlock()
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.errs = append(w.errs, err)
			w.mu.Unlock()
		}
	}
}

// Add registers path. Adding the same path twice is a no-op.
func (w *Watcher) Add(path string) error {
	clean := filepath.Clean(path)
	dir := filepath.Dir(clean)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fsnotify.ErrClosed
	}
	if _, ok := w.files[clean]; ok {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.w.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[clean] = path
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) {
	clean := filepath.Clean(path)
	dir := filepath.Dir(clean)

	w.mu.Lock()
	defer w.mu.Unlock()
	orig, ok := w.files[clean]
	if !ok {
		return
	}
	delete(w.files, clean)
	delete(w.pending, orig)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		if !w.closed {
			_ = w.w.Remove(dir)
		}
	}
}

// Changed returns, sorted, the registered paths modified since the last call, and
// any watcher errors seen in the meantime.
func (w *Watcher) Changed() ([]string, []error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for p := range w.pending {
		out = append(out, p)
	}
	sort.Strings(out)
	clear(w.pending)
	errs := w.errs
	w.errs = nil
	return out, errs
}

// Close stops the watcher. Calling it again is a no-op.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	err := w.w.Close()
	<-w.done
	return err
}
