package catalog

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload announces that the watched catalog file changed on disk and carries
// the freshly loaded result. A deleted file reloads as the builtin set.
type Reload struct {
	Catalog *Catalog
	Path    string
	Err     error // load failure; Catalog is nil when set
}

// Watcher monitors one catalog file for edits using fsnotify. Editors save
// in bursts of events, so changes are debounced before reloading.
type Watcher struct {
	Path    string
	Reloads <-chan Reload // Read-only external channel

	reloads chan Reload // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the catalog file at path. The parent
// directory is watched rather than the file itself so that editors that
// replace the file on save stay tracked.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Reload, 4)
	w := &Watcher{
		Path:    path,
		Reloads: ch,
		reloads: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the catalog file's directory. On failure the
// underlying watcher is closed and the Watcher must not be reused.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.reloads)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: hold the latest event time until it goes quiet.
	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emitReload()
				}
				return
			}

			if !w.isCatalogFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && time.Since(pending) >= debounce {
				pending = time.Time{}
				w.emitReload()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func (w *Watcher) isCatalogFile(name string) bool {
	return filepath.Base(name) == filepath.Base(w.Path)
}

func (w *Watcher) emitReload() {
	cat, err := Load(w.Path)
	w.reloads <- Reload{Catalog: cat, Path: w.Path, Err: err}
}
