package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/litescript/ls-starfield/internal/logging"
)

// DefaultDebounce is how long a catalog file must be quiet before reloading.
const DefaultDebounce = 150 * time.Millisecond

// Reload reports the outcome of a catalog reload.
type Reload struct {
	Path  string
	Count int   // Stars loaded (0 on error)
	Err   error // Parse or read error; the previous catalog stays active
}

// Watcher reloads a catalog file into a Store whenever it changes.
type Watcher struct {
	Path    string
	Reloads <-chan Reload // Read-only external channel

	reloads  chan Reload
	done     chan struct{}
	store    *Store
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *logging.Logger

	started  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path that loads into store.
func NewWatcher(path string, store *Store, logger *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan Reload, 4)
	return &Watcher{
		Path:     abs,
		Reloads:  ch,
		reloads:  ch,
		done:     make(chan struct{}),
		store:    store,
		watcher:  fw,
		debounce: DefaultDebounce,
		log:      logging.OrDiscard(logger).Named("catalog"),
	}, nil
}

// Start begins watching. The parent directory is watched so editors that
// replace the file on save are still observed.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Reloads channel. It is safe to call more
// than once, and without a prior Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.reloads)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.reload()
				}
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				pending = time.Time{}
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	stars, err := LoadFile(w.Path)
	if err != nil {
		w.log.Warn("reload failed, keeping previous catalog: %v", err)
		w.emit(Reload{Path: w.Path, Err: err})
		return
	}

	w.store.Load(stars)
	w.log.Info("reloaded %d stars from %s", len(stars), w.Path)
	w.emit(Reload{Path: w.Path, Count: len(stars)})
}

// emit drops the notification if nobody is draining the channel; the store
// has already been updated.
func (w *Watcher) emit(r Reload) {
	select {
	case w.reloads <- r:
	default:
	}
}
