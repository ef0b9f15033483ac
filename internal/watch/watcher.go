// Package watch reports on-disk changes of the shader resource.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/kjkrol/glquad/pkg/gfx"
)

// Watcher emits gfx.ShaderChanged whenever the watched file is written or
// re-created. The parent directory is watched rather than the file so that
// editors replacing the file by rename are still seen.
type Watcher struct {
	path   string
	emit   func(gfx.Event)
	logger *slog.Logger

	fsw       *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func New(path string, emit func(gfx.Event), logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %q: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %q: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:   abs,
		emit:   emit,
		logger: logger,
		fsw:    fsw,
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("shader changed", "path", w.path, "op", event.Op.String())
			w.emit(gfx.ShaderChanged{Path: w.path})
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "path", w.path, "err", err)
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
