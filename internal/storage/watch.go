package storage

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yong-ling/noteapp/internal/logs"
)

// Watcher reports changes made to a slot from outside the current process,
// for example another instance of the app or a manual edit of the file.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
}

// Watch starts watching the slot's backing file for modification. Events are
// coalesced: a burst of writes produces at least one notification, not one
// per write.
func (s *Store) Watch(key string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: atomic rename replaces the inode.
	if err := fsw.Add(s.dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	target := filepath.Base(s.Path(key))
	go w.run(target)

	return w, nil
}

func (w *Watcher) run(target string) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logs.Logger.Printf("storage watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Events returns the notification channel.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
