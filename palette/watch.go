package palette

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// A Watcher reports changes to a palette file so that long-running programs
// can reload it. The specific nature of each change is not reported; on any
// notification the caller should re-read the file with DecodeFile.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
	ch   chan<- struct{}
}

// Watch starts delivering a notification on ch whenever the file at path is
// created, written, renamed, or removed. It watches the file's parent
// directory rather than the file itself, so notifications keep flowing across
// the rename-over-replace that editors commonly perform when saving.
//
// When no longer in use, the caller should call Close to release resources
// associated with the Watcher.
func Watch(path string, ch chan<- struct{}) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{fw: fw, path: abs, ch: ch}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for ev := range w.fw.Events {
		if filepath.Clean(ev.Name) != w.path {
			continue
		}
		if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
			w.ch <- struct{}{}
		}
	}
}

// Errors returns a channel on which the Watcher delivers errors it
// encounters while monitoring the palette file.
func (w *Watcher) Errors() <-chan error { return w.fw.Errors }

// Close stops delivering change notifications and releases all resources
// associated with the Watcher.
func (w *Watcher) Close() error { return w.fw.Close() }
