package session

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/wordlib-dev/wordlib/internal/selflog"
)

// ReloadEvent reports that path changed on disk and should be reloaded.
// Delivered over DictionaryWatcher.Events, which the main loop drains at
// the top of its select alongside the JSON-RPC transport, so the reload
// itself still happens on the main tick (§5 expansion: "mutation of
// engine state must occur on the main tick only").
type ReloadEvent struct {
	Path string
}

// stamp is the mtime+size fingerprint used to debounce a watcher's own
// writes: NotifySelfWrite records the stamp a completed save produced, and
// the watcher ignores
// any fsnotify event whose resulting stamp still matches.
type stamp struct {
	modTime int64
	size    int64
}

func statStamp(path string) (stamp, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}, false
	}
	return stamp{modTime: info.ModTime().UnixNano(), size: info.Size()}, true
}

// DictionaryWatcher watches the resolved global and workspace dictionary
// paths for external edits (§4.12 expansion: a user hand-editing
// dictionary.txt in a second window). Grounded on the retrieval pack's
// fsnotify-based file watchers (e.g. standardbeagle-lci's FileWatcher),
// trimmed to the single responsibility this domain needs: one flat set of
// watched files, no recursive directory walk, no debounce timer — the
// debounce here is a content-fingerprint comparison, not a time window.
type DictionaryWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan ReloadEvent

	tracked       map[string]bool // dictionary file paths we care about, as opposed to every file in a watched dir
	lastSelfWrite map[string]stamp
}

// NewDictionaryWatcher creates a watcher with no paths registered yet.
func NewDictionaryWatcher() (*DictionaryWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dw := &DictionaryWatcher{
		watcher:       w,
		Events:        make(chan ReloadEvent),
		tracked:       make(map[string]bool),
		lastSelfWrite: make(map[string]stamp),
	}
	return dw, nil
}

// Watch registers path (global or workspace dictionary file). A path that
// does not exist yet is watched at its containing directory, per
// fsnotify's requirement that the target exist; Watch is a no-op if
// neither the path nor its directory can be resolved, since "the file
// does not exist yet" is expected steady state, not a failure (§4.12
// expansion: "additive feature... unaffected if no such watcher fires").
func (dw *DictionaryWatcher) Watch(path string) {
	if path == "" {
		return
	}
	dw.tracked[path] = true
	target := path
	if _, err := os.Stat(path); err != nil {
		target = filepath.Dir(path)
	}
	if err := dw.watcher.Add(target); err != nil {
		selflog.Default.Warnf("dictionary watcher: could not watch %s: %v", target, err)
	}
}

// NotifySelfWrite records the stamp a completed Save produced for path, so
// the run loop below can distinguish the resulting fsnotify event (our own
// write) from a genuine external edit.
func (dw *DictionaryWatcher) NotifySelfWrite(path string) {
	if st, ok := statStamp(path); ok {
		dw.lastSelfWrite[path] = st
	}
}

// Run drains the underlying fsnotify channels until stopped, forwarding a
// ReloadEvent for every Write/Create on a watched dictionary file whose
// resulting stamp does not match the most recent self-write recorded for
// that path. Intended to run in its own goroutine, coordinated with the
// main loop via errgroup (§5 expansion).
func (dw *DictionaryWatcher) Run(stop <-chan struct{}) {
	defer close(dw.Events)
	for {
		select {
		case <-stop:
			dw.watcher.Close()
			return
		case ev, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !dw.tracked[ev.Name] {
				continue
			}
			st, ok := statStamp(ev.Name)
			if !ok {
				continue
			}
			if prev, ok := dw.lastSelfWrite[ev.Name]; ok && prev == st {
				continue
			}
			dw.Events <- ReloadEvent{Path: ev.Name}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			selflog.Default.Warnf("dictionary watcher error: %v", err)
		}
	}
}
