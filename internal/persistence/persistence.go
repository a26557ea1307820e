// Package persistence implements the crash-safe dictionary file format and
// save/load lifecycle (§4.7), grounded on the teacher's sinks/file.go
// open/Emit/Close/Sync lifecycle, generalized to an atomic write-then-rename
// rather than append-in-place, since a dictionary save must never leave a
// half-written file behind for the next load to trip over.
package persistence

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wordlib-dev/wordlib/engine"
	"github.com/wordlib-dev/wordlib/internal/selflog"
	"github.com/wordlib-dev/wordlib/internal/wlerrors"
)

// header identifies a wordlib dictionary file. Readers that don't see this
// exact line on the first line treat the file as plain one-word-per-line
// text instead of rejecting it outright (§4.7: tolerant load).
const header = "# wordlib dictionary v1"

// WordLister is the subset of engine.Engine that Save needs.
type WordLister interface {
	Words() []string
}

// WordAdder is the subset of engine.Engine that Load needs.
type WordAdder interface {
	Add(word string) (engine.AddResult, error)
}

// Save writes every word in words to path using the crash-safe sequence from
// §4.7: write a sibling temp file, fsync it, then rename over the
// destination. On any failure the destination is left untouched and the
// temp file is removed.
func Save(path string, words []string) (err error) {
	dir := filepath.Dir(path)
	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return &wlerrors.IOFailureError{Op: "persistence.save.open", Path: tmp, Err: err}
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if _, werr := w.WriteString(header + "\n"); werr != nil {
		f.Close()
		return &wlerrors.IOFailureError{Op: "persistence.save.write", Path: tmp, Err: werr}
	}

	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	for _, word := range sorted {
		if _, werr := w.WriteString(word); werr != nil {
			f.Close()
			return &wlerrors.IOFailureError{Op: "persistence.save.write", Path: tmp, Err: werr}
		}
		if werr := w.WriteByte('\n'); werr != nil {
			f.Close()
			return &wlerrors.IOFailureError{Op: "persistence.save.write", Path: tmp, Err: werr}
		}
	}
	if ferr := w.Flush(); ferr != nil {
		f.Close()
		return &wlerrors.IOFailureError{Op: "persistence.save.flush", Path: tmp, Err: ferr}
	}
	if serr := f.Sync(); serr != nil {
		f.Close()
		return &wlerrors.IOFailureError{Op: "persistence.save.sync", Path: tmp, Err: serr}
	}
	if cerr := f.Close(); cerr != nil {
		return &wlerrors.IOFailureError{Op: "persistence.save.close", Path: tmp, Err: cerr}
	}
	if rerr := os.Rename(tmp, path); rerr != nil {
		return &wlerrors.IOFailureError{Op: "persistence.save.rename", Path: path, Err: rerr}
	}
	selflog.Default.Infof("persistence: saved %d words to %s (dir %s)", len(sorted), path, dir)
	return nil
}

// removeStaleTemp unlinks any <path>.tmp.* sibling left behind by a save
// that crashed before it could rename into place (§4.7: "a stale .tmp
// found on load is silently removed"). Glob/remove failures are logged,
// not returned, since a leftover temp file must never block a load.
func removeStaleTemp(path string) {
	matches, err := filepath.Glob(path + ".tmp.*")
	if err != nil {
		selflog.Default.Warnf("persistence: could not scan for stale temp files for %s: %v", path, err)
		return
	}
	for _, m := range matches {
		if rerr := os.Remove(m); rerr != nil && !os.IsNotExist(rerr) {
			selflog.Default.Warnf("persistence: could not remove stale temp file %s: %v", m, rerr)
		}
	}
}

// Load reads path, returning every non-header, non-empty, non-comment line
// as a word (§4.7). A missing file is not an error: it yields an empty
// word list, since a dictionary that does not exist yet is the expected
// state on first run (§4.7 "load is additive" — there's nothing to add).
func Load(path string) ([]string, error) {
	removeStaleTemp(path)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &wlerrors.IOFailureError{Op: "persistence.load.open", Path: path, Err: err}
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == header {
				continue
			}
		}
		if line == "" || line[0] == '#' {
			continue
		}
		words = append(words, line)
	}
	if serr := scanner.Err(); serr != nil {
		return nil, &wlerrors.IOFailureError{Op: "persistence.load.scan", Path: path, Err: serr}
	}
	selflog.Default.Infof("persistence: loaded %d words from %s", len(words), path)
	return words, nil
}

// LoadInto reads path and adds every word found to dst via WordAdder,
// returning the set of words read (for callers implementing the §4.12
// reload-diff rule).
func LoadInto(path string, dst WordAdder) ([]string, error) {
	words, err := Load(path)
	if err != nil {
		return nil, err
	}
	for _, word := range words {
		if _, err := dst.Add(word); err != nil {
			return nil, err
		}
	}
	return words, nil
}
