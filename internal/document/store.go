// Package document implements the Document Store (§4.8): the map from URI
// to the last-known {language, version, text} of an open buffer.
package document

import (
	"sort"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/internal/wlerrors"
)

// Store owns every currently-open document's text. It is not safe for
// concurrent use (§5: engine and adapter are single-threaded cooperative).
type Store struct {
	docs map[string]*core.Document
}

// New creates an empty store.
func New() *Store {
	return &Store{docs: make(map[string]*core.Document)}
}

// Open registers a newly opened document. Re-opening an already-open URI
// is rejected with AlreadyOpenError (§4.8) rather than overwriting it — a
// client that sends two didOpen notifications for the same URI without an
// intervening didClose has a protocol bug worth surfacing.
func (s *Store) Open(uri, languageID string, version int, text string) error {
	if _, ok := s.docs[uri]; ok {
		return &wlerrors.AlreadyOpenError{URI: uri}
	}
	s.docs[uri] = &core.Document{
		URI:        uri,
		LanguageID: languageID,
		Version:    version,
		Text:       text,
	}
	return nil
}

// Update applies a full-text resync (§1 Non-goals: no incremental sync).
// A version regression is silently dropped per §4.8/§7 (StaleUpdate is not
// an error the client sees); the returned bool reports whether the update
// was applied, so callers can skip revalidation on a no-op.
func (s *Store) Update(uri string, version int, text string) (applied bool, err error) {
	doc, ok := s.docs[uri]
	if !ok {
		return false, &wlerrors.NotFoundError{Kind: "document", What: uri}
	}
	if version <= doc.Version {
		return false, &wlerrors.StaleUpdateError{
			URI:            uri,
			CurrentVersion: doc.Version,
			AttemptVersion: version,
		}
	}
	doc.Version = version
	doc.Text = text
	return true, nil
}

// Close removes uri from the store. Closing a URI that is not open changes
// nothing and returns a NotFoundError reporting that the URI is not open
// (§4.8).
func (s *Store) Close(uri string) error {
	if _, ok := s.docs[uri]; !ok {
		return &wlerrors.NotFoundError{Kind: "document", What: uri}
	}
	delete(s.docs, uri)
	return nil
}

// Get returns the document for uri, if open. The returned pointer is
// borrowed: it must not be retained past the document's next Update or
// Close (§3 ownership rules).
func (s *Store) Get(uri string) (*core.Document, bool) {
	doc, ok := s.docs[uri]
	return doc, ok
}

// Count returns the number of currently open documents.
func (s *Store) Count() int { return len(s.docs) }

// Iter calls yield for every open document, sorted by URI for deterministic
// revalidation order (§4.12 "revalidate all open documents"), stopping
// early if yield returns false.
func (s *Store) Iter(yield func(*core.Document) bool) {
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	for _, uri := range uris {
		if !yield(s.docs[uri]) {
			return
		}
	}
}
