package core

// Document is an open text buffer tracked by the document store: a URI, its
// declared language, a monotonic version, and the complete current text.
//
// Within one document's lifetime in the store, Version strictly increases
// across accepted updates (§3 invariant); updates with version <= current
// are discarded by the store, not by this type.
type Document struct {
	URI        string
	LanguageID string
	Version    int
	Text       string
}
