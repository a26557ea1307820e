// Package diagnostics implements the Diagnostic Pipeline (§4.10): joining
// tokenizer output against the engine's word set to produce a sorted,
// deterministic diagnostic list for a document.
package diagnostics

import (
	"sort"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/internal/coord"
	"github.com/wordlib-dev/wordlib/internal/tokenizer"
)

// WordChecker is the narrow view this package needs of both the engine
// (for "is this word known") and the session ignore set (for "should this
// word be skipped"). Defined here rather than imported from engine/session
// to keep this package a leaf: the adapter wires concrete engine.Engine and
// session.IgnoreSet values into it.
type WordChecker interface {
	Contains(word string) bool
}

// Options configures one diagnostic computation: the tokenizer rules, the
// severity to stamp on every emitted diagnostic, and the session ignore
// set.
type Options struct {
	TokenizerConfig tokenizer.Config
	Severity        core.Severity
	Ignore          WordChecker
}

// Compute runs the pipeline from §4.10 over text: tokenize, check each
// token against engine, skip ignored words, translate spans to LSP ranges,
// and return the result sorted ascending by (line, column, end, word) for
// determinism. Words ending exactly at end-of-text are included — the
// source spec leaves this a documented choice (§9 open question); this
// implementation does not defer them, since a partially-typed final word
// still strictly obeys the tokenizer's own boundary rules and excluding it
// would make the diagnostic set depend on caret position, which nothing
// else in this pipeline does.
func Compute(engine WordChecker, text string, opts Options) []core.Diagnostic {
	spans := tokenizer.Tokenize(text, opts.TokenizerConfig)
	if len(spans) == 0 {
		return nil
	}
	idx := coord.NewIndex(text)

	diags := make([]core.Diagnostic, 0, len(spans))
	for _, span := range spans {
		word := text[span.Start:span.End]
		if opts.Ignore != nil && opts.Ignore.Contains(word) {
			continue
		}
		if engine.Contains(word) {
			continue
		}
		rng := core.Range{
			Start: idx.BytePosition(span.Start),
			End:   idx.BytePosition(span.End),
		}
		diags = append(diags, core.NewUnknownWordDiagnostic(span, rng, word, opts.Severity))
	}

	sort.Slice(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Range.Start.Line != b.Range.Start.Line {
			return a.Range.Start.Line < b.Range.Start.Line
		}
		if a.Range.Start.Column != b.Range.Start.Column {
			return a.Range.Start.Column < b.Range.Start.Column
		}
		if a.Range.End.Line != b.Range.End.Line {
			return a.Range.End.Line < b.Range.End.Line
		}
		if a.Range.End.Column != b.Range.End.Column {
			return a.Range.End.Column < b.Range.End.Column
		}
		return a.Word < b.Word
	})
	return diags
}

// Publication is the payload for a textDocument/publishDiagnostics
// notification (§4.10): a specific document version paired with the
// diagnostics computed against it, so a client can drop a publication that
// arrives after a newer version has already been accepted.
type Publication struct {
	URI         string
	Version     int
	Diagnostics []core.Diagnostic
}

// Publish builds the publication payload for one document. An empty
// Diagnostics slice (never nil, so JSON encodes "[]" not "null") clears
// prior diagnostics on the client.
func Publish(uri string, version int, diags []core.Diagnostic) Publication {
	if diags == nil {
		diags = []core.Diagnostic{}
	}
	return Publication{URI: uri, Version: version, Diagnostics: diags}
}
