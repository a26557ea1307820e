package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/engine"
	"github.com/wordlib-dev/wordlib/internal/tokenizer"
)

func mustAdd(t *testing.T, e *engine.Engine, words ...string) {
	t.Helper()
	for _, w := range words {
		_, err := e.Add(w)
		require.NoError(t, err)
	}
}

func TestUnknownWordDiagnostic(t *testing.T) {
	e := engine.New(false)
	mustAdd(t, e, "hello", "world")

	diags := Compute(e, "The quikc brown fox", Options{
		TokenizerConfig: tokenizer.Config{},
		Severity:        core.InformationSeverity,
	})

	var found *core.Diagnostic
	for i := range diags {
		if diags[i].Word == "quikc" {
			found = &diags[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, core.Span{Start: 4, End: 9}, found.Span)
	assert.Equal(t, 0, found.Range.Start.Line)
	assert.Equal(t, 4, found.Range.Start.Column)
	assert.Equal(t, 9, found.Range.End.Column)
	assert.Equal(t, "Unknown word: 'quikc'", found.Message)
}

func TestUTF8Span(t *testing.T) {
	e := engine.New(false)
	diags := Compute(e, "Bon caf\xc3\xa9!", Options{TokenizerConfig: tokenizer.Config{}})
	require.Len(t, diags, 2)
	assert.Equal(t, "Bon", diags[0].Word)
	assert.Equal(t, core.Span{Start: 0, End: 3}, diags[0].Span)
	assert.Equal(t, "café", diags[1].Word)
	assert.Equal(t, core.Span{Start: 4, End: 9}, diags[1].Span)
	assert.Equal(t, 4, diags[1].Range.Start.Column)
	assert.Equal(t, 8, diags[1].Range.End.Column)
}

func TestIgnoredWordSkipped(t *testing.T) {
	e := engine.New(false)
	ignore := fakeIgnore{"quikc": true}
	diags := Compute(e, "quikc", Options{TokenizerConfig: tokenizer.Config{}, Ignore: ignore})
	assert.Empty(t, diags)
}

func TestDeterminism(t *testing.T) {
	e := engine.New(false)
	mustAdd(t, e, "hello")
	text := "hello zzork yy xx zzork"
	d1 := Compute(e, text, Options{})
	d2 := Compute(e, text, Options{})
	assert.Equal(t, d1, d2)
}

func TestEmptyDiagnosticsNotNilAfterPublish(t *testing.T) {
	pub := Publish("file:///a.txt", 3, nil)
	assert.NotNil(t, pub.Diagnostics)
	assert.Empty(t, pub.Diagnostics)
	assert.Equal(t, 3, pub.Version)
}

type fakeIgnore map[string]bool

func (f fakeIgnore) Contains(word string) bool { return f[word] }
