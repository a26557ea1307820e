package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordlib-dev/wordlib/core"
)

func TestPositionConversionRoundTrip(t *testing.T) {
	p := core.Position{Line: 2, Column: 8}
	wire := FromPosition(p)
	assert.Equal(t, 2, wire.Line)
	assert.Equal(t, 8, wire.Character)
	assert.Equal(t, p, wire.ToPosition())
}

func TestFromDiagnosticsNeverNil(t *testing.T) {
	out := FromDiagnostics(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFromDiagnosticMapsSeverity(t *testing.T) {
	d := core.NewUnknownWordDiagnostic(core.Span{Start: 0, End: 5}, core.Range{}, "quikc", core.ErrorSeverity)
	wire := FromDiagnostic(d)
	assert.Equal(t, 1, wire.Severity)
	assert.Equal(t, "wordlib.unknown", wire.Code)
	assert.Equal(t, "wordlib", wire.Source)
	assert.Equal(t, "Unknown word: 'quikc'", wire.Message)
}

func TestCapabilitiesMatchSpec(t *testing.T) {
	caps := Capabilities()
	assert.True(t, caps.TextDocumentSync.OpenClose)
	assert.Equal(t, 1, caps.TextDocumentSync.Change)
	assert.Equal(t, []string{"quickfix"}, caps.CodeActionProvider.CodeActionKinds)
	assert.ElementsMatch(t, []string{"wordlib.addWord", "wordlib.ignoreWord"}, caps.ExecuteCommandProvider.Commands)
}
