package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordlib-dev/wordlib/core"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, core.InformationSeverity, s.DiagnosticSeverity)
	assert.False(t, s.CaseSensitive)
	assert.Equal(t, 2, s.MaxSuggestionDistance)
	assert.Empty(t, s.DictionaryPath)
}

func TestBuilderAppliesOverrides(t *testing.T) {
	s := NewSettingsBuilder().
		DiagnosticSeverity("error").
		CaseSensitive(true).
		MaxSuggestionDistance(3).
		DictionaryPath("/tmp/dict.txt").
		Build()

	assert.Equal(t, core.ErrorSeverity, s.DiagnosticSeverity)
	assert.True(t, s.CaseSensitive)
	assert.Equal(t, 3, s.MaxSuggestionDistance)
	assert.Equal(t, "/tmp/dict.txt", s.DictionaryPath)
}

func TestBuilderClampsMaxSuggestionDistance(t *testing.T) {
	tooLow := NewSettingsBuilder().MaxSuggestionDistance(0).Build()
	assert.Equal(t, 1, tooLow.MaxSuggestionDistance)

	tooHigh := NewSettingsBuilder().MaxSuggestionDistance(99).Build()
	assert.Equal(t, 5, tooHigh.MaxSuggestionDistance)
}

func TestBuilderEmptySeverityKeepsDefault(t *testing.T) {
	s := NewSettingsBuilder().DiagnosticSeverity("").Build()
	assert.Equal(t, core.InformationSeverity, s.DiagnosticSeverity)
}

func TestSaveTargetPrefersWorkspace(t *testing.T) {
	assert.Equal(t, "/ws/.wordlib/dictionary.txt", SaveTarget("/home/.wordlib/dictionary.txt", "/ws/.wordlib/dictionary.txt"))
	assert.Equal(t, "/home/.wordlib/dictionary.txt", SaveTarget("/home/.wordlib/dictionary.txt", ""))
}

func TestWorkspaceDictionaryPathEmptyRoot(t *testing.T) {
	assert.Equal(t, "", WorkspaceDictionaryPath(""))
	assert.Equal(t, "/ws/.wordlib/dictionary.txt", WorkspaceDictionaryPath("/ws"))
}
