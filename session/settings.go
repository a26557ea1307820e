// Package session holds per-server-run state that the engine itself must
// never see: the ignore list, dictionary paths, and the settings object
// negotiated over workspace/didChangeConfiguration (§3, §6, §9 "no
// globals" — this state lives on the adapter instance).
package session

import (
	"os"
	"path/filepath"

	"github.com/wordlib-dev/wordlib/core"
)

const (
	defaultCaseSensitive         = false
	defaultMaxSuggestionDistance = 2
	minSuggestionDistance        = 1
	maxSuggestionDistance        = 5
)

// Settings is the resolved settings object from §6's "wordlib" key.
type Settings struct {
	DiagnosticSeverity    core.Severity
	CaseSensitive         bool
	MaxSuggestionDistance int
	DictionaryPath        string
}

// DefaultSettings returns the §6 defaults: information severity, case
// insensitive, max suggestion distance 2, no dictionary path override.
func DefaultSettings() Settings {
	return Settings{
		DiagnosticSeverity:    core.InformationSeverity,
		CaseSensitive:         defaultCaseSensitive,
		MaxSuggestionDistance: defaultMaxSuggestionDistance,
	}
}

// SettingsBuilder builds a Settings value field by field, grounded on the
// teacher's fluent SamplingConfigBuilder / LoggerBuilder idiom (chained
// setters returning the builder, a terminal Build()).
type SettingsBuilder struct {
	s Settings
}

// NewSettingsBuilder starts from the §6 defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{s: DefaultSettings()}
}

// DiagnosticSeverity parses raw per §6's enum (error/warning/information/
// hint); an empty string leaves the default untouched.
func (b *SettingsBuilder) DiagnosticSeverity(raw string) *SettingsBuilder {
	if raw != "" {
		b.s.DiagnosticSeverity = core.ParseSeverity(raw)
	}
	return b
}

// CaseSensitive sets the folding mode.
func (b *SettingsBuilder) CaseSensitive(v bool) *SettingsBuilder {
	b.s.CaseSensitive = v
	return b
}

// MaxSuggestionDistance sets the bound Suggest uses, clamped to [1,5] at
// Build time (the teacher's own defensive-clamping style, see
// sampling_config.go's Backoff factor guard).
func (b *SettingsBuilder) MaxSuggestionDistance(n int) *SettingsBuilder {
	b.s.MaxSuggestionDistance = n
	return b
}

// DictionaryPath overrides the resolved global dictionary path.
func (b *SettingsBuilder) DictionaryPath(path string) *SettingsBuilder {
	b.s.DictionaryPath = path
	return b
}

// Build finalizes the settings, clamping MaxSuggestionDistance to [1,5].
func (b *SettingsBuilder) Build() Settings {
	if b.s.MaxSuggestionDistance < minSuggestionDistance {
		b.s.MaxSuggestionDistance = minSuggestionDistance
	}
	if b.s.MaxSuggestionDistance > maxSuggestionDistance {
		b.s.MaxSuggestionDistance = maxSuggestionDistance
	}
	return b.s
}

// GlobalDictionaryPath returns $HOME/.wordlib/dictionary.txt, or the
// settings override if one is set (§6).
func GlobalDictionaryPath(settings Settings) string {
	if settings.DictionaryPath != "" {
		return settings.DictionaryPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".wordlib", "dictionary.txt")
}

// WorkspaceDictionaryPath returns <root>/.wordlib/dictionary.txt, or ""
// when no workspace root is known (§6).
func WorkspaceDictionaryPath(root string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(root, ".wordlib", "dictionary.txt")
}

// SaveTarget picks the save destination per §6: workspace if available,
// else global (§9 open question resolution — revisit if UX ever wants a
// selector).
func SaveTarget(globalPath, workspacePath string) string {
	if workspacePath != "" {
		return workspacePath
	}
	return globalPath
}
