// Package codeaction implements the Code Action Provider (§4.12): quick
// fixes for unknown-word diagnostics, and the workspace/executeCommand
// handlers those actions invoke.
package codeaction

import (
	"github.com/wordlib-dev/wordlib/core"
)

const (
	// AddWordCommand is the command identifier for "Add to dictionary".
	AddWordCommand = "wordlib.addWord"
	// IgnoreWordCommand is the command identifier for "Ignore for session".
	IgnoreWordCommand = "wordlib.ignoreWord"
)

// Action is one quick-fix offered for a diagnostic.
type Action struct {
	Title   string
	Kind    string // always "quickfix" (§6 codeActionKinds)
	Command string
	Args    []string
}

// ForDiagnostic returns the two actions §4.12 defines for a
// wordlib.unknown diagnostic, or nil for any other diagnostic code.
func ForDiagnostic(d core.Diagnostic) []Action {
	if d.Code != core.UnknownWordCode {
		return nil
	}
	return []Action{
		{
			Title:   "Add '" + d.Word + "' to dictionary",
			Kind:    "quickfix",
			Command: AddWordCommand,
			Args:    []string{d.Word},
		},
		{
			Title:   "Ignore '" + d.Word + "' for this session",
			Kind:    "quickfix",
			Command: IgnoreWordCommand,
			Args:    []string{d.Word},
		},
	}
}
