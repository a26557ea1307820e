package codeaction

import (
	"github.com/wordlib-dev/wordlib/engine"
	"github.com/wordlib-dev/wordlib/internal/wlerrors"
	"github.com/wordlib-dev/wordlib/session"
)

// SaveFunc persists a word list to a path; normally persistence.Save.
// Parameterized here so this package's tests don't touch the filesystem.
type SaveFunc func(path string, words []string) error

// Executor implements the two execute_command effects from §4.12.
type Executor struct {
	Engine        *engine.Engine
	Ignore        *session.IgnoreSet
	Save          SaveFunc
	WorkspacePath string // "" if no workspace dictionary is resolved
	GlobalPath    string
	Revalidate    func() // republishes diagnostics for every open document
}

// Execute dispatches by command name. Revalidate is always invoked on
// success, per §4.12 ("revalidate all open documents").
func (e *Executor) Execute(command string, args []string) error {
	if len(args) != 1 {
		return &wlerrors.BadParamsError{Method: command, Reason: "expected exactly one word argument"}
	}
	word := args[0]

	switch command {
	case AddWordCommand:
		if _, err := e.Engine.Add(word); err != nil {
			return err
		}
		target := session.SaveTarget(e.GlobalPath, e.WorkspacePath)
		if err := e.Save(target, e.Engine.Words()); err != nil {
			return err
		}
		e.Engine.MarkClean()
	case IgnoreWordCommand:
		e.Ignore.Add(word)
	default:
		return &wlerrors.UnknownMethodError{Method: command}
	}

	if e.Revalidate != nil {
		e.Revalidate()
	}
	return nil
}
