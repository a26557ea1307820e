package codeaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/engine"
	"github.com/wordlib-dev/wordlib/internal/wlerrors"
	"github.com/wordlib-dev/wordlib/session"
)

func TestForDiagnosticReturnsTwoActions(t *testing.T) {
	d := core.NewUnknownWordDiagnostic(core.Span{Start: 0, End: 5}, core.Range{}, "quikc", core.InformationSeverity)
	actions := ForDiagnostic(d)
	require.Len(t, actions, 2)
	assert.Equal(t, AddWordCommand, actions[0].Command)
	assert.Equal(t, []string{"quikc"}, actions[0].Args)
	assert.Equal(t, IgnoreWordCommand, actions[1].Command)
}

func TestForDiagnosticOtherCodeReturnsNil(t *testing.T) {
	d := core.Diagnostic{Code: "something.else"}
	assert.Nil(t, ForDiagnostic(d))
}

func TestExecuteAddWord(t *testing.T) {
	e := engine.New(true)
	_, err := e.Add("hello")
	require.NoError(t, err)

	var savedPath string
	var savedWords []string
	revalidated := false

	ex := &Executor{
		Engine:     e,
		Ignore:     session.NewIgnoreSet(),
		GlobalPath: "/home/.wordlib/dictionary.txt",
		Save: func(path string, words []string) error {
			savedPath, savedWords = path, words
			return nil
		},
		Revalidate: func() { revalidated = true },
	}

	require.NoError(t, ex.Execute(AddWordCommand, []string{"quikc"}))
	assert.True(t, e.Contains("quikc"))
	assert.Equal(t, "/home/.wordlib/dictionary.txt", savedPath)
	assert.Contains(t, savedWords, "quikc")
	assert.True(t, revalidated)
	assert.False(t, e.IsDirty())
}

func TestExecuteAddWordPrefersWorkspacePath(t *testing.T) {
	e := engine.New(true)
	var savedPath string
	ex := &Executor{
		Engine:        e,
		Ignore:        session.NewIgnoreSet(),
		GlobalPath:    "/home/.wordlib/dictionary.txt",
		WorkspacePath: "/ws/.wordlib/dictionary.txt",
		Save: func(path string, words []string) error {
			savedPath = path
			return nil
		},
	}
	require.NoError(t, ex.Execute(AddWordCommand, []string{"quikc"}))
	assert.Equal(t, "/ws/.wordlib/dictionary.txt", savedPath)
}

func TestExecuteIgnoreWord(t *testing.T) {
	e := engine.New(true)
	ignore := session.NewIgnoreSet()
	revalidated := false
	ex := &Executor{Engine: e, Ignore: ignore, Revalidate: func() { revalidated = true }}

	require.NoError(t, ex.Execute(IgnoreWordCommand, []string{"quikc"}))
	assert.True(t, ignore.Contains("quikc"))
	assert.True(t, revalidated)
}

func TestExecuteUnknownCommand(t *testing.T) {
	ex := &Executor{Engine: engine.New(true), Ignore: session.NewIgnoreSet()}
	err := ex.Execute("wordlib.bogus", []string{"x"})
	require.Error(t, err)
	var unknown *wlerrors.UnknownMethodError
	assert.ErrorAs(t, err, &unknown)
}

func TestExecuteBadArgsCount(t *testing.T) {
	ex := &Executor{Engine: engine.New(true), Ignore: session.NewIgnoreSet()}
	err := ex.Execute(AddWordCommand, nil)
	require.Error(t, err)
	var bad *wlerrors.BadParamsError
	assert.ErrorAs(t, err, &bad)
}
