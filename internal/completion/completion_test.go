package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/engine"
)

func TestCompleteAtCursor(t *testing.T) {
	e := engine.New(true)
	for _, w := range []string{"hello", "help", "helicopter", "world"} {
		_, err := e.Add(w)
		require.NoError(t, err)
	}

	list := CompleteAt(e, "hel", core.Position{Line: 0, Column: 3})
	require.Len(t, list.Items, 3)
	assert.Equal(t, "helicopter", list.Items[0].Label)
	assert.Equal(t, "hello", list.Items[1].Label)
	assert.Equal(t, "help", list.Items[2].Label)
	assert.False(t, list.IsIncomplete)
	assert.Equal(t, "text", list.Items[0].Kind)
	assert.Equal(t, "0", list.Items[0].SortText)
}

func TestCompleteAtEmptyPrefixReturnsEmpty(t *testing.T) {
	e := engine.New(true)
	list := CompleteAt(e, "hello world", core.Position{Line: 0, Column: 6})
	assert.Empty(t, list.Items)
}

func TestCompleteAtMarksIncomplete(t *testing.T) {
	fc := fakeCompleter{max: 51}
	list := CompleteAt(fc, "abc", core.Position{Line: 0, Column: 3})
	assert.True(t, list.IsIncomplete)
	assert.Len(t, list.Items, 50)
}

type fakeCompleter struct{ max int }

func (f fakeCompleter) Complete(prefix string, limit int) []string {
	n := limit
	if f.max < n {
		n = f.max
	}
	out := make([]string, n)
	for i := range out {
		out[i] = prefix
	}
	return out
}
