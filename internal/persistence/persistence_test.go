package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordlib-dev/wordlib/engine"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")

	words := []string{"zebra", "apple", "mango", "apple"}
	require.NoError(t, Save(path, words))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "apple", "mango", "zebra"}, got)
}

func TestLoadMissingFileIsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	got, err := Load(filepath.Join(dir, "nope.txt"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, Save(path, []string{"one", "two"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dictionary.txt", entries[0].Name())
}

func TestLoadSkipsHeaderAndComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	content := header + "\n# a user comment\n\nhello\nworld\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, got)
}

func TestLoadRemovesStaleTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte(header+"\nhello\n"), 0644))

	stale := path + ".tmp.99999"
	require.NoError(t, os.WriteFile(stale, []byte("half-written"), 0644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, got)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))
}

type fakeAdder struct{ added []string }

func (f *fakeAdder) Add(word string) (engine.AddResult, error) {
	f.added = append(f.added, word)
	return engine.Added, nil
}

func TestLoadInto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, Save(path, []string{"a", "b"}))

	dst := &fakeAdder{}
	words, err := LoadInto(path, dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)
	assert.Equal(t, []string{"a", "b"}, dst.added)
}
