package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDictionaryWatcherDetectsExternalEdit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping fsnotify integration test in short mode")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

	dw, err := NewDictionaryWatcher()
	require.NoError(t, err)
	dw.Watch(path)
	dw.NotifySelfWrite(path)

	stop := make(chan struct{})
	defer close(stop)
	go dw.Run(stop)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0644))

	select {
	case ev := <-dw.Events:
		require.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a reload event for the external edit")
	}
}

func TestDictionaryWatcherIgnoresSelfWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping fsnotify integration test in short mode")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

	dw, err := NewDictionaryWatcher()
	require.NoError(t, err)
	dw.Watch(path)

	stop := make(chan struct{})
	defer close(stop)
	go dw.Run(stop)

	time.Sleep(50 * time.Millisecond)
	content := []byte("hello\nworld\n")
	require.NoError(t, os.WriteFile(path, content, 0644))
	dw.NotifySelfWrite(path)

	select {
	case ev := <-dw.Events:
		t.Fatalf("unexpected reload event for a self-caused write: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}
