package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/odia-ai/voicegate/pkg/store"

	"github.com/stretchr/testify/require"
)

func TestCommitLookupFetch(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	data := []byte("fake wav bytes")

	entry, err := s.Commit("abc123", data)
	require.NoError(t, err)
	require.Equal(t, "abc123", entry.Key)
	require.Equal(t, int64(len(data)), entry.Size)

	got, ok := s.Lookup("abc123")
	require.True(t, ok)
	require.Equal(t, entry.Path, got.Path)

	fetched, err := s.Fetch("abc123")
	require.NoError(t, err)
	require.Equal(t, data, fetched)

	require.Equal(t, 1, s.Count())
}

func TestLookupMiss(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Lookup("nope")
	require.False(t, ok)
}

func TestFetchUnknownKey(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Fetch("nope")
	require.True(t, store.NotFound(err))
}

func TestFetchDeletedArtifact(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	entry, err := s.Commit("gone", []byte("bytes"))
	require.NoError(t, err)

	require.NoError(t, os.Remove(entry.Path))

	_, err = s.Fetch("gone")
	require.True(t, store.NotFound(err))
}

func TestCommitIsIdempotent(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	first, err := s.Commit("dup", []byte("first"))
	require.NoError(t, err)

	second, err := s.Commit("dup", []byte("second"))
	require.NoError(t, err)
	require.Equal(t, first.Path, second.Path)

	data, err := s.Fetch("dup")
	require.NoError(t, err)
	require.Equal(t, []byte("first"), data)

	require.Equal(t, 1, s.Count())
}

func TestLoadReindexesExistingArtifacts(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "deadbeef.wav"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	s, err := store.New(dir)
	require.NoError(t, err)

	require.Equal(t, 1, s.Count())

	data, err := s.Fetch("deadbeef")
	require.NoError(t, err)
	require.Equal(t, []byte("old"), data)
}

func TestKeyReturnsSameMutexPerFingerprint(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	require.Same(t, s.Key("a"), s.Key("a"))
	require.NotSame(t, s.Key("a"), s.Key("b"))
}
