package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	now := time.Now().UTC().Truncate(time.Second)

	store := New(3)
	store.Put("a", testEntry("a", now))
	store.Put("b", testEntry("b", now.Add(time.Minute)))
	store.Get("a") // "a" becomes most recently used
	require.NoError(t, store.SaveFile(path))

	restored := New(2)
	require.NoError(t, restored.LoadFile(path))
	assert.Equal(t, 2, restored.Len())

	entries := restored.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Username, "recency order must survive the round trip")
	assert.Equal(t, "b", entries[1].Username)
	assert.Equal(t, now.Add(time.Minute), entries[1].FetchedAt)
	assert.Len(t, entries[1].Events, 1)

	// "b" was least recently used before the save, so it goes first
	// when a fresh key arrives at capacity.
	restored.Put("c", testEntry("c", now))
	_, ok := restored.Get("b")
	assert.False(t, ok)
	_, ok = restored.Get("a")
	assert.True(t, ok)
}

func TestStore_LoadFileTrimsToCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	now := time.Now().UTC()

	big := New(20)
	for i := 0; i < 15; i++ {
		big.Put(fmt.Sprintf("user-%d", i), testEntry(fmt.Sprintf("user-%d", i), now))
	}
	require.NoError(t, big.SaveFile(path))

	store := New(DefaultCapacity)
	require.NoError(t, store.LoadFile(path))
	assert.Equal(t, DefaultCapacity, store.Len())

	// The snapshot is MRU-first, so the 10 most recent survive.
	for i := 5; i < 15; i++ {
		_, ok := store.Get(fmt.Sprintf("user-%d", i))
		assert.True(t, ok, "expected recent user-%d to be kept", i)
	}
	_, ok := store.Get("user-0")
	assert.False(t, ok)
}

func TestStore_LoadFileMissingIsNotAnError(t *testing.T) {
	store := New(DefaultCapacity)
	err := store.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestStore_LoadFileRejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(DefaultCapacity)
	err := store.LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse cache snapshot")
}

func TestStore_SaveFileLeavesNoTempBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	store := New(DefaultCapacity)
	store.Put("a", testEntry("a", time.Now().UTC()))
	require.NoError(t, store.SaveFile(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
