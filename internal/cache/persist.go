package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// snapshot is the on-disk layout: entries ordered most-recently-used
// first, so recency survives a round trip.
type snapshot struct {
	SavedAt time.Time `json:"saved_at"`
	Entries []Entry   `json:"entries"`
}

// SaveFile writes the store to path as indented JSON. The write goes
// through a temp file and a rename so a crash never leaves a truncated
// snapshot behind.
func (s *Store) SaveFile(path string) error {
	data, err := json.MarshalIndent(snapshot{
		SavedAt: time.Now().UTC(),
		Entries: s.Entries(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace cache snapshot: %w", err)
	}
	return nil
}

// LoadFile restores a snapshot written by SaveFile into the store,
// replacing its contents. Entries beyond the store's capacity are
// trimmed by recency before use. A missing file leaves the store empty
// and is not an error.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read cache snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse cache snapshot: %w", err)
	}
	entries := snap.Entries
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	s.Clear()
	// Insert least-recent first so Put rebuilds the recency order.
	for i := len(entries) - 1; i >= 0; i-- {
		s.Put(entries[i].Username, entries[i])
	}
	return nil
}
