// Package cache implements the bounded per-user event cache. It pairs a
// key lookup map with an explicit recency list so the LRU eviction rule
// is a testable algorithm rather than a side effect of map iteration.
package cache

import (
	"container/list"
	"strings"
	"time"

	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
)

// DefaultCapacity bounds the number of users kept in the store.
const DefaultCapacity = 10

// Entry holds the last successful fetch for one username. It is
// replaced wholesale on refresh, never merged or mutated in place.
type Entry struct {
	Username  string         `json:"username"`
	FetchedAt time.Time      `json:"fetched_at"`
	Events    []domain.Event `json:"events"`
}

type node struct {
	key   string
	entry Entry
}

// Store is an LRU-bounded mapping from normalized username to Entry.
// It is not safe for concurrent use; the CLI runs one command at a time.
type Store struct {
	capacity int
	order    *list.List // front = most recently used
	items    map[string]*list.Element
}

// New returns an empty store. A non-positive capacity falls back to
// DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// normalizeKey makes usernames case-insensitive cache keys.
func normalizeKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Get looks up the entry for username. A hit promotes the entry to
// most-recently-used; the entry contents are never modified.
func (s *Store) Get(username string) (Entry, bool) {
	el, ok := s.items[normalizeKey(username)]
	if !ok {
		return Entry{}, false
	}
	s.order.MoveToFront(el)
	return el.Value.(*node).entry, true
}

// Put inserts or replaces the entry for username and marks it
// most-recently-used. Inserting a brand-new key at capacity evicts the
// least-recently-used entry first; replacing an existing key never
// evicts. Put cannot fail.
func (s *Store) Put(username string, e Entry) {
	key := normalizeKey(username)
	if el, ok := s.items[key]; ok {
		el.Value.(*node).entry = e
		s.order.MoveToFront(el)
		return
	}
	if s.order.Len() >= s.capacity {
		s.evictOldest()
	}
	s.items[key] = s.order.PushFront(&node{key: key, entry: e})
}

func (s *Store) evictOldest() {
	back := s.order.Back()
	if back == nil {
		return
	}
	s.order.Remove(back)
	delete(s.items, back.Value.(*node).key)
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.order.Init()
	s.items = make(map[string]*list.Element, s.capacity)
}

// Len returns the current entry count.
func (s *Store) Len() int { return s.order.Len() }

// Entries returns the cached entries ordered most-recently-used first.
// Recency is not affected.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*node).entry)
	}
	return out
}
