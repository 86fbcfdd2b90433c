package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Mia06-coder/github-user-activity-cli/internal/cache"
	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
	"github.com/Mia06-coder/github-user-activity-cli/internal/gateway"
)

// PersistFunc is run after every store mutation so a snapshot can be
// written around each put/clear. A nil hook disables persistence.
type PersistFunc func(*cache.Store) error

// Service is the fetch orchestrator. It resolves a username to its
// event list (cache first, API on a miss), then filters and aggregates.
type Service struct {
	fetcher gateway.Fetcher
	store   *cache.Store
	logger  *log.Logger
	persist PersistFunc
}

// NewService creates a new Service instance. persist may be nil.
func NewService(fetcher gateway.Fetcher, store *cache.Store, logger *log.Logger, persist PersistFunc) *Service {
	return &Service{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
		persist: persist,
	}
}

// FetchActivity returns the aggregated activity summary for username.
// A cached entry is always considered usable: only an explicit
// ClearCache (or LRU displacement) invalidates it, there is no TTL.
// kindFilter narrows the events before aggregation; empty means all.
func (s *Service) FetchActivity(ctx context.Context, username, kindFilter string) (domain.Summary, error) {
	username = strings.TrimSpace(username)

	var events []domain.Event
	if entry, ok := s.store.Get(username); ok {
		s.logger.Printf("Cache hit for %s (fetched at %s).", username, entry.FetchedAt.Format(time.RFC3339))
		events = entry.Events
	} else {
		s.logger.Printf("Cache miss for %s, calling the GitHub API.", username)
		fetched, err := s.fetcher.FetchUserEvents(ctx, username)
		if err != nil {
			return domain.Summary{}, err
		}
		events = fetched
		s.store.Put(username, cache.Entry{
			Username:  username,
			FetchedAt: time.Now().UTC(),
			Events:    fetched,
		})
		s.runPersist()
	}

	return Aggregate(FilterByKind(events, kindFilter)), nil
}

// ClearCache removes every cached entry.
func (s *Service) ClearCache() {
	s.store.Clear()
	s.runPersist()
	s.logger.Println("Cache cleared.")
}

func (s *Service) runPersist() {
	if s.persist == nil {
		return
	}
	if err := s.persist(s.store); err != nil {
		// Persistence is best effort; the in-memory store stays valid.
		s.logger.Printf("Failed to persist cache: %v", err)
	}
}
