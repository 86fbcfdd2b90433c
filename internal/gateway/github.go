// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
)

// eventsPerPage is the maximum page size the events API accepts. The
// public feed only exposes the most recent events, so a single page is
// the whole working set for this tool.
const eventsPerPage = 100

// Fetcher defines the behavior of a gateway for fetching a user's
// public activity from GitHub.
type Fetcher interface {
	FetchUserEvents(ctx context.Context, username string) ([]domain.Event, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token is optional: the public events feed works unauthenticated,
// a token just raises the quota. baseURL overrides the API endpoint
// when non-empty (used for GitHub Enterprise and in tests).
func NewGitHubGateway(token, baseURL string, timeout time.Duration, logger *log.Logger) (Fetcher, error) {
	// Sleep limit zero: the waiter never sleeps through a secondary
	// rate limit, the quota error surfaces to the caller instead.
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(0, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	restClient := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
		}
		restClient.BaseURL = u
	}
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchUserEvents retrieves the most recent page of public events
// performed by username and converts them into domain events.
func (g *GitHubGateway) FetchUserEvents(ctx context.Context, username string) ([]domain.Event, error) {
	g.logger.Printf("Fetching public events for user %s...", username)
	opts := &github.ListOptions{PerPage: eventsPerPage}
	raw, _, err := g.restClient.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	if err != nil {
		return nil, g.mapError(err)
	}
	events := make([]domain.Event, 0, len(raw))
	for _, re := range raw {
		events = append(events, g.convertEvent(re))
	}
	g.logger.Printf("Completed fetching events: %d received.", len(events))
	return events, nil
}

// mapError folds every transport failure into the domain error taxonomy.
func (g *GitHubGateway) mapError(err error) error {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return domain.ErrRateLimited
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return domain.ErrUserNotFound
		case http.StatusForbidden, http.StatusTooManyRequests:
			// Unauthenticated quota exhaustion comes back as a plain 403.
			return domain.ErrRateLimited
		}
	}
	return &domain.NetworkError{Err: err}
}

// convertEvent maps one raw API event into the domain model. Unknown
// event types degrade to KindUnknown, and a payload that fails to parse
// degrades to a detail-less event; neither is an error.
func (g *GitHubGateway) convertEvent(re *github.Event) domain.Event {
	ev := domain.Event{
		Kind:      domain.ParseKind(re.GetType()),
		Repo:      re.GetRepo().GetName(),
		CreatedAt: re.GetCreatedAt().Time.UTC(),
	}
	if ev.Kind == domain.KindUnknown {
		return ev
	}
	payload, err := re.ParsePayload()
	if err != nil {
		g.logger.Printf("  Skipping payload of %s event: %v", re.GetType(), err)
		return ev
	}
	switch p := payload.(type) {
	case *github.PushEvent:
		ev.CommitCount = p.GetSize()
		if ev.CommitCount == 0 {
			ev.CommitCount = len(p.Commits)
		}
	case *github.IssuesEvent:
		ev.Action = p.GetAction()
	case *github.PullRequestEvent:
		ev.Action = p.GetAction()
	case *github.IssueCommentEvent:
		ev.Action = p.GetAction()
	case *github.PullRequestReviewEvent:
		ev.Action = p.GetAction()
	case *github.DeleteEvent:
		ev.Action = p.GetRef()
	}
	return ev
}
