package gateway

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
)

// setupTestGateway creates a GitHubGateway that communicates with a mock HTTP server.
func setupTestGateway(t *testing.T, handler http.Handler) (*GitHubGateway, *httptest.Server) {
	server := httptest.NewServer(handler)

	restClient := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	restClient.BaseURL = baseURL

	gateway := &GitHubGateway{
		restClient: restClient,
		logger:     log.New(io.Discard, "", 0),
	}
	return gateway, server
}

func TestGitHubGateway_FetchUserEvents(t *testing.T) {
	feed := `[
		{"type": "PushEvent", "repo": {"name": "octo/repo-a"}, "created_at": "2026-08-01T12:00:00Z", "payload": {"size": 3}},
		{"type": "IssuesEvent", "repo": {"name": "octo/repo-b"}, "created_at": "2026-08-01T11:00:00Z", "payload": {"action": "opened"}},
		{"type": "DeleteEvent", "repo": {"name": "octo/repo-a"}, "created_at": "2026-08-01T10:00:00Z", "payload": {"ref": "feature-x", "ref_type": "branch"}},
		{"type": "SponsorshipEvent", "repo": {"name": "octo/repo-c"}, "created_at": "2026-08-01T09:00:00Z", "payload": {}}
	]`

	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expectedEvents []domain.Event
		checkErr       func(t *testing.T, err error)
	}{
		{
			name: "happy path - parses known payloads and degrades unknown kinds",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.URL.String(), "/users/octocat/events/public")
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, feed)
			},
			expectedEvents: []domain.Event{
				{Kind: domain.KindPush, Repo: "octo/repo-a", CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), CommitCount: 3},
				{Kind: domain.KindIssues, Repo: "octo/repo-b", CreatedAt: time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC), Action: "opened"},
				{Kind: domain.KindDelete, Repo: "octo/repo-a", CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), Action: "feature-x"},
				{Kind: domain.KindUnknown, Repo: "octo/repo-c", CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "404 maps to user-not-found",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrUserNotFound)
			},
		},
		{
			name: "exhausted quota headers map to rate-limited",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Limit", "60")
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", "2145916800")
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, `{"message": "API rate limit exceeded"}`)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrRateLimited)
			},
		},
		{
			name: "plain 403 maps to rate-limited",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, `{"message": "Forbidden"}`)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrRateLimited)
			},
		},
		{
			name: "unexpected status maps to a network error with detail preserved",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			checkErr: func(t *testing.T, err error) {
				var netErr *domain.NetworkError
				require.ErrorAs(t, err, &netErr)
				assert.Contains(t, netErr.Err.Error(), "500")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, server := setupTestGateway(t, http.HandlerFunc(tc.handlerFunc))
			defer server.Close()

			events, err := gateway.FetchUserEvents(context.Background(), "octocat")
			if tc.checkErr != nil {
				require.Error(t, err)
				tc.checkErr(t, err)
				assert.Nil(t, events)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedEvents, events)
			}
		})
	}
}

func TestGitHubGateway_ConnectionFailureIsNetworkError(t *testing.T) {
	gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Nothing is listening anymore.

	_, err := gateway.FetchUserEvents(context.Background(), "octocat")
	require.Error(t, err)
	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestGitHubGateway_PushFallsBackToCommitList(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `[{"type": "PushEvent", "repo": {"name": "octo/repo-a"}, "created_at": "2026-08-01T12:00:00Z",
			"payload": {"commits": [{"sha": "a"}, {"sha": "b"}]}}]`)
	}
	gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
	defer server.Close()

	events, err := gateway.FetchUserEvents(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].CommitCount)
}

func TestNewGitHubGateway_RejectsBadBaseURL(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	_, err := NewGitHubGateway("", "://not-a-url", 10*time.Second, logger)
	assert.Error(t, err)
}
