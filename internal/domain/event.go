// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// EventKind is the enumerated category of a GitHub activity record.
// The set of known kinds is closed; anything else maps to KindUnknown.
type EventKind string

const (
	KindPush              EventKind = "PushEvent"
	KindIssues            EventKind = "IssuesEvent"
	KindWatch             EventKind = "WatchEvent"
	KindFork              EventKind = "ForkEvent"
	KindPullRequest       EventKind = "PullRequestEvent"
	KindIssueComment      EventKind = "IssueCommentEvent"
	KindPullRequestReview EventKind = "PullRequestReviewEvent"
	KindDelete            EventKind = "DeleteEvent"
	KindUnknown           EventKind = "Unknown"
)

// KnownKinds returns every kind the tool understands, excluding the
// KindUnknown fallback.
func KnownKinds() []EventKind {
	return []EventKind{
		KindPush,
		KindIssues,
		KindWatch,
		KindFork,
		KindPullRequest,
		KindIssueComment,
		KindPullRequestReview,
		KindDelete,
	}
}

// ParseKind maps a raw event type tag from the API to an EventKind.
// Unrecognized tags become KindUnknown; this never fails.
func ParseKind(raw string) EventKind {
	switch EventKind(raw) {
	case KindPush, KindIssues, KindWatch, KindFork,
		KindPullRequest, KindIssueComment, KindPullRequestReview, KindDelete:
		return EventKind(raw)
	default:
		return KindUnknown
	}
}

// Event is a single activity record from a user's public feed.
// It is treated as immutable once built.
type Event struct {
	Kind      EventKind `json:"kind"`
	Repo      string    `json:"repo"`
	CreatedAt time.Time `json:"created_at"`

	// CommitCount is set for push events only.
	CommitCount int `json:"commit_count,omitempty"`
	// Action carries the verb for issue/PR/comment/review events
	// ("opened", "closed", ...) and the ref name for delete events.
	Action string `json:"action,omitempty"`
}
