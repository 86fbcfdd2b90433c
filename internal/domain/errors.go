package domain

import "errors"

// The gateway maps every failure into exactly one of these. None of
// them is retried by the core; all surface to the caller once.
var (
	// ErrUserNotFound means the GitHub user does not exist.
	ErrUserNotFound = errors.New("github user not found")
	// ErrRateLimited means the GitHub API quota is exhausted for now.
	ErrRateLimited = errors.New("github api rate limit exceeded")
)

// NetworkError wraps connectivity failures and any transport response
// the gateway does not recognize, preserving the cause for diagnostics.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }
