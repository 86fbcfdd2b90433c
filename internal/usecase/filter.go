// Package usecase contains the business logic of the application.
package usecase

import (
	"strings"

	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
)

// kindAliases maps human-facing names of GitHub actions onto kinds
// whose canonical tag does not contain them.
var kindAliases = map[domain.EventKind][]string{
	domain.KindWatch:  {"star", "starred"},
	domain.KindDelete: {"branch"},
}

// FilterByKind narrows events to those whose kind matches token. The
// match is a case-insensitive substring test against the canonical kind
// tag, extended by a small alias table ("star" matches WatchEvent).
// An empty token passes everything through. The input is never
// mutated and relative order is preserved; an empty result is valid.
func FilterByKind(events []domain.Event, token string) []domain.Event {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return events
	}
	out := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if kindMatches(ev.Kind, token) {
			out = append(out, ev)
		}
	}
	return out
}

func kindMatches(kind domain.EventKind, token string) bool {
	if strings.Contains(strings.ToLower(string(kind)), token) {
		return true
	}
	for _, alias := range kindAliases[kind] {
		if strings.Contains(alias, token) {
			return true
		}
	}
	return false
}
