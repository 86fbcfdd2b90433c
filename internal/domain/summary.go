package domain

import "time"

// SummaryLine reports all events sharing one (kind, repository) pair.
type SummaryLine struct {
	Kind  EventKind `json:"kind"`
	Repo  string    `json:"repo"`
	Count int       `json:"count"`
	// LastAt is the most recent timestamp of any event in the group.
	LastAt time.Time `json:"last_at"`
	// Action is the verb of the group's most recent event, for kinds
	// that carry one. Empty otherwise.
	Action string `json:"action,omitempty"`
}

// PushStats summarizes commit counts across a user's push events.
type PushStats struct {
	Pushes        int     `json:"pushes"`
	Commits       int     `json:"commits"`
	MeanPerPush   float64 `json:"mean_per_push"`
	MedianPerPush float64 `json:"median_per_push"`
	MaxPerPush    int     `json:"max_per_push"`
}

// Summary is the aggregated, presentation-agnostic output of one fetch.
type Summary struct {
	Lines []SummaryLine `json:"lines"`
	// LastActiveAt is the newest timestamp across all input events,
	// nil when there were none.
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	PushStats    *PushStats `json:"push_stats,omitempty"`
}
