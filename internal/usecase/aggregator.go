package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Mia06-coder/github-user-activity-cli/internal/domain"
)

type groupKey struct {
	kind domain.EventKind
	repo string
}

// Aggregate groups events by (kind, repository) and produces the
// summary consumed by presentation. It is a pure function: identical
// input always yields identical output, and grouping is insensitive to
// input order (representative metadata is chosen by timestamp, not by
// position). An empty input yields empty lines and a nil LastActiveAt.
func Aggregate(events []domain.Event) domain.Summary {
	groups := make(map[groupKey]*domain.SummaryLine)

	var newest *domain.Event
	var commitCounts []float64

	for i := range events {
		ev := &events[i]
		if newest == nil || ev.CreatedAt.After(newest.CreatedAt) {
			newest = ev
		}
		if ev.Kind == domain.KindPush {
			commitCounts = append(commitCounts, float64(ev.CommitCount))
		}

		key := groupKey{kind: ev.Kind, repo: ev.Repo}
		line, ok := groups[key]
		if !ok {
			line = &domain.SummaryLine{Kind: ev.Kind, Repo: ev.Repo}
			groups[key] = line
		}
		// Push contributes its commit count; every other kind counts 1.
		if ev.Kind == domain.KindPush {
			line.Count += ev.CommitCount
		} else {
			line.Count++
		}
		if ev.CreatedAt.After(line.LastAt) {
			line.LastAt = ev.CreatedAt
			line.Action = ev.Action
		}
	}

	lines := make([]domain.SummaryLine, 0, len(groups))
	for _, line := range groups {
		lines = append(lines, *line)
	}
	// Most recent activity first; repository name breaks ties, and the
	// kind tag breaks the remaining same-repo ties, so the output is
	// fully deterministic.
	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].LastAt.Equal(lines[j].LastAt) {
			return lines[i].LastAt.After(lines[j].LastAt)
		}
		if lines[i].Repo != lines[j].Repo {
			return lines[i].Repo < lines[j].Repo
		}
		return lines[i].Kind < lines[j].Kind
	})

	summary := domain.Summary{Lines: lines}
	if newest != nil {
		t := newest.CreatedAt
		summary.LastActiveAt = &t
	}
	summary.PushStats = pushStats(commitCounts)
	return summary
}

// pushStats summarizes commits-per-push across all push events.
// Returns nil when there were none.
func pushStats(commitCounts []float64) *domain.PushStats {
	if len(commitCounts) == 0 {
		return nil
	}
	mean, _ := stats.Mean(commitCounts)
	median, _ := stats.Median(commitCounts)
	max, _ := stats.Max(commitCounts)
	total, _ := stats.Sum(commitCounts)
	return &domain.PushStats{
		Pushes:        len(commitCounts),
		Commits:       int(total),
		MeanPerPush:   mean,
		MedianPerPush: median,
		MaxPerPush:    int(max),
	}
}
