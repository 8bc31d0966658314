package engine

import (
	"sort"
	"time"

	"recruiting_backend/internal/model"
)

var urgencyRank = map[model.SuggestionUrgency]int{
	model.UrgencyHigh:   3,
	model.UrgencyMedium: 2,
	model.UrgencyLow:    1,
}

// UrgencyAtLeast reports a >= b under low < medium < high.
func UrgencyAtLeast(a, b model.SuggestionUrgency) bool {
	return urgencyRank[a] >= urgencyRank[b]
}

// Rank sorts suggestions by urgency (high first) then creation recency
// (newest first). The input slice is sorted in place and returned.
func Rank(suggestions []*model.Suggestion) []*model.Suggestion {
	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, rj := urgencyRank[suggestions[i].Urgency], urgencyRank[suggestions[j].Urgency]
		if ri != rj {
			return ri > rj
		}
		return suggestions[i].CreatedAt.After(suggestions[j].CreatedAt)
	})
	return suggestions
}

// ApplySurfacing ranks the active set and flags everything past the visible
// cap as pending. Returns the visible and pending partitions.
func ApplySurfacing(active []*model.Suggestion, now time.Time) (visible, pending []*model.Suggestion) {
	Rank(active)
	for i, s := range active {
		if i < VisibleCap {
			if s.PendingSurface || s.SurfacedAt == nil {
				s.PendingSurface = false
				s.SurfacedAt = &now
			}
			visible = append(visible, s)
		} else {
			s.PendingSurface = true
			pending = append(pending, s)
		}
	}
	return visible, pending
}

// SurfaceMore promotes up to n pending suggestions into the visible set, in
// rank order, without re-running the evaluator. Returns the promoted records.
func SurfaceMore(pending []*model.Suggestion, n int, now time.Time) []*model.Suggestion {
	if n <= 0 {
		return nil
	}
	Rank(pending)
	if n > len(pending) {
		n = len(pending)
	}
	promoted := pending[:n]
	for _, s := range promoted {
		s.PendingSurface = false
		s.SurfacedAt = &now
	}
	return promoted
}

// MoreCount is the number of additional suggestions a "show more" action can
// reveal. Never negative.
func MoreCount(activeCount, visibleCount int) int {
	if activeCount <= visibleCount {
		return 0
	}
	return activeCount - visibleCount
}
