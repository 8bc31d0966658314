package engine

import (
	"time"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/util"
	"recruiting_backend/pkg/monitoring"
)

// Dismiss marks an active suggestion dismissed. Dismissing twice is a no-op;
// dismissing a completed suggestion is an invalid transition (completed is
// terminal).
func Dismiss(s *model.Suggestion, now time.Time) error {
	if s.Completed {
		return util.ErrInvalidTransition
	}
	if s.Dismissed {
		return nil
	}
	s.Dismissed = true
	s.DismissedAt = &now
	return nil
}

// Complete marks a suggestion completed regardless of prior dismissed state.
// Completing twice is a no-op.
func Complete(s *model.Suggestion, now time.Time) error {
	if s.Completed {
		return nil
	}
	s.Completed = true
	s.CompletedAt = &now
	return nil
}

// EscalateUrgency bumps urgency one tier, capped at high.
func EscalateUrgency(u model.SuggestionUrgency) model.SuggestionUrgency {
	switch u {
	case model.UrgencyLow:
		return model.UrgencyMedium
	case model.UrgencyMedium:
		return model.UrgencyHigh
	default:
		return model.UrgencyHigh
	}
}

// Reappearances resurfaces dismissed suggestions whose trigger condition
// still holds. For each dedup key it considers the most recently dismissed
// record; a fresh candidate with the same key proves the condition persists.
// The new record escalates urgency one tier and back-references the original,
// which is left untouched. Keys that were ever completed, or that still have
// an active record, never reappear.
func Reappearances(athleteID uint, candidates []Candidate, existing []model.Suggestion, now time.Time) []model.Suggestion {
	hasActive := make(map[string]bool)
	everCompleted := make(map[string]bool)
	latestDismissed := make(map[string]*model.Suggestion)

	for i := range existing {
		s := &existing[i]
		key := s.DedupKey()
		if s.Completed {
			everCompleted[key] = true
			continue
		}
		if s.Dismissed {
			prev, ok := latestDismissed[key]
			if !ok || (s.DismissedAt != nil && prev.DismissedAt != nil && s.DismissedAt.After(*prev.DismissedAt)) {
				latestDismissed[key] = s
			}
			continue
		}
		hasActive[key] = true
	}

	var out []model.Suggestion
	seen := make(map[string]bool)
	for _, cand := range candidates {
		key := cand.DedupKey(athleteID)
		orig, ok := latestDismissed[key]
		if !ok {
			continue
		}
		if seen[key] || hasActive[key] || everCompleted[key] {
			continue
		}
		if orig.DismissedAt == nil || now.Sub(*orig.DismissedAt) < ReappearCooldown {
			continue
		}
		seen[key] = true

		prevID := orig.ID
		out = append(out, model.Suggestion{
			AthleteID:            orig.AthleteID,
			RuleType:             cand.RuleType,
			Urgency:              EscalateUrgency(orig.Urgency),
			Message:              cand.Message,
			ActionType:           cand.ActionType,
			RelatedSchoolID:      cand.RelatedSchoolID,
			RelatedTaskID:        cand.RelatedTaskID,
			Reappeared:           true,
			PreviousSuggestionID: &prevID,
		})
		monitoring.ReappearanceCounter.WithLabelValues(cand.RuleType).Inc()
	}
	return out
}
