package engine

import (
	"fmt"

	"recruiting_backend/internal/model"
)

// InteractionGapRule flags eligible schools the athlete has gone quiet on.
// Eligible: priority tier A or B with status interested/contacted/visited.
// No interaction at all triggers unconditionally; otherwise 21-29 elapsed
// days is medium and 30+ is high. One candidate per eligible school.
type InteractionGapRule struct{}

func (r *InteractionGapRule) Type() string {
	return model.RuleInteractionGap
}

func (r *InteractionGapRule) Evaluate(rc *Context) []Candidate {
	var out []Candidate
	for i := range rc.Schools {
		school := rc.Schools[i]
		if !r.eligible(school) {
			continue
		}

		last, ok := rc.LastInteractionAt(school.ID)
		if !ok {
			schoolID := school.ID
			out = append(out, Candidate{
				RuleType:        r.Type(),
				Urgency:         model.UrgencyMedium,
				Message:         fmt.Sprintf("You haven't logged any contact with %s yet. Reach out to get on their radar.", school.Name),
				ActionType:      model.ActionLogInteraction,
				RelatedSchoolID: &schoolID,
			})
			continue
		}

		days := rc.DaysSince(last)
		if days < GapMediumDays {
			continue
		}

		urgency := model.UrgencyMedium
		if days >= GapHighDays {
			urgency = model.UrgencyHigh
		}

		schoolID := school.ID
		out = append(out, Candidate{
			RuleType:        r.Type(),
			Urgency:         urgency,
			Message:         fmt.Sprintf("It's been %d days since your last interaction with %s. Log a touchpoint to keep the relationship warm.", days, school.Name),
			ActionType:      model.ActionLogInteraction,
			RelatedSchoolID: &schoolID,
		})
	}
	return out
}

func (r *InteractionGapRule) eligible(s model.School) bool {
	if s.PriorityTier != model.TierA && s.PriorityTier != model.TierB {
		return false
	}
	switch s.Status {
	case model.SchoolInterested, model.SchoolContacted, model.SchoolVisited:
		return true
	}
	return false
}
