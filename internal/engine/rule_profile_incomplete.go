package engine

import (
	"fmt"
	"strings"

	"recruiting_backend/internal/model"
)

// ProfileIncompleteRule nudges the athlete to fill in the profile fields
// coaches filter on. Low urgency; it never competes with time-sensitive
// suggestions.
type ProfileIncompleteRule struct{}

func (r *ProfileIncompleteRule) Type() string {
	return model.RuleProfileIncomplete
}

func (r *ProfileIncompleteRule) Evaluate(rc *Context) []Candidate {
	var missing []string
	if rc.Athlete.GraduationYear == 0 {
		missing = append(missing, "graduation year")
	}
	if rc.Athlete.Position == "" {
		missing = append(missing, "position")
	}
	if rc.Athlete.Height == "" {
		missing = append(missing, "height")
	}
	if rc.Athlete.GPA == 0 {
		missing = append(missing, "GPA")
	}

	if len(missing) == 0 {
		return nil
	}

	return []Candidate{{
		RuleType:   r.Type(),
		Urgency:    model.UrgencyLow,
		Message:    fmt.Sprintf("Your profile is missing %s. Complete it so coaches can evaluate you at a glance.", strings.Join(missing, ", ")),
		ActionType: model.ActionUpdateProfile,
	}}
}
