package engine

import (
	"fmt"

	"recruiting_backend/internal/model"
)

// SchoolListRule fires when the target list is too short to give the athlete
// real options.
type SchoolListRule struct{}

func (r *SchoolListRule) Type() string {
	return model.RuleSchoolList
}

func (r *SchoolListRule) Evaluate(rc *Context) []Candidate {
	count := len(rc.Schools)
	if count >= MinSchoolCount {
		return nil
	}

	if count == 0 {
		return []Candidate{{
			RuleType:   r.Type(),
			Urgency:    model.UrgencyHigh,
			Message:    "Your target list is empty. Add schools you're interested in to start tracking your recruiting.",
			ActionType: model.ActionAddSchool,
		}}
	}

	return []Candidate{{
		RuleType:   r.Type(),
		Urgency:    model.UrgencyMedium,
		Message:    fmt.Sprintf("You're only tracking %d school(s). A healthy list has at least %d across reach, match, and safety tiers.", count, MinSchoolCount),
		ActionType: model.ActionAddSchool,
	}}
}
