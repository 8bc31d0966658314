package engine

import (
	"recruiting_backend/internal/model"
)

// MissingVideoRule fires when the athlete has schools in play but no
// highlight film uploaded. Escalates to high once any school has progressed
// to a visit or an offer.
type MissingVideoRule struct{}

func (r *MissingVideoRule) Type() string {
	return model.RuleMissingVideo
}

func (r *MissingVideoRule) Evaluate(rc *Context) []Candidate {
	if len(rc.Schools) == 0 || rc.HasHighlightVideo() {
		return nil
	}

	urgency := model.UrgencyMedium
	message := "You have no highlight video on file. Coaches expect film before they'll engage."
	for _, s := range rc.Schools {
		if s.Status == model.SchoolVisited || s.Status == model.SchoolOffered {
			urgency = model.UrgencyHigh
			message = "Schools are actively evaluating you and you still have no highlight video. Upload film now."
			break
		}
	}

	return []Candidate{{
		RuleType:   r.Type(),
		Urgency:    urgency,
		Message:    message,
		ActionType: model.ActionAddVideo,
	}}
}
