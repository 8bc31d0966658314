package engine

import (
	"fmt"
	"time"

	"recruiting_backend/internal/model"
)

// EventPrepRule reminds the athlete about camps/showcases starting within the
// prep window. Within three days it goes high.
type EventPrepRule struct{}

func (r *EventPrepRule) Type() string {
	return model.RuleEventPrep
}

func (r *EventPrepRule) Evaluate(rc *Context) []Candidate {
	var out []Candidate
	horizon := rc.Now.Add(EventPrepWindowDays * 24 * time.Hour)
	for i := range rc.Events {
		ev := rc.Events[i]
		if ev.StartsAt.Before(rc.Now) || ev.StartsAt.After(horizon) {
			continue
		}

		days := int(ev.StartsAt.Sub(rc.Now).Hours() / 24)
		urgency := model.UrgencyMedium
		if days <= EventPrepUrgentDays {
			urgency = model.UrgencyHigh
		}

		out = append(out, Candidate{
			RuleType:        r.Type(),
			Urgency:         urgency,
			Message:         fmt.Sprintf("%s is %d day(s) away. Confirm logistics and let coaches know you'll be there.", ev.Name, days),
			ActionType:      model.ActionPrepareEvent,
			RelatedSchoolID: ev.SchoolID,
		})
	}
	return out
}
