package engine

import (
	"fmt"

	"recruiting_backend/internal/model"
)

// TaskOverdueRule emits one candidate per incomplete athlete task past its
// due date. Two weeks overdue escalates to high.
type TaskOverdueRule struct{}

func (r *TaskOverdueRule) Type() string {
	return model.RuleTaskOverdue
}

func (r *TaskOverdueRule) Evaluate(rc *Context) []Candidate {
	var out []Candidate
	for i := range rc.AthleteTasks {
		at := rc.AthleteTasks[i]
		if at.Status == model.TaskCompleted || at.DueDate == nil || !at.DueDate.Before(rc.Now) {
			continue
		}

		days := rc.DaysSince(*at.DueDate)
		urgency := model.UrgencyMedium
		if days >= OverdueHighDays {
			urgency = model.UrgencyHigh
		}

		title := "a checklist task"
		for _, t := range rc.Tasks {
			if t.ID == at.TaskID {
				title = fmt.Sprintf("%q", t.Title)
				break
			}
		}

		taskID := at.TaskID
		out = append(out, Candidate{
			RuleType:      r.Type(),
			Urgency:       urgency,
			Message:       fmt.Sprintf("%s is %d day(s) overdue. Knock it out before it blocks your recruiting timeline.", title, days),
			ActionType:    model.ActionCompleteTask,
			RelatedTaskID: &taskID,
		})
	}
	return out
}
