package engine

import (
	"fmt"
	"time"

	"recruiting_backend/internal/model"
)

// Catalog task codes the recovery evaluator keys on. These match the rows
// seeded at migration time.
var CriticalTaskCodes = []string{
	"ncaa-registration",
	"transcript-upload",
	"highlight-reel",
}

const EligibilityTaskCode = "eligibility-center-profile"

// EvaluateRecovery runs four checks in fixed priority order and returns the
// first trigger that holds, paired with its canned plan. Stateless: nothing
// is persisted and the result is recomputed on every call. Returns nil when
// the athlete is on track.
func EvaluateRecovery(rc *Context) *model.RecoveryPlan {
	checks := []func(rc *Context) *model.RecoveryTrigger{
		checkCriticalTasks,
		checkEligibility,
		checkCoachInterest,
		checkFitGap,
	}
	for _, check := range checks {
		if trigger := check(rc); trigger != nil {
			plan := planFor(trigger.Type)
			plan.Trigger = *trigger
			return &plan
		}
	}
	return nil
}

func checkCriticalTasks(rc *Context) *model.RecoveryTrigger {
	for _, code := range CriticalTaskCodes {
		task, ok := rc.TaskByCode(code)
		if !ok {
			continue
		}
		at, ok := rc.AthleteTaskFor(task.ID)
		if ok && at.Status == model.TaskCompleted {
			continue
		}
		return &model.RecoveryTrigger{
			Type:     model.TriggerCriticalTaskMissed,
			Severity: model.UrgencyHigh,
			Reason:   fmt.Sprintf("Critical task %q is not completed.", task.Title),
		}
	}
	return nil
}

func checkEligibility(rc *Context) *model.RecoveryTrigger {
	task, ok := rc.TaskByCode(EligibilityTaskCode)
	if !ok {
		return nil
	}
	at, ok := rc.AthleteTaskFor(task.ID)
	if ok && at.Status != model.TaskNotStarted {
		return nil
	}
	return &model.RecoveryTrigger{
		Type:     model.TriggerEligibilityIncomplete,
		Severity: model.UrgencyHigh,
		Reason:   "Eligibility Center registration has not been started.",
	}
}

func checkCoachInterest(rc *Context) *model.RecoveryTrigger {
	if rc.PositiveInteractionWithin(NoInterestWindowDays * 24 * time.Hour) {
		return nil
	}
	reason := fmt.Sprintf("No positive coach interaction in the last %d days.", NoInterestWindowDays)
	if len(rc.Interactions) == 0 {
		reason = "No coach interactions have been logged at all."
	}
	return &model.RecoveryTrigger{
		Type:     model.TriggerNoCoachInterest,
		Severity: model.UrgencyHigh,
		Reason:   reason,
	}
}

func checkFitGap(rc *Context) *model.RecoveryTrigger {
	if len(rc.Schools) < MinSchoolCount {
		return &model.RecoveryTrigger{
			Type:     model.TriggerFitGap,
			Severity: model.UrgencyMedium,
			Reason:   fmt.Sprintf("Fewer than %d schools on the target list.", MinSchoolCount),
		}
	}
	first := rc.Schools[0].Status
	for _, s := range rc.Schools[1:] {
		if s.Status != first {
			return nil
		}
	}
	return &model.RecoveryTrigger{
		Type:     model.TriggerFitGap,
		Severity: model.UrgencyMedium,
		Reason:   "Every school on the list is at the same stage; the list has no diversity.",
	}
}

func planFor(t model.RecoveryTriggerType) model.RecoveryPlan {
	switch t {
	case model.TriggerCriticalTaskMissed:
		return model.RecoveryPlan{
			Title:       "Catch up on critical tasks",
			Description: "One or more must-do recruiting tasks are incomplete. These block everything else.",
			Steps: []string{
				"Open your checklist and identify the incomplete critical tasks.",
				"Block out time this week to finish each one.",
				"Mark each task complete as you go so your suggestions stay accurate.",
			},
			DurationDays: 7,
		}
	case model.TriggerEligibilityIncomplete:
		return model.RecoveryPlan{
			Title:       "Start your eligibility registration",
			Description: "Without an Eligibility Center profile you cannot take official visits or sign.",
			Steps: []string{
				"Create your Eligibility Center account.",
				"Request your transcript be sent by your school counselor.",
				"Enter your test scores and sports history.",
			},
			DurationDays: 14,
		}
	case model.TriggerNoCoachInterest:
		return model.RecoveryPlan{
			Title:       "Restart coach conversations",
			Description: "Interest has gone cold. A structured outreach push usually restarts momentum within a month.",
			Steps: []string{
				"Update your highlight film with recent games.",
				"Send a personalized email to every tier A and B coach.",
				"Follow up by phone with any coach who opens your film.",
				"Log every touchpoint so the gap tracking stays honest.",
			},
			DurationDays: 30,
		}
	default:
		return model.RecoveryPlan{
			Title:       "Rebalance your school list",
			Description: "Your target list is too narrow to produce real options.",
			Steps: []string{
				"Add schools until you have at least three targets.",
				"Spread them across reach, match, and safety tiers.",
				"Move stalled schools to declined so the list reflects reality.",
			},
			DurationDays: 14,
		}
	}
}
