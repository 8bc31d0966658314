package model

type RecoveryTriggerType string

const (
	TriggerCriticalTaskMissed    RecoveryTriggerType = "critical_task_missed"
	TriggerEligibilityIncomplete RecoveryTriggerType = "eligibility_incomplete"
	TriggerNoCoachInterest       RecoveryTriggerType = "no_coach_interest"
	TriggerFitGap                RecoveryTriggerType = "fit_gap"
)

// RecoveryTrigger is a derived judgment, recomputed on demand and never
// persisted.
// swagger:model RecoveryTrigger
type RecoveryTrigger struct {
	Type     RecoveryTriggerType `json:"type"`
	Severity SuggestionUrgency   `json:"severity"`
	Reason   string              `json:"reason"`
}

// RecoveryPlan is the canned remediation attached to a trigger.
// swagger:model RecoveryPlan
type RecoveryPlan struct {
	Trigger      RecoveryTrigger `json:"trigger"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Steps        []string        `json:"steps"`
	DurationDays int             `json:"durationDays"`
}
