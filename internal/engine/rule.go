package engine

import (
	"time"

	"recruiting_backend/internal/model"
)

// Engine-wide thresholds. Deliberately uniform across rule types.
const (
	// interaction-gap tiers (days since last contact)
	GapMediumDays = 21
	GapHighDays   = 30

	// cooldown before a dismissed suggestion may resurface
	ReappearCooldown = 14 * 24 * time.Hour

	// suggestions shown at once; the rest queue as pending
	VisibleCap = 3

	// recovery: window with no positive coach sentiment
	NoInterestWindowDays = 30

	// recovery + school-list rule: minimum healthy target-list size
	MinSchoolCount = 3

	// event-prep lead times (days until the event)
	EventPrepWindowDays = 7
	EventPrepUrgentDays = 3

	// task-overdue escalation point (days past due)
	OverdueHighDays = 14
)

// Candidate is a rule's proposed suggestion before deduplication and
// persistence.
type Candidate struct {
	RuleType        string
	Urgency         model.SuggestionUrgency
	Message         string
	ActionType      model.SuggestionAction
	RelatedSchoolID *uint
	RelatedTaskID   *uint
}

// DedupKey mirrors model.Suggestion.DedupKey for the owning athlete.
func (c Candidate) DedupKey(athleteID uint) string {
	return model.SuggestionDedupKey(athleteID, c.RuleType, c.RelatedSchoolID)
}

// Rule is a pure predicate+generator: given the context snapshot it returns
// zero or more candidates. Rules are independent; none may read another
// rule's output or cause side effects.
type Rule interface {
	// Type returns the stable rule identifier persisted on suggestions.
	Type() string

	// Evaluate inspects the context and returns candidate suggestions.
	Evaluate(rc *Context) []Candidate
}
