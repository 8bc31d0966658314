package model

import (
	"fmt"
	"time"
)

type SuggestionUrgency string

const (
	UrgencyLow    SuggestionUrgency = "low"
	UrgencyMedium SuggestionUrgency = "medium"
	UrgencyHigh   SuggestionUrgency = "high"
)

type SuggestionAction string

const (
	ActionAddVideo       SuggestionAction = "add_video"
	ActionLogInteraction SuggestionAction = "log_interaction"
	ActionAddSchool      SuggestionAction = "add_school"
	ActionCompleteTask   SuggestionAction = "complete_task"
	ActionUpdateProfile  SuggestionAction = "update_profile"
	ActionPrepareEvent   SuggestionAction = "prepare_event"
)

// Rule type identifiers. Stable strings: they are persisted on suggestion
// rows and used for deduplication across runs.
const (
	RuleInteractionGap    = "interaction-gap"
	RuleMissingVideo      = "missing-video"
	RuleSchoolList        = "school-list"
	RuleTaskOverdue       = "task-overdue"
	RuleEventPrep         = "event-prep"
	RuleProfileIncomplete = "profile-incomplete"
)

// Suggestion is one actionable recommendation produced by the rule engine.
// Rows are never hard-deleted; lifecycle is tracked through flags.
// swagger:model Suggestion
type Suggestion struct {
	BaseModel
	AthleteID       uint              `gorm:"index;not null" json:"athleteId"`
	RuleType        string            `gorm:"size:50;index;not null" json:"ruleType"`
	Urgency         SuggestionUrgency `gorm:"type:varchar(10);default:'medium'" json:"urgency"`
	Message         string            `gorm:"type:text;not null" json:"message"`
	ActionType      SuggestionAction  `gorm:"type:varchar(30);not null" json:"actionType"`
	RelatedSchoolID *uint             `gorm:"index" json:"relatedSchoolId"`
	RelatedTaskID   *uint             `gorm:"index" json:"relatedTaskId"`

	Dismissed   bool       `gorm:"default:false;index" json:"dismissed"`
	DismissedAt *time.Time `json:"dismissedAt"`
	Completed   bool       `gorm:"default:false;index" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`

	PendingSurface bool       `gorm:"default:false" json:"pendingSurface"`
	SurfacedAt     *time.Time `json:"surfacedAt"`

	Reappeared           bool  `gorm:"default:false" json:"reappeared"`
	PreviousSuggestionID *uint `gorm:"index" json:"previousSuggestionId"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}

// Active reports whether the suggestion is still open (neither dismissed nor
// completed).
func (s *Suggestion) Active() bool {
	return !s.Dismissed && !s.Completed
}

// DedupKey identifies the (athlete, rule, school) tuple the active-duplicate
// invariant is enforced on.
func (s *Suggestion) DedupKey() string {
	return SuggestionDedupKey(s.AthleteID, s.RuleType, s.RelatedSchoolID)
}

func SuggestionDedupKey(athleteID uint, ruleType string, schoolID *uint) string {
	if schoolID == nil {
		return fmt.Sprintf("%d|%s|-", athleteID, ruleType)
	}
	return fmt.Sprintf("%d|%s|%d", athleteID, ruleType, *schoolID)
}
