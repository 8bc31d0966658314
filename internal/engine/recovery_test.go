package engine

import (
	"testing"
	"time"

	"recruiting_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onTrackContext builds an athlete no recovery trigger fires for.
func onTrackContext() *Context {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{BaseModel: model.BaseModel{ID: 1}, Code: "ncaa-registration", Title: "Register with the NCAA", Category: model.TaskCritical},
		{BaseModel: model.BaseModel{ID: 2}, Code: "transcript-upload", Title: "Upload your transcript", Category: model.TaskCritical},
		{BaseModel: model.BaseModel{ID: 3}, Code: "highlight-reel", Title: "Publish a highlight reel", Category: model.TaskCritical},
		{BaseModel: model.BaseModel{ID: 4}, Code: "eligibility-center-profile", Title: "Complete your Eligibility Center profile", Category: model.TaskEligibility},
	}

	athleteTasks := []model.AthleteTask{
		{AthleteID: 1, TaskID: 1, Status: model.TaskCompleted},
		{AthleteID: 1, TaskID: 2, Status: model.TaskCompleted},
		{AthleteID: 1, TaskID: 3, Status: model.TaskCompleted},
		{AthleteID: 1, TaskID: 4, Status: model.TaskInProgress},
	}

	schools := []model.School{
		{BaseModel: model.BaseModel{ID: 10}, AthleteID: 1, Name: "Duke", Status: model.SchoolContacted},
		{BaseModel: model.BaseModel{ID: 11}, AthleteID: 1, Name: "UNC", Status: model.SchoolVisited},
		{BaseModel: model.BaseModel{ID: 12}, AthleteID: 1, Name: "Wake Forest", Status: model.SchoolResearching},
	}

	interactions := []model.Interaction{
		{AthleteID: 1, SchoolID: 10, OccurredAt: now.Add(-5 * 24 * time.Hour), Sentiment: model.SentimentPositive},
	}

	return &Context{
		Athlete:      model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.Athlete},
		Schools:      schools,
		Interactions: interactions,
		Tasks:        tasks,
		AthleteTasks: athleteTasks,
		Now:          now,
	}
}

func TestRecoveryOnTrackReturnsNil(t *testing.T) {
	assert.Nil(t, EvaluateRecovery(onTrackContext()))
}

func TestRecoveryCriticalTaskHasTopPriority(t *testing.T) {
	rc := onTrackContext()
	// Break everything at once; the critical-task trigger must win.
	rc.AthleteTasks = nil
	rc.Interactions = nil
	rc.Schools = rc.Schools[:1]

	plan := EvaluateRecovery(rc)
	require.NotNil(t, plan)
	assert.Equal(t, model.TriggerCriticalTaskMissed, plan.Trigger.Type)
	assert.Equal(t, model.UrgencyHigh, plan.Trigger.Severity)
	assert.NotEmpty(t, plan.Steps)
}

func TestRecoveryEligibilityIsSecond(t *testing.T) {
	rc := onTrackContext()
	// Critical tasks done, eligibility never started, everything else broken.
	rc.AthleteTasks = []model.AthleteTask{
		{AthleteID: 1, TaskID: 1, Status: model.TaskCompleted},
		{AthleteID: 1, TaskID: 2, Status: model.TaskCompleted},
		{AthleteID: 1, TaskID: 3, Status: model.TaskCompleted},
	}
	rc.Interactions = nil

	plan := EvaluateRecovery(rc)
	require.NotNil(t, plan)
	assert.Equal(t, model.TriggerEligibilityIncomplete, plan.Trigger.Type)
}

func TestRecoveryEligibilityInProgressCounts(t *testing.T) {
	rc := onTrackContext()
	rc.Interactions = nil // leaves only the coach-interest trigger

	plan := EvaluateRecovery(rc)
	require.NotNil(t, plan)
	assert.Equal(t, model.TriggerNoCoachInterest, plan.Trigger.Type)
}

func TestRecoveryNoCoachInterestWindow(t *testing.T) {
	rc := onTrackContext()
	// Positive sentiment exists, but outside the window.
	rc.Interactions = []model.Interaction{
		{AthleteID: 1, SchoolID: 10, OccurredAt: rc.Now.Add(-45 * 24 * time.Hour), Sentiment: model.SentimentVeryPositive},
		{AthleteID: 1, SchoolID: 10, OccurredAt: rc.Now.Add(-3 * 24 * time.Hour), Sentiment: model.SentimentNegative},
	}

	plan := EvaluateRecovery(rc)
	require.NotNil(t, plan)
	assert.Equal(t, model.TriggerNoCoachInterest, plan.Trigger.Type)
}

func TestRecoveryFitGapOnShortList(t *testing.T) {
	rc := onTrackContext()
	rc.Schools = rc.Schools[:1]

	plan := EvaluateRecovery(rc)
	require.NotNil(t, plan)
	assert.Equal(t, model.TriggerFitGap, plan.Trigger.Type)
	assert.Equal(t, model.UrgencyMedium, plan.Trigger.Severity)
}

func TestRecoveryFitGapOnUniformStatus(t *testing.T) {
	rc := onTrackContext()
	for i := range rc.Schools {
		rc.Schools[i].Status = model.SchoolResearching
	}

	plan := EvaluateRecovery(rc)
	require.NotNil(t, plan)
	assert.Equal(t, model.TriggerFitGap, plan.Trigger.Type)
}
