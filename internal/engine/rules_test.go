package engine

import (
	"testing"
	"time"

	"recruiting_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingVideoRule(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &MissingVideoRule{}

	t.Run("no schools means no nag", func(t *testing.T) {
		rc := &Context{Athlete: model.User{BaseModel: model.BaseModel{ID: 1}}, Now: now}
		assert.Empty(t, rule.Evaluate(rc))
	})

	t.Run("highlight on file suppresses", func(t *testing.T) {
		rc := &Context{
			Athlete: model.User{BaseModel: model.BaseModel{ID: 1}},
			Schools: []model.School{{BaseModel: model.BaseModel{ID: 10}}},
			Videos:  []model.Video{{AthleteID: 1, IsHighlight: true}},
			Now:     now,
		}
		assert.Empty(t, rule.Evaluate(rc))
	})

	t.Run("non-highlight clips do not count", func(t *testing.T) {
		rc := &Context{
			Athlete: model.User{BaseModel: model.BaseModel{ID: 1}},
			Schools: []model.School{{BaseModel: model.BaseModel{ID: 10}}},
			Videos:  []model.Video{{AthleteID: 1, IsHighlight: false}},
			Now:     now,
		}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyMedium, cands[0].Urgency)
		assert.Equal(t, model.ActionAddVideo, cands[0].ActionType)
	})

	t.Run("active evaluation escalates", func(t *testing.T) {
		rc := &Context{
			Athlete: model.User{BaseModel: model.BaseModel{ID: 1}},
			Schools: []model.School{{BaseModel: model.BaseModel{ID: 10}, Status: model.SchoolOffered}},
			Now:     now,
		}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyHigh, cands[0].Urgency)
	})
}

func TestSchoolListRule(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &SchoolListRule{}

	mkSchools := func(n int) []model.School {
		out := make([]model.School, n)
		for i := range out {
			out[i] = model.School{BaseModel: model.BaseModel{ID: uint(i + 1)}}
		}
		return out
	}

	t.Run("empty list is high", func(t *testing.T) {
		rc := &Context{Athlete: model.User{BaseModel: model.BaseModel{ID: 1}}, Now: now}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyHigh, cands[0].Urgency)
		assert.Equal(t, model.ActionAddSchool, cands[0].ActionType)
	})

	t.Run("short list is medium", func(t *testing.T) {
		rc := &Context{Athlete: model.User{BaseModel: model.BaseModel{ID: 1}}, Schools: mkSchools(2), Now: now}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyMedium, cands[0].Urgency)
	})

	t.Run("healthy list is quiet", func(t *testing.T) {
		rc := &Context{Athlete: model.User{BaseModel: model.BaseModel{ID: 1}}, Schools: mkSchools(MinSchoolCount), Now: now}
		assert.Empty(t, rule.Evaluate(rc))
	})
}

func TestTaskOverdueRule(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &TaskOverdueRule{}

	catalog := []model.Task{{BaseModel: model.BaseModel{ID: 1}, Code: "transcript-upload", Title: "Upload your transcript"}}
	due := func(daysAgo int) *time.Time {
		d := now.Add(-time.Duration(daysAgo) * 24 * time.Hour)
		return &d
	}

	t.Run("overdue task fires with title", func(t *testing.T) {
		rc := &Context{
			Athlete:      model.User{BaseModel: model.BaseModel{ID: 1}},
			Tasks:        catalog,
			AthleteTasks: []model.AthleteTask{{AthleteID: 1, TaskID: 1, Status: model.TaskInProgress, DueDate: due(5)}},
			Now:          now,
		}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyMedium, cands[0].Urgency)
		assert.Contains(t, cands[0].Message, "Upload your transcript")
		require.NotNil(t, cands[0].RelatedTaskID)
		assert.Equal(t, uint(1), *cands[0].RelatedTaskID)
	})

	t.Run("two weeks overdue escalates", func(t *testing.T) {
		rc := &Context{
			Athlete:      model.User{BaseModel: model.BaseModel{ID: 1}},
			Tasks:        catalog,
			AthleteTasks: []model.AthleteTask{{AthleteID: 1, TaskID: 1, Status: model.TaskNotStarted, DueDate: due(OverdueHighDays)}},
			Now:          now,
		}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyHigh, cands[0].Urgency)
	})

	t.Run("completed and undated tasks are quiet", func(t *testing.T) {
		rc := &Context{
			Athlete: model.User{BaseModel: model.BaseModel{ID: 1}},
			Tasks:   catalog,
			AthleteTasks: []model.AthleteTask{
				{AthleteID: 1, TaskID: 1, Status: model.TaskCompleted, DueDate: due(30)},
				{AthleteID: 1, TaskID: 2, Status: model.TaskInProgress},
			},
			Now: now,
		}
		assert.Empty(t, rule.Evaluate(rc))
	})
}

func TestEventPrepRule(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &EventPrepRule{}
	schoolID := uint(10)

	mkEvent := func(name string, in time.Duration) model.Event {
		return model.Event{AthleteID: 1, SchoolID: &schoolID, Name: name, StartsAt: now.Add(in)}
	}

	rc := &Context{
		Athlete: model.User{BaseModel: model.BaseModel{ID: 1}},
		Events: []model.Event{
			mkEvent("Past Camp", -24*time.Hour),
			mkEvent("Soon Showcase", 2*24*time.Hour),
			mkEvent("Next Week Camp", 6*24*time.Hour),
			mkEvent("Far Tournament", 20*24*time.Hour),
		},
		Now: now,
	}

	cands := rule.Evaluate(rc)
	require.Len(t, cands, 2)

	soon := cands[0]
	next := cands[1]
	assert.Equal(t, model.UrgencyHigh, soon.Urgency)
	assert.Contains(t, soon.Message, "Soon Showcase")
	assert.Equal(t, model.UrgencyMedium, next.Urgency)
	assert.Contains(t, next.Message, "Next Week Camp")
	require.NotNil(t, soon.RelatedSchoolID)
	assert.Equal(t, schoolID, *soon.RelatedSchoolID)
}

func TestProfileIncompleteRule(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &ProfileIncompleteRule{}

	t.Run("lists every missing field", func(t *testing.T) {
		rc := &Context{Athlete: model.User{BaseModel: model.BaseModel{ID: 1}}, Now: now}
		cands := rule.Evaluate(rc)
		require.Len(t, cands, 1)
		assert.Equal(t, model.UrgencyLow, cands[0].Urgency)
		assert.Contains(t, cands[0].Message, "graduation year")
		assert.Contains(t, cands[0].Message, "position")
		assert.Contains(t, cands[0].Message, "height")
		assert.Contains(t, cands[0].Message, "GPA")
	})

	t.Run("complete profile is quiet", func(t *testing.T) {
		rc := &Context{
			Athlete: model.User{
				BaseModel:      model.BaseModel{ID: 1},
				GraduationYear: 2027,
				Position:       "PG",
				Height:         "6'2\"",
				GPA:            3.6,
			},
			Now: now,
		}
		assert.Empty(t, rule.Evaluate(rc))
	})
}

func TestDefaultRegistryWiring(t *testing.T) {
	rules := DefaultRegistry().All()
	require.Len(t, rules, 6)

	types := map[string]bool{}
	for _, r := range rules {
		types[r.Type()] = true
	}
	for _, want := range []string{
		model.RuleInteractionGap,
		model.RuleMissingVideo,
		model.RuleSchoolList,
		model.RuleTaskOverdue,
		model.RuleEventPrep,
		model.RuleProfileIncomplete,
	} {
		assert.True(t, types[want], want)
	}
}
