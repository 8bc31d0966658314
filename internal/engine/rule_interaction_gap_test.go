package engine

import (
	"testing"
	"time"

	"recruiting_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gapContext(now time.Time, schools []model.School, interactions []model.Interaction) *Context {
	return &Context{
		Athlete:      model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.Athlete},
		Schools:      schools,
		Interactions: interactions,
		Now:          now,
	}
}

func eligibleSchool(id uint, name string) model.School {
	return model.School{
		BaseModel:    model.BaseModel{ID: id},
		AthleteID:    1,
		Name:         name,
		PriorityTier: model.TierA,
		Status:       model.SchoolContacted,
	}
}

func TestInteractionGapTiers(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &InteractionGapRule{}

	cases := []struct {
		name    string
		daysAgo int
		want    model.SuggestionUrgency
		fires   bool
	}{
		{"recent contact", 10, "", false},
		{"just below threshold", 20, "", false},
		{"at medium threshold", 21, model.UrgencyMedium, true},
		{"upper medium band", 29, model.UrgencyMedium, true},
		{"at high threshold", 30, model.UrgencyHigh, true},
		{"long gone", 45, model.UrgencyHigh, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rc := gapContext(now,
				[]model.School{eligibleSchool(10, "Duke")},
				[]model.Interaction{{AthleteID: 1, SchoolID: 10, OccurredAt: now.Add(-time.Duration(tc.daysAgo) * 24 * time.Hour)}},
			)

			cands := rule.Evaluate(rc)
			if !tc.fires {
				assert.Empty(t, cands)
				return
			}
			require.Len(t, cands, 1)
			assert.Equal(t, tc.want, cands[0].Urgency)
			assert.Equal(t, model.ActionLogInteraction, cands[0].ActionType)
			require.NotNil(t, cands[0].RelatedSchoolID)
			assert.Equal(t, uint(10), *cands[0].RelatedSchoolID)
		})
	}
}

func TestInteractionGapMessageNamesSchoolAndDays(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rc := gapContext(now,
		[]model.School{eligibleSchool(10, "Duke")},
		[]model.Interaction{{AthleteID: 1, SchoolID: 10, OccurredAt: now.Add(-35 * 24 * time.Hour)}},
	)

	cands := (&InteractionGapRule{}).Evaluate(rc)
	require.Len(t, cands, 1)
	assert.Equal(t, model.UrgencyHigh, cands[0].Urgency)
	assert.Contains(t, cands[0].Message, "Duke")
	assert.Contains(t, cands[0].Message, "35")
}

func TestInteractionGapNoContactYet(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rc := gapContext(now, []model.School{eligibleSchool(10, "Stanford")}, nil)

	cands := (&InteractionGapRule{}).Evaluate(rc)
	require.Len(t, cands, 1)
	assert.Equal(t, model.UrgencyMedium, cands[0].Urgency)
	assert.Contains(t, cands[0].Message, "Stanford")
}

func TestInteractionGapEligibility(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rule := &InteractionGapRule{}

	tierC := eligibleSchool(1, "Backup U")
	tierC.PriorityTier = model.TierC

	researching := eligibleSchool(2, "Maybe State")
	researching.Status = model.SchoolResearching

	declined := eligibleSchool(3, "Passed College")
	declined.Status = model.SchoolDeclined

	rc := gapContext(now, []model.School{tierC, researching, declined}, nil)
	assert.Empty(t, rule.Evaluate(rc))
}

func TestInteractionGapOneCandidatePerSchool(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rc := gapContext(now,
		[]model.School{eligibleSchool(10, "Duke"), eligibleSchool(11, "UNC")},
		[]model.Interaction{
			{AthleteID: 1, SchoolID: 10, OccurredAt: now.Add(-25 * 24 * time.Hour)},
			{AthleteID: 1, SchoolID: 11, OccurredAt: now.Add(-40 * 24 * time.Hour)},
		},
	)

	cands := (&InteractionGapRule{}).Evaluate(rc)
	require.Len(t, cands, 2)

	bySchool := map[uint]Candidate{}
	for _, c := range cands {
		bySchool[*c.RelatedSchoolID] = c
	}
	assert.Equal(t, model.UrgencyMedium, bySchool[10].Urgency)
	assert.Equal(t, model.UrgencyHigh, bySchool[11].Urgency)
}

func TestInteractionGapUsesMostRecentInteraction(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rc := gapContext(now,
		[]model.School{eligibleSchool(10, "Duke")},
		[]model.Interaction{
			{AthleteID: 1, SchoolID: 10, OccurredAt: now.Add(-60 * 24 * time.Hour)},
			{AthleteID: 1, SchoolID: 10, OccurredAt: now.Add(-5 * 24 * time.Hour)},
		},
	)

	assert.Empty(t, (&InteractionGapRule{}).Evaluate(rc))
}
