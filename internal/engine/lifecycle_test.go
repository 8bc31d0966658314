package engine

import (
	"testing"
	"time"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDismissSemantics(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	s := &model.Suggestion{}
	require.NoError(t, Dismiss(s, now))
	assert.True(t, s.Dismissed)
	require.NotNil(t, s.DismissedAt)
	assert.Equal(t, now, *s.DismissedAt)

	// Repeat dismiss is a no-op and keeps the original timestamp.
	later := now.Add(time.Hour)
	require.NoError(t, Dismiss(s, later))
	assert.Equal(t, now, *s.DismissedAt)

	// Completed is terminal.
	done := &model.Suggestion{Completed: true}
	assert.ErrorIs(t, Dismiss(done, now), util.ErrInvalidTransition)
}

func TestCompleteSemantics(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	s := &model.Suggestion{}
	require.NoError(t, Complete(s, now))
	assert.True(t, s.Completed)
	require.NotNil(t, s.CompletedAt)

	later := now.Add(time.Hour)
	require.NoError(t, Complete(s, later))
	assert.Equal(t, now, *s.CompletedAt)

	// Completing a dismissed suggestion is allowed; the athlete did the
	// thing anyway.
	dismissed := &model.Suggestion{Dismissed: true}
	require.NoError(t, Complete(dismissed, now))
	assert.True(t, dismissed.Completed)
}

func TestEscalateUrgency(t *testing.T) {
	assert.Equal(t, model.UrgencyMedium, EscalateUrgency(model.UrgencyLow))
	assert.Equal(t, model.UrgencyHigh, EscalateUrgency(model.UrgencyMedium))
	assert.Equal(t, model.UrgencyHigh, EscalateUrgency(model.UrgencyHigh))
}

func dismissedSuggestion(id, schoolID uint, urgency model.SuggestionUrgency, dismissedAt time.Time) model.Suggestion {
	sid := schoolID
	return model.Suggestion{
		BaseModel:       model.BaseModel{ID: id},
		AthleteID:       1,
		RuleType:        model.RuleInteractionGap,
		Urgency:         urgency,
		RelatedSchoolID: &sid,
		Dismissed:       true,
		DismissedAt:     &dismissedAt,
	}
}

func TestReappearanceBlockedInsideCooldown(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	existing := []model.Suggestion{
		dismissedSuggestion(5, 10, model.UrgencyMedium, now.Add(-10*24*time.Hour)),
	}

	out := Reappearances(1, []Candidate{gapCandidate(10)}, existing, now)
	assert.Empty(t, out)
}

func TestReappearanceAfterCooldownEscalates(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	original := dismissedSuggestion(5, 10, model.UrgencyMedium, now.Add(-15*24*time.Hour))
	existing := []model.Suggestion{original}

	out := Reappearances(1, []Candidate{gapCandidate(10)}, existing, now)
	require.Len(t, out, 1)

	assert.True(t, out[0].Reappeared)
	assert.Equal(t, model.UrgencyHigh, out[0].Urgency)
	require.NotNil(t, out[0].PreviousSuggestionID)
	assert.Equal(t, uint(5), *out[0].PreviousSuggestionID)

	// The original record is untouched.
	assert.True(t, existing[0].Dismissed)
	assert.False(t, existing[0].Reappeared)
}

func TestReappearanceEscalationCapsAtHigh(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	existing := []model.Suggestion{
		dismissedSuggestion(5, 10, model.UrgencyHigh, now.Add(-20*24*time.Hour)),
	}

	out := Reappearances(1, []Candidate{gapCandidate(10)}, existing, now)
	require.Len(t, out, 1)
	assert.Equal(t, model.UrgencyHigh, out[0].Urgency)
}

func TestReappearanceNeverForCompletedKey(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	schoolID := uint(10)
	completedAt := now.Add(-60 * 24 * time.Hour)

	existing := []model.Suggestion{
		dismissedSuggestion(5, 10, model.UrgencyMedium, now.Add(-20*24*time.Hour)),
		{
			BaseModel:       model.BaseModel{ID: 6},
			AthleteID:       1,
			RuleType:        model.RuleInteractionGap,
			RelatedSchoolID: &schoolID,
			Completed:       true,
			CompletedAt:     &completedAt,
		},
	}

	out := Reappearances(1, []Candidate{gapCandidate(10)}, existing, now)
	assert.Empty(t, out)
}

func TestReappearanceBlockedByActiveRecord(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	schoolID := uint(10)

	existing := []model.Suggestion{
		dismissedSuggestion(5, 10, model.UrgencyMedium, now.Add(-20*24*time.Hour)),
		{
			BaseModel:       model.BaseModel{ID: 7},
			AthleteID:       1,
			RuleType:        model.RuleInteractionGap,
			RelatedSchoolID: &schoolID,
		},
	}

	out := Reappearances(1, []Candidate{gapCandidate(10)}, existing, now)
	assert.Empty(t, out)
}

func TestReappearanceUsesLatestDismissal(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// Two dismissals of the same key; the newer one is inside the cooldown,
	// so the key stays quiet.
	existing := []model.Suggestion{
		dismissedSuggestion(5, 10, model.UrgencyMedium, now.Add(-40*24*time.Hour)),
		dismissedSuggestion(8, 10, model.UrgencyHigh, now.Add(-5*24*time.Hour)),
	}

	out := Reappearances(1, []Candidate{gapCandidate(10)}, existing, now)
	assert.Empty(t, out)
}

func TestReappearanceRequiresFreshCandidate(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	existing := []model.Suggestion{
		dismissedSuggestion(5, 10, model.UrgencyMedium, now.Add(-20*24*time.Hour)),
	}

	// The condition no longer holds: no candidate, no reappearance.
	out := Reappearances(1, nil, existing, now)
	assert.Empty(t, out)
}
