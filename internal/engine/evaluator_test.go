package engine

import (
	"testing"
	"time"

	"recruiting_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticRule struct {
	typ   string
	cands []Candidate
}

func (r *staticRule) Type() string                 { return r.typ }
func (r *staticRule) Evaluate(_ *Context) []Candidate { return r.cands }

type panicRule struct{}

func (r *panicRule) Type() string                 { return "panic-rule" }
func (r *panicRule) Evaluate(_ *Context) []Candidate { panic("boom") }

func testContext() *Context {
	return &Context{
		Athlete: model.User{BaseModel: model.BaseModel{ID: 1}, Role: model.Athlete},
		Now:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func gapCandidate(schoolID uint) Candidate {
	return Candidate{
		RuleType:        model.RuleInteractionGap,
		Urgency:         model.UrgencyMedium,
		Message:         "reach out",
		ActionType:      model.ActionLogInteraction,
		RelatedSchoolID: &schoolID,
	}
}

func TestCollectIsolatesPanickingRule(t *testing.T) {
	healthy := &staticRule{typ: "healthy", cands: []Candidate{{RuleType: "healthy", Urgency: model.UrgencyLow}}}
	e := NewEvaluator(NewRegistry(&panicRule{}, healthy), zap.NewNop())

	cands := e.Collect(testContext())
	require.Len(t, cands, 1)
	assert.Equal(t, "healthy", cands[0].RuleType)
}

func TestNewSuggestionsSkipsActiveDuplicate(t *testing.T) {
	e := NewEvaluator(NewRegistry(), zap.NewNop())
	rc := testContext()
	schoolID := uint(10)

	existing := []model.Suggestion{{
		AthleteID:       1,
		RuleType:        model.RuleInteractionGap,
		RelatedSchoolID: &schoolID,
	}}

	out := e.NewSuggestions([]Candidate{gapCandidate(10)}, existing, rc)
	assert.Empty(t, out)
}

func TestNewSuggestionsCompletedIsTerminalForever(t *testing.T) {
	e := NewEvaluator(NewRegistry(), zap.NewNop())
	rc := testContext()
	schoolID := uint(10)
	longAgo := rc.Now.Add(-90 * 24 * time.Hour)

	existing := []model.Suggestion{{
		AthleteID:       1,
		RuleType:        model.RuleInteractionGap,
		RelatedSchoolID: &schoolID,
		Completed:       true,
		CompletedAt:     &longAgo,
	}}

	out := e.NewSuggestions([]Candidate{gapCandidate(10)}, existing, rc)
	assert.Empty(t, out)
}

func TestNewSuggestionsDismissedKeyGoesThroughReappearance(t *testing.T) {
	e := NewEvaluator(NewRegistry(), zap.NewNop())
	rc := testContext()
	schoolID := uint(10)
	dismissedAt := rc.Now.Add(-20 * 24 * time.Hour)

	existing := []model.Suggestion{{
		AthleteID:       1,
		RuleType:        model.RuleInteractionGap,
		RelatedSchoolID: &schoolID,
		Dismissed:       true,
		DismissedAt:     &dismissedAt,
	}}

	// Even past the cooldown, plain insertion never resurfaces a dismissed
	// key; Reappearances does.
	out := e.NewSuggestions([]Candidate{gapCandidate(10)}, existing, rc)
	assert.Empty(t, out)
}

func TestNewSuggestionsInRunDedup(t *testing.T) {
	e := NewEvaluator(NewRegistry(), zap.NewNop())
	rc := testContext()

	out := e.NewSuggestions([]Candidate{gapCandidate(10), gapCandidate(10)}, nil, rc)
	assert.Len(t, out, 1)
}

func TestNewSuggestionsDistinctSchoolsAreDistinctKeys(t *testing.T) {
	e := NewEvaluator(NewRegistry(), zap.NewNop())
	rc := testContext()

	out := e.NewSuggestions([]Candidate{gapCandidate(10), gapCandidate(11)}, nil, rc)
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].AthleteID)
	assert.NotEqual(t, out[0].DedupKey(), out[1].DedupKey())
}

func TestEvaluationIsIdempotent(t *testing.T) {
	e := NewEvaluator(NewRegistry(), zap.NewNop())
	rc := testContext()
	candidates := []Candidate{gapCandidate(10), gapCandidate(11)}

	first := e.NewSuggestions(candidates, nil, rc)
	require.Len(t, first, 2)

	// Running the same candidates against what the first run produced must
	// yield nothing new.
	second := e.NewSuggestions(candidates, first, rc)
	assert.Empty(t, second)
}
