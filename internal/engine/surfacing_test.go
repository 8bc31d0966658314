package engine

import (
	"testing"
	"time"

	"recruiting_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSuggestion(id uint, urgency model.SuggestionUrgency, createdAt time.Time) *model.Suggestion {
	return &model.Suggestion{
		BaseModel: model.BaseModel{ID: id, CreatedAt: createdAt},
		AthleteID: 1,
		Urgency:   urgency,
	}
}

func TestRankOrdersByUrgencyThenRecency(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	s := []*model.Suggestion{
		activeSuggestion(1, model.UrgencyLow, base),
		activeSuggestion(2, model.UrgencyHigh, base.Add(-time.Hour)),
		activeSuggestion(3, model.UrgencyMedium, base),
		activeSuggestion(4, model.UrgencyHigh, base), // newer high ranks first
	}

	Rank(s)

	got := []uint{s[0].ID, s[1].ID, s[2].ID, s[3].ID}
	assert.Equal(t, []uint{4, 2, 3, 1}, got)
}

func TestApplySurfacingCapsVisibleAtThree(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	active := []*model.Suggestion{
		activeSuggestion(1, model.UrgencyHigh, now),
		activeSuggestion(2, model.UrgencyHigh, now.Add(-time.Hour)),
		activeSuggestion(3, model.UrgencyMedium, now),
		activeSuggestion(4, model.UrgencyMedium, now.Add(-time.Hour)),
		activeSuggestion(5, model.UrgencyLow, now),
	}

	visible, pending := ApplySurfacing(active, now)

	require.Len(t, visible, VisibleCap)
	require.Len(t, pending, 2)

	for _, s := range visible {
		assert.False(t, s.PendingSurface)
		require.NotNil(t, s.SurfacedAt)
	}
	for _, s := range pending {
		assert.True(t, s.PendingSurface)
	}

	// The two highs and the newer medium win the visible slots.
	assert.Equal(t, uint(1), visible[0].ID)
	assert.Equal(t, uint(2), visible[1].ID)
	assert.Equal(t, uint(3), visible[2].ID)

	assert.Equal(t, 2, MoreCount(len(active), len(visible)))
}

func TestApplySurfacingKeepsOriginalSurfacedAt(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	s := activeSuggestion(1, model.UrgencyHigh, earlier)
	s.SurfacedAt = &earlier

	visible, _ := ApplySurfacing([]*model.Suggestion{s}, now)
	require.Len(t, visible, 1)
	assert.Equal(t, earlier, *visible[0].SurfacedAt)
}

func TestSurfaceMorePromotesInRankOrder(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	pending := []*model.Suggestion{
		activeSuggestion(1, model.UrgencyLow, now),
		activeSuggestion(2, model.UrgencyHigh, now),
		activeSuggestion(3, model.UrgencyMedium, now),
	}
	for _, s := range pending {
		s.PendingSurface = true
	}

	promoted := SurfaceMore(pending, 2, now)
	require.Len(t, promoted, 2)
	assert.Equal(t, uint(2), promoted[0].ID)
	assert.Equal(t, uint(3), promoted[1].ID)
	for _, s := range promoted {
		assert.False(t, s.PendingSurface)
		require.NotNil(t, s.SurfacedAt)
	}

	// The low-urgency one stays pending.
	assert.True(t, pending[2].PendingSurface)
}

func TestSurfaceMoreBounds(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	one := activeSuggestion(1, model.UrgencyLow, now)
	one.PendingSurface = true

	assert.Len(t, SurfaceMore([]*model.Suggestion{one}, 5, now), 1)
	assert.Nil(t, SurfaceMore([]*model.Suggestion{one}, 0, now))
	assert.Nil(t, SurfaceMore(nil, 3, now))
}

func TestMoreCountNeverNegative(t *testing.T) {
	assert.Equal(t, 0, MoreCount(0, 0))
	assert.Equal(t, 0, MoreCount(2, 3))
	assert.Equal(t, 0, MoreCount(3, 3))
	assert.Equal(t, 2, MoreCount(5, 3))
}

func TestUrgencyAtLeast(t *testing.T) {
	assert.True(t, UrgencyAtLeast(model.UrgencyHigh, model.UrgencyMedium))
	assert.True(t, UrgencyAtLeast(model.UrgencyMedium, model.UrgencyMedium))
	assert.False(t, UrgencyAtLeast(model.UrgencyLow, model.UrgencyMedium))
}
