package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

func TestLevelForQuestions_Thresholds(t *testing.T) {
	cases := []struct {
		completed int
		level     string
	}{
		{0, models.LevelBeginner},
		{2, models.LevelBeginner},
		{3, models.LevelIntermediate},
		{5, models.LevelIntermediate},
		{6, models.LevelAdvanced},
		{7, models.LevelAdvanced},
		{8, models.LevelExpert},
		{12, models.LevelExpert},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForQuestions(tc.completed), "completed=%d", tc.completed)
	}
}

func TestAdvanceProgress_FirstSubmission(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)

	updated, levelUp := AdvanceProgress(nil, 4, 5, 800, 8, now)

	assert.Equal(t, uint(4), updated.CultureID)
	assert.Equal(t, 5, updated.QuestionsCompleted)
	assert.Equal(t, 800, updated.BestScore)
	assert.Equal(t, 800, updated.TotalPoints)
	assert.Equal(t, models.LevelIntermediate, updated.Level)
	assert.Equal(t, now, updated.LastPlayed)
	assert.True(t, levelUp)
}

func TestAdvanceProgress_Monotonic(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	existing := &models.UserProgress{
		ID:                 3,
		CultureID:          1,
		QuestionsCompleted: 6,
		BestScore:          900,
		TotalPoints:        1500,
		Level:              models.LevelAdvanced,
	}

	// A weaker session never lowers anything.
	updated, levelUp := AdvanceProgress(existing, 1, 3, 300, 8, now)

	assert.Equal(t, 6, updated.QuestionsCompleted)
	assert.Equal(t, 900, updated.BestScore)
	assert.Equal(t, 1800, updated.TotalPoints)
	assert.Equal(t, models.LevelAdvanced, updated.Level)
	assert.False(t, levelUp)
}

func TestAdvanceProgress_CapsAtCultureTotal(t *testing.T) {
	now := time.Now()

	updated, _ := AdvanceProgress(nil, 1, 12, 1200, 8, now)

	assert.Equal(t, 8, updated.QuestionsCompleted)
	assert.Equal(t, models.LevelExpert, updated.Level)
}

func TestAdvanceProgress_LevelUpOnThresholdCross(t *testing.T) {
	now := time.Now()
	existing := &models.UserProgress{
		CultureID:          2,
		QuestionsCompleted: 5,
		BestScore:          600,
		TotalPoints:        600,
		Level:              models.LevelIntermediate,
	}

	updated, levelUp := AdvanceProgress(existing, 2, 6, 700, 8, now)

	assert.Equal(t, models.LevelAdvanced, updated.Level)
	assert.True(t, levelUp)
	assert.Equal(t, 700, updated.BestScore)
	assert.Equal(t, 1300, updated.TotalPoints)
}

func TestAdvanceStats_FirstSubmission(t *testing.T) {
	stats := models.GameStats{ID: 1, Level: 1}

	updated := AdvanceStats(stats, 800, 100, 1)

	assert.Equal(t, 800, updated.TotalScore)
	assert.Equal(t, 1, updated.ChallengesCompleted)
	assert.Equal(t, 100, updated.Accuracy)
	assert.Equal(t, 1, updated.CulturesExplored)
}

func TestAdvanceStats_RunningAccuracyUsesPreUpdateWeight(t *testing.T) {
	stats := models.GameStats{ID: 1, TotalScore: 800, ChallengesCompleted: 1, Accuracy: 100, CulturesExplored: 1}

	updated := AdvanceStats(stats, 300, 60, 2)

	// round((100*1 + 60) / 2) = 80
	assert.Equal(t, 80, updated.Accuracy)
	assert.Equal(t, 2, updated.ChallengesCompleted)
	assert.Equal(t, 1100, updated.TotalScore)
	assert.Equal(t, 2, updated.CulturesExplored)
}

func TestAdvanceStats_AccuracyStaysInRange(t *testing.T) {
	stats := models.GameStats{ID: 1}
	for i := 0; i < 50; i++ {
		accuracy := (i * 37) % 101
		stats = AdvanceStats(stats, 100, accuracy, 1)
		assert.GreaterOrEqual(t, stats.Accuracy, 0)
		assert.LessOrEqual(t, stats.Accuracy, 100)
	}
	assert.Equal(t, 50, stats.ChallengesCompleted)
}
