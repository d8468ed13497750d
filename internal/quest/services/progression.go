package services

import (
	"math"
	"time"

	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// Level thresholds over the questions-completed high-water mark.
const (
	intermediateThreshold = 3
	advancedThreshold     = 6
	expertThreshold       = 8
)

// LevelForQuestions maps a questions-completed count to its level label.
func LevelForQuestions(questionsCompleted int) string {
	switch {
	case questionsCompleted >= expertThreshold:
		return models.LevelExpert
	case questionsCompleted >= advancedThreshold:
		return models.LevelAdvanced
	case questionsCompleted >= intermediateThreshold:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}

// AdvanceProgress merges one quiz session into a culture's progress record.
// existing may be nil for a first submission. Counts and scores only move up:
// questionsCompleted is a session high-water mark capped at the culture's
// question total, bestScore is a max, totalPoints accumulates. Returns the
// updated record and whether the level changed.
func AdvanceProgress(existing *models.UserProgress, cultureID uint, answeredCount, pointsEarned, totalQuestions int, now time.Time) (models.UserProgress, bool) {
	updated := models.UserProgress{CultureID: cultureID, Level: models.LevelBeginner}
	if existing != nil {
		updated = *existing
	}
	previousLevel := updated.Level

	if answeredCount > updated.QuestionsCompleted {
		updated.QuestionsCompleted = answeredCount
	}
	if totalQuestions > 0 && updated.QuestionsCompleted > totalQuestions {
		updated.QuestionsCompleted = totalQuestions
	}
	if pointsEarned > updated.BestScore {
		updated.BestScore = pointsEarned
	}
	updated.TotalPoints += pointsEarned
	updated.Level = LevelForQuestions(updated.QuestionsCompleted)
	updated.LastPlayed = now

	return updated, updated.Level != previousLevel
}

// AdvanceStats folds one submission into the global aggregate. The running
// accuracy is the mean of per-submission accuracies weighted by the
// pre-update challenge count. culturesExplored is recomputed as a set
// cardinality by the caller, never incremented.
func AdvanceStats(stats models.GameStats, pointsEarned, sessionAccuracy, culturesExplored int) models.GameStats {
	updated := stats
	updated.TotalScore += pointsEarned
	updated.Accuracy = int(math.Round(
		(float64(stats.Accuracy)*float64(stats.ChallengesCompleted) + float64(sessionAccuracy)) /
			float64(stats.ChallengesCompleted+1)))
	updated.ChallengesCompleted++
	updated.CulturesExplored = culturesExplored
	return updated
}
