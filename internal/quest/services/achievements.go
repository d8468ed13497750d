package services

import (
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// Fallback culture size for the complete_culture predicate when the culture
// record is unavailable.
const defaultCultureQuestions = 8

// SubmissionContext carries the per-session values some predicates need that
// are not derivable from the aggregate records.
type SubmissionContext struct {
	SessionAccuracy  int
	TotalTimeSeconds int
}

// EvaluateAchievements tests every not-yet-unlocked achievement against the
// current state and returns the ones whose predicate newly holds. Iteration
// follows the definitions slice, so the result order is deterministic for a
// given store. Already-unlocked achievements never re-fire.
//
// perfect_score is judged on the session accuracy rather than the running
// stats average: the achievement reads "get 100% on any quiz".
func EvaluateAchievements(
	definitions []models.Achievement,
	unlocked map[uint]bool,
	stats models.GameStats,
	progress []models.UserProgress,
	cultureTotals map[uint]int,
	sub SubmissionContext,
) []models.Achievement {
	var newlyUnlocked []models.Achievement
	for _, achievement := range definitions {
		if unlocked[achievement.ID] {
			continue
		}
		if achievementSatisfied(achievement.Requirement, stats, progress, cultureTotals, sub) {
			newlyUnlocked = append(newlyUnlocked, achievement)
		}
	}
	return newlyUnlocked
}

func achievementSatisfied(
	requirement string,
	stats models.GameStats,
	progress []models.UserProgress,
	cultureTotals map[uint]int,
	sub SubmissionContext,
) bool {
	switch requirement {
	case models.RequireFirstChallenge:
		return stats.ChallengesCompleted >= 1
	case models.RequirePerfectScore:
		return sub.SessionAccuracy == 100
	case models.RequireCompleteCulture:
		for _, p := range progress {
			total, ok := cultureTotals[p.CultureID]
			if !ok || total <= 0 {
				total = defaultCultureQuestions
			}
			if p.QuestionsCompleted >= total {
				return true
			}
		}
		return false
	case models.RequireFiveCultures:
		return stats.CulturesExplored >= 5
	case models.RequireSpeedCompletion:
		return sub.TotalTimeSeconds < FastTimeSeconds
	default:
		return false
	}
}
