package storage

import (
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// Store is the narrow record-store surface the engine runs against. Backends
// must provide read-your-writes consistency within one process, and
// CommitSubmission must be atomic: either every record lands or none do.
type Store interface {
	// Cultures
	ListCultures() ([]models.Culture, error)
	GetCulture(id uint) (*models.Culture, error)
	CreateCulture(culture *models.Culture) error

	// Questions
	QuestionsByCulture(cultureID uint) ([]models.Question, error)
	CreateQuestion(question *models.Question) error

	// Progress
	ListProgress() ([]models.UserProgress, error)
	ProgressByCulture(cultureID uint) (*models.UserProgress, error)

	// Achievements
	ListAchievements() ([]models.Achievement, error)
	CreateAchievement(achievement *models.Achievement) error
	ListUnlocked() ([]models.UserAchievement, error)

	// Stats
	GetStats() (*models.GameStats, error)

	// CommitSubmission applies the full effect of one quiz submission:
	// upserted per-culture progress, the replaced stats singleton, and any
	// newly unlocked achievements.
	CommitSubmission(progress *models.UserProgress, stats *models.GameStats, unlocks []*models.UserAchievement) error
}
