package storage

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// GormStore is the durable backend over a gorm connection (sqlite or postgres).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the quest tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.Culture{},
		&models.Question{},
		&models.UserProgress{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.GameStats{},
	)
}

func (s *GormStore) ListCultures() ([]models.Culture, error) {
	var cultures []models.Culture
	if err := s.db.Order("id").Find(&cultures).Error; err != nil {
		return nil, errors.StoreUnavailable(err.Error())
	}
	return cultures, nil
}

func (s *GormStore) GetCulture(id uint) (*models.Culture, error) {
	var culture models.Culture
	if err := s.db.First(&culture, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("culture")
		}
		return nil, errors.StoreUnavailable(err.Error())
	}
	return &culture, nil
}

func (s *GormStore) CreateCulture(culture *models.Culture) error {
	if err := s.db.Create(culture).Error; err != nil {
		return errors.StoreUnavailable(err.Error())
	}
	return nil
}

func (s *GormStore) QuestionsByCulture(cultureID uint) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Where("culture_id = ?", cultureID).Order("id").Find(&questions).Error; err != nil {
		return nil, errors.StoreUnavailable(err.Error())
	}
	return questions, nil
}

func (s *GormStore) CreateQuestion(question *models.Question) error {
	if err := s.db.Create(question).Error; err != nil {
		return errors.StoreUnavailable(err.Error())
	}
	return nil
}

func (s *GormStore) ListProgress() ([]models.UserProgress, error) {
	var progress []models.UserProgress
	if err := s.db.Order("culture_id").Find(&progress).Error; err != nil {
		return nil, errors.StoreUnavailable(err.Error())
	}
	return progress, nil
}

func (s *GormStore) ProgressByCulture(cultureID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := s.db.Where("culture_id = ?", cultureID).First(&progress).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("user progress")
		}
		return nil, errors.StoreUnavailable(err.Error())
	}
	return &progress, nil
}

func (s *GormStore) ListAchievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Order("id").Find(&achievements).Error; err != nil {
		return nil, errors.StoreUnavailable(err.Error())
	}
	return achievements, nil
}

func (s *GormStore) CreateAchievement(achievement *models.Achievement) error {
	if err := s.db.Create(achievement).Error; err != nil {
		return errors.StoreUnavailable(err.Error())
	}
	return nil
}

func (s *GormStore) ListUnlocked() ([]models.UserAchievement, error) {
	var unlocked []models.UserAchievement
	if err := s.db.Order("id").Find(&unlocked).Error; err != nil {
		return nil, errors.StoreUnavailable(err.Error())
	}
	return unlocked, nil
}

func (s *GormStore) GetStats() (*models.GameStats, error) {
	var stats models.GameStats
	if err := s.db.First(&stats).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			stats = models.GameStats{ID: 1, Level: 1}
			if err := s.db.Create(&stats).Error; err != nil {
				return nil, errors.StoreUnavailable(err.Error())
			}
			return &stats, nil
		}
		return nil, errors.StoreUnavailable(err.Error())
	}
	return &stats, nil
}

// CommitSubmission wraps the submission writes in one database transaction.
func (s *GormStore) CommitSubmission(progress *models.UserProgress, stats *models.GameStats, unlocks []*models.UserAchievement) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(progress).Error; err != nil {
			return err
		}
		if err := tx.Save(stats).Error; err != nil {
			return err
		}
		for _, unlock := range unlocks {
			if err := tx.Create(unlock).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.StoreUnavailable(err.Error())
	}
	return nil
}
