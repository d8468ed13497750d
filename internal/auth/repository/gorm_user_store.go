package repository

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/GenKoKo/culture-quest/internal/auth/models"
	"github.com/GenKoKo/culture-quest/internal/common/errors"
)

// GormUserStore is the durable account backend.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

// Migrate creates the users table.
func (s *GormUserStore) Migrate() error {
	return s.db.AutoMigrate(&models.User{})
}

func (s *GormUserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("user")
		}
		return nil, errors.StoreUnavailable(err.Error())
	}
	return &user, nil
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("user")
		}
		return nil, errors.StoreUnavailable(err.Error())
	}
	return &user, nil
}

func (s *GormUserStore) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return errors.StoreUnavailable(err.Error())
	}
	return nil
}

func (s *GormUserStore) Update(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		return errors.StoreUnavailable(err.Error())
	}
	return nil
}
