package repository

import (
	"sync"

	"github.com/GenKoKo/culture-quest/internal/auth/models"
	"github.com/GenKoKo/culture-quest/internal/common/errors"
)

// UserStore is the account storage surface the auth service runs against.
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// MemoryUserStore keeps accounts in process memory.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[uint]models.User
	byEmail map[string]uint
	nextID  uint
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[uint]models.User),
		byEmail: make(map[string]uint),
		nextID:  1,
	}
}

func (s *MemoryUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, errors.NotFound("user")
	}
	user := s.byID[id]
	return &user, nil
}

func (s *MemoryUserStore) GetByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return &user, nil
}

func (s *MemoryUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return errors.Conflict("email already in use")
	}
	user.ID = s.nextID
	s.nextID++
	s.byID[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *MemoryUserStore) Update(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[user.ID]; !ok {
		return errors.NotFound("user")
	}
	s.byID[user.ID] = *user
	return nil
}
