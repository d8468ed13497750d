package storage

import (
	"sort"
	"sync"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// MemoryStore is the reference in-process backend: plain maps guarded by one
// mutex, ids handed out from a single auto-incrementing counter.
type MemoryStore struct {
	mu sync.RWMutex

	cultures     map[uint]models.Culture
	questions    map[uint]models.Question
	progress     map[uint]models.UserProgress // keyed by culture id
	achievements map[uint]models.Achievement
	unlocked     map[uint]models.UserAchievement
	stats        models.GameStats
	nextID       uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cultures:     make(map[uint]models.Culture),
		questions:    make(map[uint]models.Question),
		progress:     make(map[uint]models.UserProgress),
		achievements: make(map[uint]models.Achievement),
		unlocked:     make(map[uint]models.UserAchievement),
		stats:        models.GameStats{ID: 1, Level: 1},
		nextID:       1,
	}
}

func (s *MemoryStore) allocateID() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemoryStore) ListCultures() ([]models.Culture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cultures := make([]models.Culture, 0, len(s.cultures))
	for _, culture := range s.cultures {
		cultures = append(cultures, culture)
	}
	sort.Slice(cultures, func(i, j int) bool { return cultures[i].ID < cultures[j].ID })
	return cultures, nil
}

func (s *MemoryStore) GetCulture(id uint) (*models.Culture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	culture, ok := s.cultures[id]
	if !ok {
		return nil, errors.NotFound("culture")
	}
	return &culture, nil
}

func (s *MemoryStore) CreateCulture(culture *models.Culture) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if culture.ID == 0 {
		culture.ID = s.allocateID()
	} else if culture.ID >= s.nextID {
		s.nextID = culture.ID + 1
	}
	s.cultures[culture.ID] = *culture
	return nil
}

func (s *MemoryStore) QuestionsByCulture(cultureID uint) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var questions []models.Question
	for _, question := range s.questions {
		if question.CultureID == cultureID {
			questions = append(questions, question)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (s *MemoryStore) CreateQuestion(question *models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if question.ID == 0 {
		question.ID = s.allocateID()
	} else if question.ID >= s.nextID {
		s.nextID = question.ID + 1
	}
	s.questions[question.ID] = *question
	return nil
}

func (s *MemoryStore) ListProgress() ([]models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	progress := make([]models.UserProgress, 0, len(s.progress))
	for _, p := range s.progress {
		progress = append(progress, p)
	}
	sort.Slice(progress, func(i, j int) bool { return progress[i].CultureID < progress[j].CultureID })
	return progress, nil
}

func (s *MemoryStore) ProgressByCulture(cultureID uint) (*models.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[cultureID]
	if !ok {
		return nil, errors.NotFound("user progress")
	}
	return &p, nil
}

func (s *MemoryStore) ListAchievements() ([]models.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	achievements := make([]models.Achievement, 0, len(s.achievements))
	for _, achievement := range s.achievements {
		achievements = append(achievements, achievement)
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].ID < achievements[j].ID })
	return achievements, nil
}

func (s *MemoryStore) CreateAchievement(achievement *models.Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if achievement.ID == 0 {
		achievement.ID = s.allocateID()
	} else if achievement.ID >= s.nextID {
		s.nextID = achievement.ID + 1
	}
	s.achievements[achievement.ID] = *achievement
	return nil
}

func (s *MemoryStore) ListUnlocked() ([]models.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlocked := make([]models.UserAchievement, 0, len(s.unlocked))
	for _, ua := range s.unlocked {
		unlocked = append(unlocked, ua)
	}
	sort.Slice(unlocked, func(i, j int) bool { return unlocked[i].ID < unlocked[j].ID })
	return unlocked, nil
}

func (s *MemoryStore) GetStats() (*models.GameStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.stats
	return &stats, nil
}

// CommitSubmission applies one submission's writes under a single lock hold,
// so a concurrent reader never observes a half-applied submission.
func (s *MemoryStore) CommitSubmission(progress *models.UserProgress, stats *models.GameStats, unlocks []*models.UserAchievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if progress.ID == 0 {
		if existing, ok := s.progress[progress.CultureID]; ok {
			progress.ID = existing.ID
		} else {
			progress.ID = s.allocateID()
		}
	}
	s.progress[progress.CultureID] = *progress

	stats.ID = s.stats.ID
	s.stats = *stats

	for _, unlock := range unlocks {
		if unlock.ID == 0 {
			unlock.ID = s.allocateID()
		}
		s.unlocked[unlock.ID] = *unlock
	}
	return nil
}
