package services

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
	"github.com/GenKoKo/culture-quest/internal/quest/storage"
)

// Engine runs the quiz submission pipeline: grade, score, advance progress
// and stats, evaluate achievements, commit. One mutex serializes the whole
// pipeline against the shared stats and progress records, so a submission is
// observed either fully applied or not at all.
type Engine struct {
	store storage.Store

	mu  sync.Mutex
	now func() time.Time
	rng *rand.Rand

	weighted bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithRandomSource replaces the question-selection randomness, for
// deterministic tests.
func WithRandomSource(src rand.Source) EngineOption {
	return func(e *Engine) { e.rng = rand.New(src) }
}

// WithDifficultyWeighting switches scoring to the difficulty-weighted variant.
func WithDifficultyWeighting() EngineOption {
	return func(e *Engine) { e.weighted = true }
}

func NewEngine(store storage.Store, opts ...EngineOption) *Engine {
	engine := &Engine{
		store: store,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// CulturesWithProgress lists every culture with its progress summary embedded.
// Cultures never played get a zeroed Beginner summary.
func (e *Engine) CulturesWithProgress() ([]models.CultureWithProgress, error) {
	cultures, err := e.store.ListCultures()
	if err != nil {
		return nil, err
	}
	progressList, err := e.store.ListProgress()
	if err != nil {
		return nil, err
	}

	byCulture := make(map[uint]models.UserProgress, len(progressList))
	for _, p := range progressList {
		byCulture[p.CultureID] = p
	}

	result := make([]models.CultureWithProgress, len(cultures))
	for i, culture := range cultures {
		summary := models.ProgressSummary{
			TotalQuestions: culture.TotalQuestions,
			Level:          models.LevelBeginner,
		}
		if p, ok := byCulture[culture.ID]; ok {
			summary.QuestionsCompleted = p.QuestionsCompleted
			summary.BestScore = p.BestScore
			summary.Level = p.Level
			if culture.TotalQuestions > 0 {
				summary.ProgressPercent = int(math.Round(
					float64(p.QuestionsCompleted) / float64(culture.TotalQuestions) * 100))
			}
		}
		result[i] = models.CultureWithProgress{Culture: culture, Progress: summary}
	}
	return result, nil
}

// Culture returns one culture by id.
func (e *Engine) Culture(id uint) (*models.Culture, error) {
	return e.store.GetCulture(id)
}

// StartQuiz picks a fresh random subset of a culture's questions, with the
// answer key and cultural facts withheld.
func (e *Engine) StartQuiz(cultureID uint, count int) (*models.QuizStartResponse, error) {
	culture, err := e.store.GetCulture(cultureID)
	if err != nil {
		return nil, err
	}
	questions, err := e.store.QuestionsByCulture(cultureID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	selected := SelectQuestions(e.rng, questions, count)
	e.mu.Unlock()

	views := make([]models.QuestionView, len(selected))
	for i, question := range selected {
		views[i] = question.View()
	}
	return &models.QuizStartResponse{Culture: *culture, Questions: views}, nil
}

// SubmitQuiz runs the full submission pipeline as one logical transaction.
// Validation and grading failures reject the submission before any state is
// touched; the store commit is atomic.
func (e *Engine) SubmitQuiz(req models.SubmitQuizRequest) (*models.QuizResultResponse, error) {
	if len(req.Answers) == 0 {
		return nil, errors.EmptySubmission()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	culture, err := e.store.GetCulture(req.CultureID)
	if err != nil {
		return nil, err
	}

	questions, err := e.store.QuestionsByCulture(req.CultureID)
	if err != nil {
		return nil, err
	}

	detailed, correctCount, err := GradeAnswers(questions, req.Answers)
	if err != nil {
		return nil, err
	}

	var points, accuracy int
	if e.weighted {
		points, accuracy, err = ScoreSubmissionWeighted(
			correctCount, len(req.Answers), req.TotalTime,
			AverageDifficulty(questions, req.Answers))
	} else {
		points, accuracy, err = ScoreSubmission(correctCount, len(req.Answers), req.TotalTime)
	}
	if err != nil {
		return nil, err
	}

	existing, err := e.store.ProgressByCulture(req.CultureID)
	if err != nil && !errors.IsCode(err, errors.CodeNotFound) {
		return nil, err
	}

	updatedProgress, levelUp := AdvanceProgress(
		existing, req.CultureID, len(req.Answers), points, culture.TotalQuestions, e.now())

	allProgress, err := e.store.ListProgress()
	if err != nil {
		return nil, err
	}
	progressAfter := replaceProgress(allProgress, updatedProgress)

	stats, err := e.store.GetStats()
	if err != nil {
		return nil, err
	}
	updatedStats := AdvanceStats(*stats, points, accuracy, len(progressAfter))

	newAchievements, unlocks, err := e.pendingUnlocks(updatedStats, progressAfter, SubmissionContext{
		SessionAccuracy:  accuracy,
		TotalTimeSeconds: req.TotalTime,
	})
	if err != nil {
		return nil, err
	}

	if err := e.store.CommitSubmission(&updatedProgress, &updatedStats, unlocks); err != nil {
		return nil, err
	}

	return &models.QuizResultResponse{
		TotalScore:      points,
		CorrectAnswers:  correctCount,
		TotalQuestions:  len(req.Answers),
		Accuracy:        accuracy,
		TimeSpent:       req.TotalTime,
		PointsEarned:    points,
		DetailedAnswers: detailed,
		NewAchievements: newAchievements,
		LevelUp:         levelUp,
		NewLevel:        updatedProgress.Level,
		UpdatedStats:    &updatedStats,
	}, nil
}

// Stats returns the global aggregate record.
func (e *Engine) Stats() (*models.GameStats, error) {
	return e.store.GetStats()
}

// AchievementsWithStatus lists every achievement definition with its unlock
// state attached.
func (e *Engine) AchievementsWithStatus() ([]models.AchievementStatus, error) {
	definitions, err := e.store.ListAchievements()
	if err != nil {
		return nil, err
	}
	unlocked, err := e.store.ListUnlocked()
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[uint]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	result := make([]models.AchievementStatus, len(definitions))
	for i, achievement := range definitions {
		status := models.AchievementStatus{Achievement: achievement}
		if at, ok := unlockedAt[achievement.ID]; ok {
			status.Unlocked = true
			at := at
			status.UnlockedAt = &at
		}
		result[i] = status
	}
	return result, nil
}

// pendingUnlocks evaluates the achievement definitions against the
// about-to-be-committed state and builds unlock records for any that newly
// hold.
func (e *Engine) pendingUnlocks(stats models.GameStats, progress []models.UserProgress, sub SubmissionContext) ([]models.Achievement, []*models.UserAchievement, error) {
	definitions, err := e.store.ListAchievements()
	if err != nil {
		return nil, nil, err
	}
	unlockedList, err := e.store.ListUnlocked()
	if err != nil {
		return nil, nil, err
	}
	cultures, err := e.store.ListCultures()
	if err != nil {
		return nil, nil, err
	}

	unlocked := make(map[uint]bool, len(unlockedList))
	for _, ua := range unlockedList {
		unlocked[ua.AchievementID] = true
	}
	cultureTotals := make(map[uint]int, len(cultures))
	for _, culture := range cultures {
		cultureTotals[culture.ID] = culture.TotalQuestions
	}

	newAchievements := EvaluateAchievements(definitions, unlocked, stats, progress, cultureTotals, sub)

	unlockedAt := e.now()
	unlocks := make([]*models.UserAchievement, len(newAchievements))
	for i, achievement := range newAchievements {
		unlocks[i] = &models.UserAchievement{
			AchievementID: achievement.ID,
			UnlockedAt:    unlockedAt,
		}
	}
	return newAchievements, unlocks, nil
}

func replaceProgress(all []models.UserProgress, updated models.UserProgress) []models.UserProgress {
	result := make([]models.UserProgress, 0, len(all)+1)
	replaced := false
	for _, p := range all {
		if p.CultureID == updated.CultureID {
			result = append(result, updated)
			replaced = true
			continue
		}
		result = append(result, p)
	}
	if !replaced {
		result = append(result, updated)
	}
	return result
}
