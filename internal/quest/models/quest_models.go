package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Progress levels derived from the questions-completed high-water mark.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Question types
const (
	QuestionTrivia   = "trivia"
	QuestionVisual   = "visual"
	QuestionMatching = "matching"
)

// Culture is a cultural subject area with a fixed question bank.
type Culture struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"not null" json:"name"`
	Country        string `gorm:"not null" json:"country"`
	Flag           string `gorm:"not null" json:"flag"`
	ImageURL       string `gorm:"not null" json:"imageUrl"`
	Description    string `gorm:"not null" json:"description"`
	TotalQuestions int    `gorm:"not null;default:8" json:"totalQuestions"`
	EstimatedTime  int    `gorm:"not null;default:15" json:"estimatedTime"` // minutes
}

// OptionList stores question options as a JSON array in a single text column.
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	case nil:
		*o = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into OptionList", value)
	}
}

// Question is immutable reference data belonging to one culture.
type Question struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CultureID     uint       `gorm:"not null;index" json:"cultureId"`
	Type          string     `gorm:"not null" json:"type"`
	Question      string     `gorm:"not null" json:"question"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Options       OptionList `gorm:"type:text;not null" json:"options"`
	CorrectAnswer string     `gorm:"not null" json:"correctAnswer"`
	CulturalFact  string     `gorm:"not null" json:"culturalFact"`
	Difficulty    int        `gorm:"not null;default:1;check:difficulty >= 1 AND difficulty <= 3" json:"difficulty"`
}

// QuestionView is the caller-facing shape of a question before grading: the
// correct answer and cultural fact stay server-side.
type QuestionView struct {
	ID         uint       `json:"id"`
	Type       string     `json:"type"`
	Question   string     `json:"question"`
	ImageURL   string     `json:"imageUrl,omitempty"`
	Options    OptionList `json:"options"`
	Difficulty int        `json:"difficulty"`
}

// View strips the answer key from a question.
func (q Question) View() QuestionView {
	return QuestionView{
		ID:         q.ID,
		Type:       q.Type,
		Question:   q.Question,
		ImageURL:   q.ImageURL,
		Options:    q.Options,
		Difficulty: q.Difficulty,
	}
}

// UserProgress is the per-culture cumulative learner state. QuestionsCompleted
// is the largest single-session question count reached, not a running total.
type UserProgress struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CultureID          uint      `gorm:"unique;not null;index" json:"cultureId"`
	QuestionsCompleted int       `gorm:"not null;default:0" json:"questionsCompleted"`
	BestScore          int       `gorm:"not null;default:0" json:"bestScore"`
	TotalPoints        int       `gorm:"not null;default:0" json:"totalPoints"`
	Level              string    `gorm:"not null;default:Beginner" json:"level"`
	LastPlayed         time.Time `json:"lastPlayed"`
}

// Achievement is immutable reference data; Requirement is a symbolic predicate key.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Points      int    `gorm:"not null" json:"points"`
	Icon        string `gorm:"not null" json:"icon"`
	Requirement string `gorm:"not null" json:"requirement"`
}

// Achievement requirement keys.
const (
	RequireFirstChallenge  = "complete_first_challenge"
	RequirePerfectScore    = "perfect_score"
	RequireCompleteCulture = "complete_culture"
	RequireFiveCultures    = "explore_5_cultures"
	RequireSpeedCompletion = "speed_completion"
)

// UserAchievement records an unlock; existence is the "already unlocked" signal.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AchievementID uint      `gorm:"unique;not null" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

// GameStats is the global singleton aggregate, mutated on every submission.
type GameStats struct {
	ID                  uint `gorm:"primaryKey" json:"id"`
	TotalScore          int  `gorm:"not null;default:0" json:"totalScore"`
	Level               int  `gorm:"not null;default:1" json:"level"`
	CulturesExplored    int  `gorm:"not null;default:0" json:"culturesExplored"`
	ChallengesCompleted int  `gorm:"not null;default:0" json:"challengesCompleted"`
	Accuracy            int  `gorm:"not null;default:0" json:"accuracy"` // percentage, running mean
	Streak              int  `gorm:"not null;default:0" json:"streak"`
}

// SubmittedAnswer is one answer within a quiz submission.
type SubmittedAnswer struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
	TimeSpent  int    `json:"timeSpent"` // seconds on this question
}

// SubmitQuizRequest is the request body for submitting a finished quiz.
type SubmitQuizRequest struct {
	CultureID uint              `json:"cultureId" binding:"required"`
	Answers   []SubmittedAnswer `json:"answers"`
	TotalTime int               `json:"totalTime"` // seconds for the whole session
}

// DetailedAnswer is the graded view of one submitted answer, in input order.
type DetailedAnswer struct {
	QuestionID    uint   `json:"questionId"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	TimeSpent     int    `json:"timeSpent"`
	CulturalFact  string `json:"culturalFact"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// QuizResultResponse is the response body for a graded submission.
type QuizResultResponse struct {
	TotalScore      int              `json:"totalScore"`
	CorrectAnswers  int              `json:"correctAnswers"`
	TotalQuestions  int              `json:"totalQuestions"`
	Accuracy        int              `json:"accuracy"`
	TimeSpent       int              `json:"timeSpent"`
	PointsEarned    int              `json:"pointsEarned"`
	DetailedAnswers []DetailedAnswer `json:"detailedAnswers"`
	NewAchievements []Achievement    `json:"newAchievements"`
	LevelUp         bool             `json:"levelUp"`
	NewLevel        string           `json:"newLevel"`
	UpdatedStats    *GameStats       `json:"updatedStats,omitempty"`
}

// ProgressSummary is the per-culture progress block embedded in culture listings.
type ProgressSummary struct {
	QuestionsCompleted int    `json:"questionsCompleted"`
	TotalQuestions     int    `json:"totalQuestions"`
	BestScore          int    `json:"bestScore"`
	Level              string `json:"level"`
	ProgressPercent    int    `json:"progressPercent"`
}

// CultureWithProgress is a culture with its progress summary embedded.
type CultureWithProgress struct {
	Culture
	Progress ProgressSummary `json:"progress"`
}

// QuizStartResponse is the response body for starting a quiz.
type QuizStartResponse struct {
	Culture   Culture        `json:"culture"`
	Questions []QuestionView `json:"questions"`
}

// AchievementStatus is an achievement with its unlock state attached.
type AchievementStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}
