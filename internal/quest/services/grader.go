package services

import (
	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// GradeAnswers grades submitted answers against a culture's full question set.
// Correctness is exact string equality with the stored answer, case-sensitive
// and unnormalized. Output preserves input order and carries the cultural fact
// and image for display regardless of correctness. An answer referencing a
// question outside the set fails the whole grading, so a failed submission
// never applies partially.
func GradeAnswers(questions []models.Question, answers []models.SubmittedAnswer) ([]models.DetailedAnswer, int, error) {
	if len(answers) == 0 {
		return nil, 0, errors.EmptySubmission()
	}

	byID := make(map[uint]models.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	detailed := make([]models.DetailedAnswer, 0, len(answers))
	correctCount := 0
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			return nil, 0, errors.UnknownQuestion(answer.QuestionID)
		}

		isCorrect := answer.Answer == question.CorrectAnswer
		if isCorrect {
			correctCount++
		}

		detailed = append(detailed, models.DetailedAnswer{
			QuestionID:    answer.QuestionID,
			Question:      question.Question,
			UserAnswer:    answer.Answer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
			TimeSpent:     answer.TimeSpent,
			CulturalFact:  question.CulturalFact,
			ImageURL:      question.ImageURL,
		})
	}

	return detailed, correctCount, nil
}

// AverageDifficulty returns the mean difficulty of the questions referenced by
// the submitted answers. Callers grade first, so every id resolves.
func AverageDifficulty(questions []models.Question, answers []models.SubmittedAnswer) float64 {
	if len(answers) == 0 {
		return 0
	}

	byID := make(map[uint]models.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	sum := 0
	for _, answer := range answers {
		sum += byID[answer.QuestionID].Difficulty
	}
	return float64(sum) / float64(len(answers))
}
