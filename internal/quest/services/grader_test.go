package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

func gradingQuestions() []models.Question {
	return []models.Question{
		{
			ID:            1,
			CultureID:     1,
			Question:      "What is the traditional Japanese tea ceremony called?",
			Options:       models.OptionList{"Chanoyu", "Sushi", "Kabuki", "Haiku"},
			CorrectAnswer: "Chanoyu",
			CulturalFact:  "Chanoyu embodies harmony, respect, purity, and tranquility.",
			Difficulty:    2,
		},
		{
			ID:            2,
			CultureID:     1,
			Question:      "Which festival celebrates the cherry blossom season?",
			Options:       models.OptionList{"Hanami", "Obon", "Tanabata", "Shichi-Go-San"},
			CorrectAnswer: "Hanami",
			CulturalFact:  "Hanami literally means flower viewing.",
			ImageURL:      "https://example.com/hanami.jpg",
			Difficulty:    1,
		},
		{
			ID:            3,
			CultureID:     1,
			Question:      "What type of architecture is shown?",
			Options:       models.OptionList{"Buddhist Temple", "Shinto Shrine"},
			CorrectAnswer: "Shinto Shrine",
			CulturalFact:  "Shrines are marked by torii gates.",
			Difficulty:    3,
		},
	}
}

func TestGradeAnswers_PreservesInputOrder(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: 3, Answer: "Shinto Shrine", TimeSpent: 12},
		{QuestionID: 1, Answer: "Sushi", TimeSpent: 8},
		{QuestionID: 2, Answer: "Hanami", TimeSpent: 5},
	}

	detailed, correct, err := GradeAnswers(gradingQuestions(), answers)

	require.NoError(t, err)
	require.Len(t, detailed, 3)
	assert.Equal(t, 2, correct)
	assert.Equal(t, uint(3), detailed[0].QuestionID)
	assert.Equal(t, uint(1), detailed[1].QuestionID)
	assert.Equal(t, uint(2), detailed[2].QuestionID)
}

func TestGradeAnswers_ExactStringMatch(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: 1, Answer: "Chanoyu"},
		{QuestionID: 2, Answer: "hanami"},         // wrong case
		{QuestionID: 3, Answer: " Shinto Shrine"}, // leading space
	}

	detailed, correct, err := GradeAnswers(gradingQuestions(), answers)

	require.NoError(t, err)
	assert.Equal(t, 1, correct)
	assert.True(t, detailed[0].IsCorrect)
	assert.False(t, detailed[1].IsCorrect)
	assert.False(t, detailed[2].IsCorrect)
}

func TestGradeAnswers_AttachesFactsRegardlessOfCorrectness(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: 2, Answer: "Obon", TimeSpent: 9},
	}

	detailed, _, err := GradeAnswers(gradingQuestions(), answers)

	require.NoError(t, err)
	require.Len(t, detailed, 1)
	assert.False(t, detailed[0].IsCorrect)
	assert.Equal(t, "Hanami literally means flower viewing.", detailed[0].CulturalFact)
	assert.Equal(t, "https://example.com/hanami.jpg", detailed[0].ImageURL)
	assert.Equal(t, "Hanami", detailed[0].CorrectAnswer)
	assert.Equal(t, 9, detailed[0].TimeSpent)
}

func TestGradeAnswers_UnknownQuestionFailsWholeSubmission(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: 1, Answer: "Chanoyu"},
		{QuestionID: 99, Answer: "anything"},
	}

	detailed, correct, err := GradeAnswers(gradingQuestions(), answers)

	assert.Nil(t, detailed)
	assert.Zero(t, correct)
	assert.True(t, errors.IsCode(err, errors.CodeUnknownQuestion))
}

func TestGradeAnswers_EmptySubmission(t *testing.T) {
	_, _, err := GradeAnswers(gradingQuestions(), nil)

	assert.True(t, errors.IsCode(err, errors.CodeEmptySubmission))
}

func TestAverageDifficulty(t *testing.T) {
	answers := []models.SubmittedAnswer{
		{QuestionID: 1}, // difficulty 2
		{QuestionID: 3}, // difficulty 3
	}

	assert.InDelta(t, 2.5, AverageDifficulty(gradingQuestions(), answers), 0.001)
	assert.Zero(t, AverageDifficulty(gradingQuestions(), nil))
}
