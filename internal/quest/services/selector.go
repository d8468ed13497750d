package services

import (
	"math/rand"

	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

// SelectQuestions returns a uniform-random, non-repeating subset of the given
// questions, truncated to min(count, available). The permutation is re-rolled
// on every call so repeated attempts see varied question sets.
func SelectQuestions(rng *rand.Rand, questions []models.Question, count int) []models.Question {
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	if count < 0 {
		count = 0
	}
	return shuffled[:count]
}
