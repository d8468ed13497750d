package services

import (
	"math"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
)

// Scoring rule constants. Time bonuses reward finishing under 5 and 10
// minutes; accuracy bonuses reward 100% and the 80% tier.
const (
	PointsPerCorrect = 100

	FastTimeSeconds   = 300
	MediumTimeSeconds = 600
	FastTimeBonus     = 100
	MediumTimeBonus   = 50

	PerfectAccuracyBonus = 200
	HighAccuracyBonus    = 100
	HighAccuracyCutoff   = 80
)

// Accuracy returns the rounded percentage of correct answers. totalCount must
// be at least 1.
func Accuracy(correctCount, totalCount int) (int, error) {
	if totalCount < 1 {
		return 0, errors.EmptySubmission()
	}
	return int(math.Round(float64(correctCount) / float64(totalCount) * 100)), nil
}

// ScoreSubmission is the canonical flat scoring formula:
// base points per correct answer plus time and accuracy bonuses.
func ScoreSubmission(correctCount, totalCount, totalTimeSeconds int) (points, accuracy int, err error) {
	accuracy, err = Accuracy(correctCount, totalCount)
	if err != nil {
		return 0, 0, err
	}

	basePoints := correctCount * PointsPerCorrect
	return basePoints + timeBonus(totalTimeSeconds) + accuracyBonus(accuracy), accuracy, nil
}

// ScoreSubmissionWeighted is the difficulty-weighted variant: base points are
// scaled by the average difficulty of the answered questions. Bonuses are
// unchanged.
func ScoreSubmissionWeighted(correctCount, totalCount, totalTimeSeconds int, averageDifficulty float64) (points, accuracy int, err error) {
	accuracy, err = Accuracy(correctCount, totalCount)
	if err != nil {
		return 0, 0, err
	}
	if averageDifficulty < 1 {
		averageDifficulty = 1
	}

	basePoints := int(math.Round(float64(correctCount*PointsPerCorrect) * averageDifficulty))
	return basePoints + timeBonus(totalTimeSeconds) + accuracyBonus(accuracy), accuracy, nil
}

func timeBonus(totalTimeSeconds int) int {
	switch {
	case totalTimeSeconds < FastTimeSeconds:
		return FastTimeBonus
	case totalTimeSeconds < MediumTimeSeconds:
		return MediumTimeBonus
	default:
		return 0
	}
}

func accuracyBonus(accuracy int) int {
	switch {
	case accuracy == 100:
		return PerfectAccuracyBonus
	case accuracy >= HighAccuracyCutoff:
		return HighAccuracyBonus
	default:
		return 0
	}
}
