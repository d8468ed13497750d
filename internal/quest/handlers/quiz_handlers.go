package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/common/middleware"
	"github.com/GenKoKo/culture-quest/internal/common/validation"
	"github.com/GenKoKo/culture-quest/internal/metrics"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
)

const (
	defaultQuestionCount = 5

	// A session cannot run longer than a day.
	maxSessionSeconds = 86400
)

// StartQuiz hands out a random question subset for a culture, answer key
// withheld.
// GET /api/quiz/:cultureId?count=5
func (h *QuestHandler) StartQuiz(c *gin.Context) {
	cultureID, err := parseID(c.Param("cultureId"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultQuestionCount)))
	if err != nil || count < 1 {
		count = defaultQuestionCount
	}

	start, err := h.engine.StartQuiz(cultureID, count)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	metrics.QuizStarts.Inc()
	c.JSON(200, start)
}

// SubmitQuiz grades a finished quiz and applies its progression effects.
// POST /api/quiz/submit
func (h *QuestHandler) SubmitQuiz(c *gin.Context) {
	var req models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid submission payload", err.Error()))
		return
	}
	if err := validation.ValidateIntRange(req.TotalTime, 0, maxSessionSeconds); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid submission payload", "totalTime: "+err.Error()))
		return
	}

	result, err := h.engine.SubmitQuiz(req)
	if err != nil {
		metrics.QuizSubmissions.WithLabelValues("rejected").Inc()
		middleware.JSONErrorResponse(c, err)
		return
	}

	metrics.QuizSubmissions.WithLabelValues("ok").Inc()
	metrics.AchievementsUnlocked.Add(float64(len(result.NewAchievements)))
	c.JSON(200, result)
}
