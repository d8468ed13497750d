package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenKoKo/culture-quest/internal/common/middleware"
	"github.com/GenKoKo/culture-quest/internal/quest/models"
	"github.com/GenKoKo/culture-quest/internal/quest/seed"
	"github.com/GenKoKo/culture-quest/internal/quest/services"
	"github.com/GenKoKo/culture-quest/internal/quest/storage"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *storage.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	culture := models.Culture{Name: "Japanese", Country: "Japan", Flag: "🇯🇵", TotalQuestions: 8, EstimatedTime: 15}
	require.NoError(t, store.CreateCulture(&culture))
	for i := 0; i < 8; i++ {
		question := models.Question{
			CultureID:     culture.ID,
			Type:          models.QuestionTrivia,
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       models.OptionList{"right", "wrong"},
			CorrectAnswer: "right",
			CulturalFact:  "A fact.",
			Difficulty:    1,
		}
		require.NoError(t, store.CreateQuestion(&question))
	}
	achievements := seed.Achievements()
	for i := range achievements {
		require.NoError(t, store.CreateAchievement(&achievements[i]))
	}

	engine := services.NewEngine(store,
		services.WithClock(func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) }),
		services.WithRandomSource(rand.NewSource(7)),
	)
	handler := NewQuestHandler(engine)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	api := router.Group("/api")
	{
		api.GET("/cultures", handler.ListCultures)
		api.GET("/cultures/:id", handler.GetCulture)
		api.GET("/quiz/:cultureId", handler.StartQuiz)
		api.POST("/quiz/submit", handler.SubmitQuiz)
		api.GET("/stats", handler.GetStats)
		api.GET("/achievements", handler.ListAchievements)
	}
	return router, store
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestListCultures(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/cultures", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var cultures []models.CultureWithProgress
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &cultures))
	require.Len(t, cultures, 1)
	assert.Equal(t, "Japanese", cultures[0].Name)
	assert.Equal(t, models.LevelBeginner, cultures[0].Progress.Level)
	assert.Zero(t, cultures[0].Progress.ProgressPercent)
}

func TestGetCulture_NotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/cultures/99", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetCulture_InvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/cultures/abc", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStartQuiz_WithholdsAnswers(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/quiz/1?count=3", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var start struct {
		Questions []map[string]interface{} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &start))
	require.Len(t, start.Questions, 3)
	for _, question := range start.Questions {
		assert.NotContains(t, question, "correctAnswer")
		assert.NotContains(t, question, "culturalFact")
		assert.Contains(t, question, "options")
	}
}

func TestStartQuiz_DefaultCount(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodGet, "/api/quiz/1", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var start models.QuizStartResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &start))
	assert.Len(t, start.Questions, 5)
}

func TestSubmitQuiz_FullFlow(t *testing.T) {
	router, store := setupTestRouter(t)

	questions, err := store.QuestionsByCulture(1)
	require.NoError(t, err)

	answers := make([]models.SubmittedAnswer, 5)
	for i := 0; i < 5; i++ {
		answers[i] = models.SubmittedAnswer{QuestionID: questions[i].ID, Answer: "right", TimeSpent: 10}
	}
	recorder := doRequest(router, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{
		CultureID: 1,
		Answers:   answers,
		TotalTime: 200,
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var result models.QuizResultResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 800, result.PointsEarned)
	assert.Equal(t, 100, result.Accuracy)
	assert.Equal(t, models.LevelIntermediate, result.NewLevel)
	assert.True(t, result.LevelUp)
	assert.Len(t, result.NewAchievements, 3)

	// Stats endpoint reflects the committed submission.
	statsRec := doRequest(router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, statsRec.Code)
	var stats models.GameStats
	require.NoError(t, json.Unmarshal(statsRec.Body.Bytes(), &stats))
	assert.Equal(t, 800, stats.TotalScore)
	assert.Equal(t, 1, stats.ChallengesCompleted)

	// Achievement listing carries unlock state.
	achRec := doRequest(router, http.MethodGet, "/api/achievements", nil)
	require.Equal(t, http.StatusOK, achRec.Code)
	var achievements []models.AchievementStatus
	require.NoError(t, json.Unmarshal(achRec.Body.Bytes(), &achievements))
	require.Len(t, achievements, 5)
	unlocked := 0
	for _, status := range achievements {
		if status.Unlocked {
			unlocked++
		}
	}
	assert.Equal(t, 3, unlocked)
}

func TestSubmitQuiz_EmptyAnswersRejected(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{
		CultureID: 1,
		TotalTime: 100,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmitQuiz_UnknownQuestionRejected(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{
		CultureID: 1,
		Answers:   []models.SubmittedAnswer{{QuestionID: 9999, Answer: "right"}},
		TotalTime: 100,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestSubmitQuiz_NegativeTotalTimeRejected(t *testing.T) {
	router, _ := setupTestRouter(t)

	recorder := doRequest(router, http.MethodPost, "/api/quiz/submit", models.SubmitQuizRequest{
		CultureID: 1,
		Answers:   []models.SubmittedAnswer{{QuestionID: 1, Answer: "right"}},
		TotalTime: -5,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmitQuiz_MalformedBody(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
