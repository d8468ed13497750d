package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QuizStarts counts quiz sessions handed out to clients.
	QuizStarts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "culture_quest_quiz_starts_total",
		Help: "Number of quiz sessions started.",
	})

	// QuizSubmissions counts graded submissions by outcome.
	QuizSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "culture_quest_quiz_submissions_total",
		Help: "Number of quiz submissions processed, by status.",
	}, []string{"status"})

	// AchievementsUnlocked counts achievement unlocks.
	AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "culture_quest_achievements_unlocked_total",
		Help: "Number of achievements unlocked.",
	})
)

// Handler exposes the Prometheus registry as a gin handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
