package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/GenKoKo/culture-quest/internal/common/middleware"
)

// GetStats returns the global aggregate stats record.
// GET /api/stats
func (h *QuestHandler) GetStats(c *gin.Context) {
	stats, err := h.engine.Stats()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, stats)
}

// ListAchievements returns every achievement with its unlock state.
// GET /api/achievements
func (h *QuestHandler) ListAchievements(c *gin.Context) {
	achievements, err := h.engine.AchievementsWithStatus()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, achievements)
}
