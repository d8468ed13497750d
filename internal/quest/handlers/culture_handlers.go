package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/common/middleware"
	"github.com/GenKoKo/culture-quest/internal/quest/services"
)

// QuestHandler exposes the quiz engine over HTTP.
type QuestHandler struct {
	engine *services.Engine
}

func NewQuestHandler(engine *services.Engine) *QuestHandler {
	return &QuestHandler{engine: engine}
}

// ListCultures returns all cultures with embedded progress summaries.
// GET /api/cultures
func (h *QuestHandler) ListCultures(c *gin.Context) {
	cultures, err := h.engine.CulturesWithProgress()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, cultures)
}

// GetCulture returns one culture by id.
// GET /api/cultures/:id
func (h *QuestHandler) GetCulture(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	culture, err := h.engine.Culture(id)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, culture)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.BadRequest("invalid id")
	}
	return uint(id), nil
}
