package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/GenKoKo/culture-quest/internal/auth/models"
	"github.com/GenKoKo/culture-quest/internal/auth/services"
	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/common/middleware"
)

// AuthHandler exposes account management over HTTP.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid registration payload", err.Error()))
		return
	}

	user, err := h.auth.Register(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, gin.H{
		"message": "registered, check your email for the verification code",
		"userId":  user.ID,
	})
}

// VerifyEmail confirms an account's verification code.
// POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req models.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid verification payload", err.Error()))
		return
	}

	if err := h.auth.VerifyEmail(req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "email verified"})
}

// Login checks credentials and returns a token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid login payload", err.Error()))
		return
	}

	resp, err := h.auth.Login(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, resp)
}

// CurrentUser returns the authenticated account.
// GET /api/auth/me
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("not authenticated"))
		return
	}

	user, err := h.auth.CurrentUser(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, user)
}

// UpdateProfile changes the authenticated account's display name.
// PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("not authenticated"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid profile payload", err.Error()))
		return
	}

	user, err := h.auth.UpdateProfile(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(200, user)
}
