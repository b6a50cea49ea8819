package auth

import (
	"net/http"
	"time"

	"estate-voice-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers exposes token issuance for the admin surface.
type Handlers struct {
	Manager *Manager
}

type tokenRequest struct {
	APIKey string `json:"apiKey"`
}

// Token handles POST /api/auth/token: exchanges the admin API key for a
// JWT pair.
func (h Handlers) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	if !h.Manager.CheckAPIKey(req.APIKey) {
		logger.FromGin(c).Warn("admin token exchange rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid api key"})
		return
	}

	pair, err := h.Manager.IssuePair(time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": pair})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles POST /api/auth/refresh: a valid refresh token yields a
// fresh pair.
func (h Handlers) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "refreshToken required"})
		return
	}

	if _, err := h.Manager.Verify(req.RefreshToken, TokenTypeRefresh, time.Now()); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid refresh token"})
		return
	}

	pair, err := h.Manager.IssuePair(time.Now())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": pair})
}
