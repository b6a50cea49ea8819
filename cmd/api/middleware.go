package main

import (
	"time"

	"estate-voice-api/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMiddleware builds the CORS policy from config. Without an explicit
// allowlist, local/dev environments get a wildcard and production stays
// same-origin only.
func corsMiddleware(app config.AppConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	switch {
	case len(app.AllowedOrigins) > 0:
		c.AllowOrigins = app.AllowedOrigins
	case app.Env == "production":
		c.AllowOriginFunc = func(string) bool { return false }
	default:
		c.AllowAllOrigins = true
	}
	return cors.New(c)
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		c.Next()
	}
}
