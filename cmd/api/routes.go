package main

import (
	"net/http"
	"strings"

	"estate-voice-api/internal/auth"
	"estate-voice-api/internal/property"
	"estate-voice-api/internal/voice"

	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	Voice    voice.Handlers
	Property property.Handlers
	Auth     auth.Handlers
	AuthMW   gin.HandlerFunc
	RateMW   gin.HandlerFunc
}

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, deps routeDeps) {
	// liveness probe, no dependencies
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Provider webhook (public). Sender authentication is intentionally
	// out of scope; the interpreter only logs, it mutates nothing.
	r.POST("/api/vapi/webhook", deps.Voice.Webhook)

	api := r.Group("/api")
	api.Use(deps.RateMW)
	{
		api.GET("/health", deps.Voice.Health)

		api.GET("/vapi/assistant", deps.Voice.GetAssistant)
		api.GET("/vapi/config", deps.Voice.GetConfig)
		api.POST("/vapi/call", deps.Voice.MakeCall)
		api.POST("/vapi/call/web", deps.Voice.CreateWebCall)
		api.GET("/vapi/calls", deps.Voice.GetCalls)
		api.GET("/vapi/call/:id", deps.Voice.GetCall)
		api.DELETE("/vapi/call/:id", deps.Voice.EndCall)
		api.GET("/vapi/call/:id/transcript", deps.Voice.GetCallTranscript)

		api.GET("/properties", deps.Property.Search)
		api.GET("/properties/:id", deps.Property.Get)

		api.POST("/auth/token", deps.Auth.Token)
		api.POST("/auth/refresh", deps.Auth.Refresh)

		// admin surface
		admin := api.Group("")
		admin.Use(deps.AuthMW)
		{
			admin.PATCH("/vapi/assistant", deps.Voice.UpdateAssistant)
		}
	}

	// Browser client. The SPA fallback must never shadow the API.
	r.StaticFile("/", "./public/index.html")
	r.Static("/assets", "./public/assets")
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
			return
		}
		c.File("./public/index.html")
	})
}
