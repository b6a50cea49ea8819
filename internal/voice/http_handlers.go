package voice

import (
	"errors"
	"net/http"
	"strconv"

	"estate-voice-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers exposes the gateway over REST.
//
// Keep these thin: parse/validate input, call the gateway, map error
// kinds to HTTP statuses. No upstream knowledge lives here.
type Handlers struct {
	Gateway     *Gateway
	Interpreter *WebhookInterpreter
}

// writeError is the single place error kinds become HTTP statuses.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *ValidationError
		upstreamErr   *UpstreamError
		transportErr  *TransportError
		responseErr   *InvalidResponseError
	)

	switch {
	case errors.Is(err, ErrNotInitialized):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "voice service not configured"})
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Error()})
	case errors.As(err, &upstreamErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": upstreamErr.Message})
	case errors.As(err, &responseErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": responseErr.Error()})
	case errors.As(err, &transportErr):
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "voice provider unavailable"})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}

func writeData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// GetAssistant handles GET /api/vapi/assistant.
func (h Handlers) GetAssistant(c *gin.Context) {
	assistant, err := h.Gateway.GetAssistant(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, assistant)
}

type updateAssistantRequest map[string]any

// UpdateAssistant handles PATCH /api/vapi/assistant. Admin-only; the
// route is guarded by auth middleware in cmd/api.
func (h Handlers) UpdateAssistant(c *gin.Context) {
	var req updateAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	assistant, err := h.Gateway.UpdateAssistant(c.Request.Context(), Object(req))
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, assistant)
}

type makeCallRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	AssistantID string `json:"assistantId"`
}

// MakeCall handles POST /api/vapi/call.
func (h Handlers) MakeCall(c *gin.Context) {
	var req makeCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	call, err := h.Gateway.MakeCall(c.Request.Context(), req.PhoneNumber, req.AssistantID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, call)
}

type webCallRequest struct {
	AssistantID string `json:"assistantId"`
}

// CreateWebCall handles POST /api/vapi/call/web.
//
// The fixed websocket/PCM16/16kHz transport is always injected at this
// layer, and the response forwarded to the browser is pruned to the
// fields it needs: id, transport.provider, transport.websocketCallUrl
// and the public key. Nothing else from upstream leaks out.
func (h Handlers) CreateWebCall(c *gin.Context) {
	var req webCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}

	transport := DefaultTransport()
	call, err := h.Gateway.CreateWebCall(c.Request.Context(), req.AssistantID, &transport)
	if err != nil {
		writeError(c, err)
		return
	}

	pruned := Object{
		"id": call["id"],
		"transport": Object{
			"provider":         TransportProvider(call),
			"websocketCallUrl": WebsocketCallURL(call),
		},
		"publicKey": call["publicKey"],
	}
	writeData(c, pruned)
}

// GetCalls handles GET /api/vapi/calls.
//
// offset is accepted for API compatibility but not forwarded upstream;
// the provider listing is limit-only.
func (h Handlers) GetCalls(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be an integer"})
			return
		}
		limit = n
	}
	_ = c.Query("offset")

	calls, err := h.Gateway.GetCalls(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, calls)
}

// GetCall handles GET /api/vapi/call/:id.
func (h Handlers) GetCall(c *gin.Context) {
	call, err := h.Gateway.GetCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, call)
}

// EndCall handles DELETE /api/vapi/call/:id.
func (h Handlers) EndCall(c *gin.Context) {
	ack, err := h.Gateway.EndCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, ack)
}

// GetCallTranscript handles GET /api/vapi/call/:id/transcript.
// A call without a transcript yields data: null, not an error.
func (h Handlers) GetCallTranscript(c *gin.Context) {
	transcript, err := h.Gateway.GetCallTranscript(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	writeData(c, transcript)
}

// GetConfig handles GET /api/vapi/config. The private key never appears
// in this response.
func (h Handlers) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"publicKey":   h.Gateway.PublicKey(),
		"assistantId": h.Gateway.AssistantID(),
	})
}

// Health handles GET /api/health. Always 200 with a status body.
func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.Gateway.Health(c.Request.Context()))
}

// Webhook handles POST /api/vapi/webhook.
//
// The only rejected condition is a malformed payload (missing type or
// data); everything else is acknowledged with 200 so the provider does
// not retry delivery.
func (h Handlers) Webhook(c *gin.Context) {
	log := logger.FromGin(c)

	var event WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		log.Warn("webhook payload not parseable", "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid json"})
		return
	}
	if event.Type == "" || event.Data == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": "type and data are required"})
		return
	}

	c.JSON(http.StatusOK, h.Interpreter.Handle(event))
}
