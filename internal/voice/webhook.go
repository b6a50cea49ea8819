package voice

import (
	"fmt"
	"log/slog"
)

// WebhookEvent is an asynchronous provider notification. Type is open:
// unrecognized values are logged and acknowledged, never rejected.
type WebhookEvent struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Recognized webhook event types.
const (
	EventStatusUpdate       = "status-update"
	EventTranscript         = "transcript"
	EventCallEnded          = "call-ended"
	EventSpeechUpdate       = "speech-update"
	EventConversationUpdate = "conversation-update"
	EventEndOfCallReport    = "end-of-call-report"
)

// WebhookAck is the body returned for every delivery.
type WebhookAck struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WebhookInterpreter classifies provider events and performs a per-type
// observation. It mutates no call state; webhook traffic is treated as
// telemetry here, not as a source of truth.
type WebhookInterpreter struct {
	log *slog.Logger
}

func NewWebhookInterpreter(log *slog.Logger) *WebhookInterpreter {
	return &WebhookInterpreter{log: log}
}

// Handle dispatches one event and always returns an acknowledgement.
// A panic during processing is converted into an ack carrying the error
// detail: refusing a delivery makes the provider retry, and retry storms
// are worse than a dropped observation.
func (w *WebhookInterpreter) Handle(event WebhookEvent) (ack WebhookAck) {
	defer func() {
		if p := recover(); p != nil {
			w.log.Error("webhook processing panicked", "type", event.Type, "panic", p)
			ack = WebhookAck{Success: false, Error: fmt.Sprintf("%v", p)}
		}
	}()

	data := event.Data
	callID, _ := data["callId"].(string)

	switch event.Type {
	case EventStatusUpdate:
		status, _ := data["status"].(string)
		w.log.Info("call status update", "call_id", callID, "status", status)

	case EventTranscript:
		role, _ := data["role"].(string)
		text, _ := data["transcript"].(string)
		w.log.Info("transcript fragment", "call_id", callID, "role", role, "chars", len(text))

	case EventCallEnded:
		reason, _ := data["endedReason"].(string)
		w.log.Info("call ended", "call_id", callID, "reason", reason)

	case EventSpeechUpdate:
		status, _ := data["status"].(string)
		role, _ := data["role"].(string)
		w.log.Debug("speech update", "call_id", callID, "role", role, "status", status)

	case EventConversationUpdate:
		w.log.Debug("conversation update", "call_id", callID)

	case EventEndOfCallReport:
		summary, _ := data["summary"].(string)
		w.log.Info("end of call report", "call_id", callID, "summary_chars", len(summary))

	default:
		w.log.Info("unrecognized webhook event", "type", event.Type)
	}

	return WebhookAck{Success: true}
}
