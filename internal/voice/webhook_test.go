package voice

import "testing"

func TestWebhookInterpreter_AcknowledgesAllRecognizedTypes(t *testing.T) {
	w := NewWebhookInterpreter(discardLogger())

	types := []string{
		EventStatusUpdate,
		EventTranscript,
		EventCallEnded,
		EventSpeechUpdate,
		EventConversationUpdate,
		EventEndOfCallReport,
	}

	for _, typ := range types {
		t.Run(typ, func(t *testing.T) {
			ack := w.Handle(WebhookEvent{Type: typ, Data: map[string]any{"callId": "c1"}})
			if !ack.Success {
				t.Fatalf("expected success ack, got %+v", ack)
			}
		})
	}
}

func TestWebhookInterpreter_AcknowledgesUnrecognizedType(t *testing.T) {
	w := NewWebhookInterpreter(discardLogger())
	ack := w.Handle(WebhookEvent{Type: "something-new", Data: map[string]any{}})
	if !ack.Success {
		t.Fatalf("expected success ack, got %+v", ack)
	}
}

func TestWebhookInterpreter_ToleratesWrongFieldTypes(t *testing.T) {
	w := NewWebhookInterpreter(discardLogger())
	ack := w.Handle(WebhookEvent{
		Type: EventTranscript,
		Data: map[string]any{"callId": 42, "role": []any{"x"}, "transcript": 3.14},
	})
	if !ack.Success {
		t.Fatalf("expected success ack, got %+v", ack)
	}
}
