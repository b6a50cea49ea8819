package voice

import (
	"context"
	"net/http"
	"testing"

	"estate-voice-api/internal/config"
)

func TestHealth_NotConfiguredSkipsNetwork(t *testing.T) {
	stub := newUpstreamStub(t)
	g := NewGateway(config.VapiConfig{BaseURL: stub.srv.URL}, discardLogger())

	status := g.Health(context.Background())
	if status.Status != StatusNotConfigured {
		t.Fatalf("expected not_configured, got %q", status.Status)
	}
	if n := stub.requests.Load(); n != 0 {
		t.Fatalf("expected zero upstream requests, got %d", n)
	}
}

func TestHealth_HealthyCarriesAssistantIdentity(t *testing.T) {
	stub := newUpstreamStub(t)
	stub.reply = Object{"id": "asst-1", "name": "Estate Assistant"}
	g := newTestGateway(stub)

	status := g.Health(context.Background())
	if status.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %q (%s)", status.Status, status.Message)
	}
	if status.AssistantID != "asst-1" || status.AssistantName != "Estate Assistant" {
		t.Fatalf("unexpected identity %+v", status)
	}
}

func TestHealth_UpstreamFailureBecomesErrorStatus(t *testing.T) {
	stub := newUpstreamStub(t)
	stub.status = http.StatusUnauthorized
	stub.reply = Object{"message": "invalid key"}
	g := newTestGateway(stub)

	status := g.Health(context.Background())
	if status.Status != StatusError {
		t.Fatalf("expected error, got %q", status.Status)
	}
	if status.Message == "" {
		t.Fatalf("expected failure message")
	}
}

func TestHealth_UnreachableUpstreamBecomesErrorStatus(t *testing.T) {
	stub := newUpstreamStub(t)
	g := newTestGateway(stub)
	stub.srv.Close()

	status := g.Health(context.Background())
	if status.Status != StatusError {
		t.Fatalf("expected error, got %q", status.Status)
	}
}
