package voice

import "context"

// HealthStatus is the tri-state service status computed fresh on every
// request; it is never cached.
type HealthStatus struct {
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
	AssistantID   string `json:"assistantId,omitempty"`
	AssistantName string `json:"assistantName,omitempty"`
}

const (
	StatusHealthy       = "healthy"
	StatusError         = "error"
	StatusNotConfigured = "not_configured"
	StatusInitializing  = "initializing"
)

// Health probes the gateway through a lightweight assistant read.
//
// This must never propagate a failure: every outcome, including network
// and parse errors, resolves to a status value. When the gateway is not
// initialized no network call is made at all.
func (g *Gateway) Health(ctx context.Context) HealthStatus {
	if !g.initialized {
		return HealthStatus{
			Status:  StatusNotConfigured,
			Message: "vapi credentials missing or placeholders",
		}
	}

	assistant, err := g.GetAssistant(ctx)
	if err != nil {
		return HealthStatus{
			Status:  StatusError,
			Message: err.Error(),
		}
	}

	name, _ := assistant["name"].(string)
	return HealthStatus{
		Status:        StatusHealthy,
		AssistantID:   g.creds.AssistantID,
		AssistantName: name,
	}
}
