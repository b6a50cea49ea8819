package voice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"estate-voice-api/internal/config"
)

const defaultListLimit = 100

// TransportSpec describes how call audio reaches the browser.
type TransportSpec struct {
	Provider    string      `json:"provider"`
	AudioFormat AudioFormat `json:"audioFormat"`
}

type AudioFormat struct {
	Format     string `json:"format"`
	Container  string `json:"container"`
	SampleRate int    `json:"sampleRate"`
}

// DefaultTransport is the fixed websocket/PCM16/16kHz profile used when
// the caller supplies no transport of its own.
func DefaultTransport() TransportSpec {
	return TransportSpec{
		Provider: "vapi.websocket",
		AudioFormat: AudioFormat{
			Format:     "pcm_s16le",
			Container:  "raw",
			SampleRate: 16000,
		},
	}
}

// Gateway translates REST-level call operations into authenticated
// upstream API requests.
//
// Rules:
// - Every operation re-checks initialization and fails with
//   ErrNotInitialized before constructing any request.
// - No call state is held here; the provider is the source of truth.
// - Methods log for diagnostics only and return typed errors; mapping
//   an error kind to an HTTP status belongs to the handler layer.
type Gateway struct {
	creds       Credentials
	client      *Client
	log         *slog.Logger
	initialized bool
}

// NewGateway builds the gateway and computes its readiness once.
// Construction never fails: an unconfigured deployment still gets a
// gateway that answers every operation with ErrNotInitialized, which is
// a clearer diagnostic than a leaked upstream 4xx.
func NewGateway(cfg config.VapiConfig, log *slog.Logger) *Gateway {
	creds := Credentials{
		PrivateKey:  cfg.PrivateKey,
		PublicKey:   cfg.PublicKey,
		AssistantID: cfg.AssistantID,
	}

	g := &Gateway{
		creds:       creds,
		client:      NewClient(cfg.BaseURL, log),
		log:         log,
		initialized: creds.Valid(),
	}
	if !g.initialized {
		log.Warn("vapi credentials missing or placeholders, voice gateway disabled")
	}
	return g
}

// Initialized reports whether the credential triple passed validation.
func (g *Gateway) Initialized() bool { return g.initialized }

// PublicKey exposes the browser-safe credential for the config endpoint.
func (g *Gateway) PublicKey() string { return g.creds.PublicKey }

// AssistantID exposes the configured assistant identifier.
func (g *Gateway) AssistantID() string { return g.creds.AssistantID }

func (g *Gateway) ensureReady() error {
	if !g.initialized {
		return ErrNotInitialized
	}
	return nil
}

// GetAssistant fetches the configured assistant's metadata.
func (g *Gateway) GetAssistant(ctx context.Context) (Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}

	var out Object
	err := g.client.Do(ctx, http.MethodGet, "/assistant/"+g.creds.AssistantID, g.creds.PrivateKey, nil, &out)
	if err != nil {
		g.log.Error("get assistant failed", "err", err)
		return nil, err
	}
	return out, nil
}

// UpdateAssistant applies a partial update to the configured assistant.
func (g *Gateway) UpdateAssistant(ctx context.Context, updates Object) (Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, &ValidationError{Field: "updates", Reason: "required"}
	}

	var out Object
	err := g.client.Do(ctx, http.MethodPatch, "/assistant/"+g.creds.AssistantID, g.creds.PrivateKey, updates, &out)
	if err != nil {
		g.log.Error("update assistant failed", "err", err)
		return nil, err
	}
	return out, nil
}

// MakeCall starts an outbound phone call. The phone number is validated
// and normalized locally before any network attempt.
func (g *Gateway) MakeCall(ctx context.Context, phoneNumber, assistantID string) (Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}

	normalized, err := NormalizePhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	if assistantID == "" {
		assistantID = g.creds.AssistantID
	}

	body := Object{
		"assistantId": assistantID,
		"phoneNumber": normalized,
	}

	var out Object
	if err := g.client.Do(ctx, http.MethodPost, "/call/phone", g.creds.PrivateKey, body, &out); err != nil {
		g.log.Error("phone call failed", "to", normalized, "err", err)
		return nil, err
	}
	g.log.Info("phone call created", "call_id", out["id"], "to", normalized)
	return out, nil
}

// CreateWebCall creates a browser call session.
//
// The public key is the one transmitted upstream; initialization (which
// requires the private key) still gates the operation, so web calls need
// both keys present locally but never send the private one.
//
// Unlike the other operations, the response shape is validated: the
// browser cannot connect without id and transport.websocketCallUrl, so a
// 2xx response missing either is a failure.
func (g *Gateway) CreateWebCall(ctx context.Context, assistantID string, transport *TransportSpec) (Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}
	if assistantID == "" {
		assistantID = g.creds.AssistantID
	}

	tr := DefaultTransport()
	if transport != nil {
		// Caller-supplied transport wins entirely; no field-level merge.
		tr = *transport
	}

	body := Object{
		"assistantId": assistantID,
		"transport":   tr,
	}

	var out Object
	if err := g.client.Do(ctx, http.MethodPost, "/call/web", g.creds.PublicKey, body, &out); err != nil {
		g.log.Error("web call failed", "err", err)
		return nil, err
	}

	if s, _ := out["id"].(string); s == "" {
		return nil, &InvalidResponseError{Missing: "id"}
	}
	if WebsocketCallURL(out) == "" {
		return nil, &InvalidResponseError{Missing: "transport.websocketCallUrl"}
	}

	out["publicKey"] = g.creds.PublicKey
	g.log.Info("web call created", "call_id", out["id"])
	return out, nil
}

// GetCalls lists recent calls. limit defaults to 100 when non-positive.
func (g *Gateway) GetCalls(ctx context.Context, limit int) ([]Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	var out []Object
	path := fmt.Sprintf("/call?limit=%d", limit)
	if err := g.client.Do(ctx, http.MethodGet, path, g.creds.PrivateKey, nil, &out); err != nil {
		g.log.Error("list calls failed", "err", err)
		return nil, err
	}
	return out, nil
}

// GetCall fetches a single call by id.
func (g *Gateway) GetCall(ctx context.Context, callID string) (Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}
	if callID == "" {
		return nil, &ValidationError{Field: "callId", Reason: "required"}
	}

	var out Object
	if err := g.client.Do(ctx, http.MethodGet, "/call/"+callID, g.creds.PrivateKey, nil, &out); err != nil {
		g.log.Error("get call failed", "call_id", callID, "err", err)
		return nil, err
	}
	return out, nil
}

// EndCall terminates an active call.
func (g *Gateway) EndCall(ctx context.Context, callID string) (Object, error) {
	if err := g.ensureReady(); err != nil {
		return nil, err
	}
	if callID == "" {
		return nil, &ValidationError{Field: "callId", Reason: "required"}
	}

	var out Object
	if err := g.client.Do(ctx, http.MethodDelete, "/call/"+callID, g.creds.PrivateKey, nil, &out); err != nil {
		g.log.Error("end call failed", "call_id", callID, "err", err)
		return nil, err
	}
	g.log.Info("call ended", "call_id", callID)
	return out, nil
}

// GetCallTranscript returns the call's transcript, or nil when the call
// exists but carries no transcript yet. Failures from GetCall propagate.
func (g *Gateway) GetCallTranscript(ctx context.Context, callID string) (any, error) {
	call, err := g.GetCall(ctx, callID)
	if err != nil {
		return nil, err
	}
	return call["transcript"], nil
}

// WebsocketCallURL digs transport.websocketCallUrl out of a call object.
func WebsocketCallURL(call Object) string {
	transport, _ := call["transport"].(map[string]any)
	if transport == nil {
		return ""
	}
	s, _ := transport["websocketCallUrl"].(string)
	return s
}

// TransportProvider digs transport.provider out of a call object.
func TransportProvider(call Object) string {
	transport, _ := call["transport"].(map[string]any)
	if transport == nil {
		return ""
	}
	s, _ := transport["provider"].(string)
	return s
}
