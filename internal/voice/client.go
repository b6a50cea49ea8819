package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Object is the opaque JSON shape the provider returns. The gateway
// relays these without persisting or mutating them; the provider stays
// the source of truth for call state.
type Object = map[string]any

// Client issues single-attempt authenticated requests against the
// upstream voice API. No retries, no backoff; callers see exactly one
// outcome per request.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     *slog.Logger
}

// NewClient expects baseURL to be a full URL (scheme included). A bare
// hostname fails DNS resolution in confusing ways, so config rejects it
// before we get here.
func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// Do performs one request and decodes the response into out (which must
// be a pointer, or nil to discard the payload).
//
// Outcome classification:
// - 2xx with a body: decoded into out; undecodable body is a decode
//   TransportError even though the status was a success.
// - 2xx with an empty body: treated as an empty object, out untouched.
// - non-2xx: UpstreamError carrying the status and the provider's
//   "message" field when present, else the raw body text.
// - network-level failure: request TransportError.
func (c *Client) Do(ctx context.Context, method, path, apiKey string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: "request", Err: err}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return &TransportError{Op: "request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "request", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(raw),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("upstream response not parseable", "method", method, "path", path, "err", err)
		return &TransportError{Op: "decode", Err: err}
	}
	return nil
}

// upstreamMessage extracts the provider's error message. The provider
// sends "message" as either a string or an array of strings; fall back
// to the raw body text when neither is present.
func upstreamMessage(raw []byte) string {
	var envelope struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		switch m := envelope.Message.(type) {
		case string:
			if m != "" {
				return m
			}
		case []any:
			parts := make([]string, 0, len(m))
			for _, p := range m {
				if s, ok := p.(string); ok {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
