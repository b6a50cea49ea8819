package voice

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by every gateway operation when the
// credential triple is missing or still holds placeholder values.
// No network request is attempted in that state.
var ErrNotInitialized = errors.New("voice: gateway not initialized")

// ValidationError reports malformed caller input (bad phone format,
// missing required id). Mapped to 400 at the HTTP boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("voice: invalid %s: %s", e.Field, e.Reason)
}

// UpstreamError reports a non-2xx response from the provider.
// Message carries the provider-supplied error message when present,
// otherwise the raw response body.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("voice: upstream returned %d: %s", e.StatusCode, e.Message)
}

// TransportError reports that the provider could not be reached or that
// a 2xx response body could not be decoded. Op is "request" for
// network-level failures and "decode" for parse failures, so tests can
// tell "upstream returned an error" apart from "upstream unreachable".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("voice: transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError reports a 2xx upstream response missing fields the
// browser depends on. Only the web-call path enforces response shape.
type InvalidResponseError struct {
	Missing string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("voice: upstream response missing %s", e.Missing)
}
