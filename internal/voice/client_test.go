package voice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_ParsesSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key-1" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"call-1","status":"queued"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, discardLogger())
	var out Object
	if err := c.Do(context.Background(), http.MethodGet, "/call/call-1", "key-1", nil, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out["id"] != "call-1" {
		t.Fatalf("unexpected payload: %v", out)
	}
}

func TestClient_EmptySuccessBodyIsEmptyObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, discardLogger())
	out := Object{}
	if err := c.Do(context.Background(), http.MethodDelete, "/call/call-1", "key-1", nil, &out); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected untouched empty object, got %v", out)
	}
}

func TestClient_NonSuccessStatusCarriesProviderMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "string message", body: `{"message":"assistant not found"}`, want: "assistant not found"},
		{name: "array message", body: `{"message":["a is bad","b is bad"]}`, want: "a is bad; b is bad"},
		{name: "raw body fallback", body: `upstream exploded`, want: "upstream exploded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, discardLogger())
			err := c.Do(context.Background(), http.MethodGet, "/assistant/a1", "key-1", nil, &Object{})
			var uerr *UpstreamError
			if !errors.As(err, &uerr) {
				t.Fatalf("expected UpstreamError, got %T (%v)", err, err)
			}
			if uerr.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", uerr.StatusCode)
			}
			if uerr.Message != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, uerr.Message)
			}
		})
	}
}

func TestClient_MalformedSuccessBodyIsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": not-json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, discardLogger())
	err := c.Do(context.Background(), http.MethodGet, "/call/c1", "key-1", nil, &Object{})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T (%v)", err, err)
	}
	if terr.Op != "decode" {
		t.Fatalf("expected decode failure, got %q", terr.Op)
	}
}

func TestClient_UnreachableUpstreamIsRequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, discardLogger())
	err := c.Do(context.Background(), http.MethodGet, "/call/c1", "key-1", nil, &Object{})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T (%v)", err, err)
	}
	if terr.Op != "request" {
		t.Fatalf("expected request failure, got %q", terr.Op)
	}

	// An HTTP-level failure must remain distinguishable from this one.
	var uerr *UpstreamError
	if errors.As(err, &uerr) {
		t.Fatalf("unreachable upstream must not look like an HTTP error")
	}
}

func TestClient_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, discardLogger())
	body := Object{"assistantId": "a1"}
	if err := c.Do(context.Background(), http.MethodPost, "/call", "key-1", body, nil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if string(gotBody) != `{"assistantId":"a1"}` {
		t.Fatalf("unexpected body %s", gotBody)
	}
}
