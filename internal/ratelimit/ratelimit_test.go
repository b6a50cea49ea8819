package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestMemoryStore_WindowResets(t *testing.T) {
	store := NewMemoryStore()
	now := time.Unix(1700000000, 0)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	for i := int64(1); i <= 3; i++ {
		n, err := store.Incr(ctx, "k", time.Minute)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n != i {
			t.Fatalf("expected count %d, got %d", i, n)
		}
	}

	// Independent keys do not share counters.
	if n, _ := store.Incr(ctx, "other", time.Minute); n != 1 {
		t.Fatalf("expected fresh counter, got %d", n)
	}

	// Window expiry restarts the count.
	now = now.Add(61 * time.Second)
	if n, _ := store.Incr(ctx, "k", time.Minute); n != 1 {
		t.Fatalf("expected reset counter, got %d", n)
	}
}

func newLimitedRouter(store Store, perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(store, perMinute))
	r.GET("/ping", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func TestMiddleware_BlocksOverLimit(t *testing.T) {
	r := newLimitedRouter(NewMemoryStore(), 2)

	codes := []int{}
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	want := []int{200, 200, 429, 429}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("request %d: expected %d, got %d (all: %v)", i, want[i], codes[i], codes)
		}
	}
}

type failingStore struct{}

func (failingStore) Incr(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("store down")
}

func TestMiddleware_FailsOpenWhenStoreUnavailable(t *testing.T) {
	r := newLimitedRouter(failingStore{}, 1)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 when store is down, got %d", w.Code)
		}
	}
}
